package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-component/internal/config"
	"github.com/donaldgifford/create-component/internal/create"
)

func runCreate(cmd *cobra.Command, args []string) error {
	if err := applyDefaults(cmd); err != nil {
		return err
	}

	logger := slog.Default()

	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no host manifest", "path", manifestPath, "err", err)

			return fmt.Errorf("%w: %w", config.ErrConfigMissing, err)
		}

		return err
	}

	cfg, err := config.Resolve(manifest)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	req := create.NewRequest(name, functional, !noCSS)
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := create.Run(cmd.Context(), &create.Opts{
		Request: req,
		Config:  cfg,
		Host:    manifest.Host(),
		WorkDir: filepath.Dir(manifestPath),
		NoHooks: noHooks,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	w := newWriter(cmd)

	if len(result.Overrides) > 0 {
		w.Infof("templates from %s: %s", cfg.Templates, strings.Join(result.Overrides, ", "))
	}

	for _, warning := range result.Warnings {
		w.Warning(warning)
	}

	for _, hookErr := range result.HookErrors {
		w.Warningf("post-create %v", hookErr)
	}

	w.Successf("Component %s successfully created", result.Name)

	return nil
}

// applyDefaults fills flags the user did not pass from the user defaults file.
func applyDefaults(cmd *cobra.Command) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	defaults, err := config.LoadGlobalConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if !flags.Changed("functional") {
		functional = config.BoolOr(defaults.Functional, functional)
	}

	if !flags.Changed("no-css") {
		noCSS = !config.BoolOr(defaults.Styles, !noCSS)
	}

	if !flags.Changed("no-color") {
		noColor = config.BoolOr(defaults.NoColor, noColor)
	}

	return nil
}
