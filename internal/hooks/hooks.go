// Package hooks runs the shell commands configured to follow component creation.
package hooks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Environment variables exported to every hook.
const (
	EnvComponentName = "COMPONENT_NAME"
	EnvComponentDir  = "COMPONENT_DIR"
)

// Opts configures hook execution.
type Opts struct {
	// Hooks is the list of shell commands to execute.
	Hooks []string
	// Component is the name of the component just created.
	Component string
	// WorkDir is the component directory; hooks run inside it.
	WorkDir string
	// Stdout receives hook standard output.
	Stdout io.Writer
	// Stderr receives hook standard error.
	Stderr io.Writer
	// Logger for debug output.
	Logger *slog.Logger
}

// RunPostCreate executes hooks in order. A failing hook is logged and
// collected; the remaining hooks still run since the component files are
// already on disk.
func RunPostCreate(ctx context.Context, opts *Opts) []error {
	if len(opts.Hooks) == 0 {
		return nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error

	for _, hook := range opts.Hooks {
		logger.Debug("running post-create hook", "cmd", hook, "dir", opts.WorkDir)

		if err := runHook(ctx, hook, opts); err != nil {
			logger.Warn("post-create hook failed", "cmd", hook, "err", err)
			errs = append(errs, fmt.Errorf("hook %q: %w", hook, err))
		}
	}

	return errs
}

func runHook(ctx context.Context, hook string, opts *Opts) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", hook)
	cmd.Dir = opts.WorkDir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Env = append(os.Environ(),
		EnvComponentName+"="+opts.Component,
		EnvComponentDir+"="+opts.WorkDir,
	)

	return cmd.Run()
}
