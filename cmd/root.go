// Package cmd defines the create-component command line.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-component/internal/config"
	"github.com/donaldgifford/create-component/internal/create"
	"github.com/donaldgifford/create-component/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string

	functional   bool
	noCSS        bool
	noHooks      bool
	manifestPath string
)

// rootCmd is the only command: it scaffolds one component.
var rootCmd = &cobra.Command{
	Use:   appName + " <ComponentName>",
	Short: "Scaffold a React component",
	Long: `Create a component directory under the path configured in the
"frontend-cli" block of package.json. The directory holds a package.json
pointing at the component source, the source itself (class or functional)
and, unless --no-css is given, a CSS module.`,
	Example: `  ` + appName + ` SquareButton
  ` + appName + ` -F Avatar --no-css`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
	RunE: runCreate,
}

// Execute runs the root command and reports any error on the command's
// output streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(newWriter(rootCmd), err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/create-component/config.yaml)")

	rootCmd.Flags().BoolVarP(&functional, "functional", "F", false, "create a functional component")
	rootCmd.Flags().BoolVar(&noCSS, "no-css", false, "create the component without styles")
	rootCmd.Flags().BoolVar(&noHooks, "no-hooks", false, "skip post-create hooks")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", config.ManifestFile, "host package.json holding the frontend-cli block")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func newWriter(cmd *cobra.Command) *ui.Writer {
	return ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr(), noColor || color.NoColor)
}

// reportError prints err, with usage guidance for the errors a user can fix
// by editing package.json or the command line.
func reportError(w *ui.Writer, err error) {
	switch {
	case errors.Is(err, config.ErrConfigMissing):
		w.Eprintln("Could not parse frontend-cli config")
		w.Println()
		w.Println("Add config to your package.json")

	case errors.Is(err, create.ErrMissingName):
		w.Eprintln("Please specify component name")
		w.Println(" ", w.Command(appName), w.Argument("<ComponentName>"))
		w.Println()
		w.Println("For example:")
		w.Println(" ", w.Command(appName), w.Argument("SquareButton"))
		w.Println()
		w.Println("Run", w.Command(appName+" --help"), "to see all options.")

	default:
		w.Error(err.Error())
	}
}
