// Package cmd provides Cobra CLI commands for tiles.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/bnema/tiles/internal/cli"
	"github.com/bnema/tiles/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	logLevel   string
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "tiles",
		Short: "A binary tiling panel layout for the terminal",
		Long: `Tiles - split the screen into panels, the way a tiling WM does.

Every panel is a leaf of a binary layout. Split one side by side or stacked,
close it and its sibling takes the space back. Two layout engines are
available: a flat registry addressed by stable panel IDs, and an owned tree
that folds closed panels away after each edit.

Use 'tiles run' to open the interactive layout, or 'tiles replay' to apply
a list of operations and print the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noColor || os.Getenv("NO_COLOR") != "" {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			// Skip initialization for commands that don't need app context.
			// init must run before Load creates the default file.
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "path", "schema", "init":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				// The TUI owns the terminal.
				LogToFile: cmd.Name() == "run",
				LogFile:   runLogFile,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tiles/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors (also honors NO_COLOR)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
