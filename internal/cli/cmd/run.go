package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tiles/internal/cli"
	"github.com/bnema/tiles/internal/cli/model"
	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/infrastructure/config"
	"github.com/bnema/tiles/internal/logging"
	"github.com/bnema/tiles/internal/ui/layout"
)

var (
	runMode    string
	runLogFile string
	runNoWatch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive layout",
	Long: `Open the interactive panel layout in the terminal.

Each panel offers three actions: split side by side, split stacked and close.
Move the focus with tab / shift+tab and press the action key. Closing the
last panel reseeds a fresh one unless layout.reseed_empty is false, in which
case the seed key opens a new panel.

The config file is watched: colors, border style, keys and reseed behavior
are applied live when it changes.

Examples:
  tiles run                 # Layout engine from config (registry by default)
  tiles run --mode tree     # Owned tree with collapse fold
  tiles run --log-file /tmp/tiles.log`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runMode, "mode", "m", "", "layout engine: registry or tree (default from layout.mode)")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "log file (default logging.file, then $XDG_STATE_HOME/tiles/tiles.log)")
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Ctx(), "run")
	ctx = logging.WithSession(ctx, uuid.NewString())
	log := logging.FromContext(ctx)

	session, err := newSession(ctx, app, runMode)
	if err != nil {
		return err
	}

	renderer := styles.NewPanelRenderer(app.Theme)
	m := model.NewTilesModel(ctx, app.Theme, renderer, session, app.Config.Keys)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(m, tea.WithAltScreen())

	if !runNoWatch {
		watchConfig(ctx, app.Manager, program)
	}

	log.Info().
		Str("layout_mode", string(session.Mode())).
		Str("log_file", app.LogFile()).
		Msg("starting interactive layout")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		// Signal or program exit; Quit is a no-op once the program stopped.
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("interactive layout failed")
		return err
	}
	log.Info().Msg("interactive layout closed")
	return nil
}

// watchConfig forwards config reloads into the program.
func watchConfig(ctx context.Context, mgr *config.Manager, program *tea.Program) {
	mgr.OnConfigChange(func(cfg *config.Config) {
		program.Send(model.ConfigReloadedMsg{Config: cfg})
	})
	mgr.OnReloadError(func(err error) {
		program.Send(model.ConfigErrorMsg{Err: err})
	})
	if err := mgr.Watch(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
	}
}

// newSession builds a layout session; an empty flag falls back to layout.mode.
func newSession(ctx context.Context, app *cli.App, flagMode string) (*layout.Session, error) {
	name := flagMode
	if name == "" {
		name = string(app.Config.Layout.Mode)
	}
	mode, err := layout.ParseMode(name)
	if err != nil {
		return nil, fmt.Errorf("--mode: %w", err)
	}
	return layout.NewSession(ctx, mode, layout.SessionOptions{
		ReseedEmpty: app.Config.Layout.ReseedEmpty,
	})
}
