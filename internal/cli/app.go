// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/domain/build"
	"github.com/bnema/tiles/internal/infrastructure/config"
	"github.com/bnema/tiles/internal/logging"
)

// Options tune how NewApp builds its dependencies.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides logging.level from config and environment.
	LogLevel string
	// LogToFile sends logs to a file instead of stderr.
	LogToFile bool
	// LogFile overrides logging.file.
	LogFile string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx     context.Context
	logFile *logging.FileWriter
}

// NewApp loads configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	app := &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
	}

	var out io.Writer = os.Stderr
	if opts.LogToFile {
		logCfg := cfg.Logging
		if opts.LogFile != "" {
			logCfg.File = opts.LogFile
		}
		w, err := openLogFile(logCfg)
		if err != nil {
			return nil, err
		}
		app.logFile = w
		out = w
	}

	logger := logging.NewFromConfigValues(level, cfg.Logging.Format, out)
	app.ctx = logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("layout_mode", string(cfg.Layout.Mode)).
		Msg("app initialized")

	return app, nil
}

func newManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerWithFile(path)
	}
	return config.NewManager()
}

func openLogFile(cfg config.LoggingConfig) (*logging.FileWriter, error) {
	path := cfg.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	w, err := logging.NewFileWriter(path, cfg.MaxSizeMB)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return w, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// LogFile returns the path of the log file, empty when logging to stderr.
func (a *App) LogFile() string {
	if a.logFile == nil {
		return ""
	}
	return a.logFile.Path()
}
