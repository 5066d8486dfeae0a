package xdg

import (
	"os"
	"path/filepath"

	"github.com/bnema/tiles/internal/application/port"
	"github.com/bnema/tiles/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) LogFile() (string, error) {
	return config.GetLogFile()
}

func (a *Adapter) ManDir() (string, error) {
	// Man pages go to the user's XDG_DATA_HOME/man/man1, not a tiles-specific dir.
	// This allows 'man tiles' to work without custom MANPATH configuration.
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "man", "man1"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
