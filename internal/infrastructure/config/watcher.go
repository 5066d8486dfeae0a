package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/tiles/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks run on viper's watcher goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	log := logging.FromContext(ctx)

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		// Acquire write lock before reload (reload modifies m.config)
		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.notifyErrorLocked(err)
			return
		}
		log.Info().Str("file", e.Name).Msg("config reloaded")
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	configCopy := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := configCopy
		callback(&c)
	}
}

// notifyErrorLocked has the same locking contract as notifyCallbacksLocked.
func (m *Manager) notifyErrorLocked(err error) {
	callbacks := make([]func(error), len(m.errCallbacks))
	copy(callbacks, m.errCallbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(err)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// OnReloadError registers a callback for reloads rejected by parsing or
// validation. The previous configuration stays active.
func (m *Manager) OnReloadError(callback func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errCallbacks = append(m.errCallbacks, callback)
}

// reload reloads the configuration (internal method, must be called with lock held for write).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Reload re-reads the config file and notifies callbacks, as a file change would.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.notifyErrorLocked(err)
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}
