package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config       *Config
	viper        *viper.Viper
	mu           sync.RWMutex
	callbacks    []func(*Config)
	errCallbacks []func(error)
	watching     bool
	// explicit is set when the file path was given by the caller; XDG
	// directories are then left alone.
	explicit bool
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	return newManager(v, false)
}

// NewManagerWithFile creates a configuration manager bound to an explicit
// config file. The file is created from defaults on first Load if missing.
func NewManagerWithFile(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	// TILES_LAYOUT_MODE, TILES_LOGGING_LEVEL, ...
	v.SetEnvPrefix("TILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms for the settings people flip most often.
	if err := v.BindEnv("logging.level", "TILES_LOGGING_LEVEL", "TILES_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILES_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("layout.mode", "TILES_LAYOUT_MODE", "TILES_MODE"); err != nil {
		return nil, fmt.Errorf("failed to bind TILES_MODE: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig canonicalises case and fills empty enum values.
func normalizeConfig(config *Config) {
	config.Layout.Mode = LayoutMode(strings.ToLower(strings.TrimSpace(string(config.Layout.Mode))))
	if config.Layout.Mode == "" {
		config.Layout.Mode = LayoutModeRegistry
	}

	config.Appearance.BorderStyle = BorderStyle(strings.ToLower(strings.TrimSpace(string(config.Appearance.BorderStyle))))
	if config.Appearance.BorderStyle == "" {
		config.Appearance.BorderStyle = BorderRounded
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	keys := &config.Keys
	for _, list := range []*[]string{
		&keys.SplitHorizontal, &keys.SplitVertical, &keys.Close,
		&keys.FocusNext, &keys.FocusPrev, &keys.Seed, &keys.Help, &keys.Quit,
	} {
		for i, k := range *list {
			(*list)[i] = strings.TrimSpace(k)
		}
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configPath()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return configFile
}

// createDefaultConfig writes the default configuration to the config path.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.mode", string(defaults.Layout.Mode))
	m.viper.SetDefault("layout.reseed_empty", defaults.Layout.ReseedEmpty)

	m.setAppearanceDefaults(defaults)
	m.setKeysDefaults(defaults)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.border_style", string(defaults.Appearance.BorderStyle))
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.focus_color", defaults.Appearance.FocusColor)
	m.viper.SetDefault("appearance.text_color", defaults.Appearance.TextColor)
	m.viper.SetDefault("appearance.muted_color", defaults.Appearance.MutedColor)
	m.viper.SetDefault("appearance.padding", defaults.Appearance.Padding)
}

func (m *Manager) setKeysDefaults(defaults *Config) {
	for _, b := range defaults.Keys.Bindings() {
		m.viper.SetDefault("keys."+b.Action, b.Keys)
	}
}
