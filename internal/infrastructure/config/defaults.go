package config

const (
	defaultBorderColor = "#565f89"
	defaultFocusColor  = "#7aa2f7"
	defaultTextColor   = "#c0caf5"
	defaultMutedColor  = "#737aa2"
	defaultPadding     = 1
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultLogMaxSize  = 5
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Mode:        LayoutModeRegistry,
			ReseedEmpty: true,
		},
		Appearance: AppearanceConfig{
			BorderStyle: BorderRounded,
			BorderColor: defaultBorderColor,
			FocusColor:  defaultFocusColor,
			TextColor:   defaultTextColor,
			MutedColor:  defaultMutedColor,
			Padding:     defaultPadding,
		},
		Keys: DefaultKeys(),
		Logging: LoggingConfig{
			Level:     defaultLogLevel,
			Format:    defaultLogFormat,
			MaxSizeMB: defaultLogMaxSize,
		},
	}
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		SplitHorizontal: []string{"h"},
		SplitVertical:   []string{"v"},
		Close:           []string{"x"},
		FocusNext:       []string{"tab", "right", "down"},
		FocusPrev:       []string{"shift+tab", "left", "up"},
		Seed:            []string{"n"},
		Help:            []string{"?"},
		Quit:            []string{"q", "ctrl+c"},
	}
}
