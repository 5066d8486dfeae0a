// Package config provides configuration management for tiles with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for tiles.
type Config struct {
	Layout     LayoutConfig     `mapstructure:"layout" toml:"layout" yaml:"layout" json:"layout" jsonschema:"description=Panel tree behaviour"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" yaml:"appearance" json:"appearance" jsonschema:"description=Panel colors and borders"`
	Keys       KeysConfig       `mapstructure:"keys" toml:"keys" yaml:"keys" json:"keys" jsonschema:"description=Key bindings"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" yaml:"logging" json:"logging" jsonschema:"description=Log output"`
}

// LayoutMode selects the panel tree representation.
type LayoutMode string

const (
	// LayoutModeRegistry keeps panels in a flat map keyed by stable identifiers.
	LayoutModeRegistry LayoutMode = "registry"
	// LayoutModeTree keeps panels in an owned recursive tree.
	LayoutModeTree LayoutMode = "tree"
)

// LayoutConfig holds panel tree settings.
type LayoutConfig struct {
	// Mode is the tree representation used by `tiles run` and `tiles replay`.
	Mode LayoutMode `mapstructure:"mode" toml:"mode" yaml:"mode" json:"mode" jsonschema:"enum=registry,enum=tree,default=registry"`
	// ReseedEmpty installs a fresh panel once the last one is closed.
	ReseedEmpty bool `mapstructure:"reseed_empty" toml:"reseed_empty" yaml:"reseed_empty" json:"reseed_empty" jsonschema:"default=true"`
}

// BorderStyle names a lipgloss border.
type BorderStyle string

const (
	BorderRounded BorderStyle = "rounded"
	BorderNormal  BorderStyle = "normal"
	BorderThick   BorderStyle = "thick"
	BorderDouble  BorderStyle = "double"
	BorderHidden  BorderStyle = "hidden"
)

// AppearanceConfig holds the panel palette.
// Colors are hex strings ("#7aa2f7") or ANSI color numbers ("12").
type AppearanceConfig struct {
	BorderStyle BorderStyle `mapstructure:"border_style" toml:"border_style" yaml:"border_style" json:"border_style" jsonschema:"enum=rounded,enum=normal,enum=thick,enum=double,enum=hidden"`
	BorderColor string      `mapstructure:"border_color" toml:"border_color" yaml:"border_color" json:"border_color"`
	FocusColor  string      `mapstructure:"focus_color" toml:"focus_color" yaml:"focus_color" json:"focus_color"`
	TextColor   string      `mapstructure:"text_color" toml:"text_color" yaml:"text_color" json:"text_color"`
	MutedColor  string      `mapstructure:"muted_color" toml:"muted_color" yaml:"muted_color" json:"muted_color"`
	// Padding is the horizontal padding inside each panel, in cells.
	Padding int `mapstructure:"padding" toml:"padding" yaml:"padding" json:"padding" jsonschema:"minimum=0,maximum=4"`
}

// KeysConfig maps each action to the keys that trigger it.
// Key names follow bubbletea's KeyMsg.String() ("tab", "shift+tab", "ctrl+c").
type KeysConfig struct {
	SplitHorizontal []string `mapstructure:"split_horizontal" toml:"split_horizontal" yaml:"split_horizontal" json:"split_horizontal"`
	SplitVertical   []string `mapstructure:"split_vertical" toml:"split_vertical" yaml:"split_vertical" json:"split_vertical"`
	Close           []string `mapstructure:"close" toml:"close" yaml:"close" json:"close"`
	FocusNext       []string `mapstructure:"focus_next" toml:"focus_next" yaml:"focus_next" json:"focus_next"`
	FocusPrev       []string `mapstructure:"focus_prev" toml:"focus_prev" yaml:"focus_prev" json:"focus_prev"`
	Seed            []string `mapstructure:"seed" toml:"seed" yaml:"seed" json:"seed"`
	Help            []string `mapstructure:"help" toml:"help" yaml:"help" json:"help"`
	Quit            []string `mapstructure:"quit" toml:"quit" yaml:"quit" json:"quit"`
}

// Bindings returns every action with its keys, in display order.
func (k KeysConfig) Bindings() []KeyBinding {
	return []KeyBinding{
		{Action: "split_horizontal", Keys: k.SplitHorizontal},
		{Action: "split_vertical", Keys: k.SplitVertical},
		{Action: "close", Keys: k.Close},
		{Action: "focus_next", Keys: k.FocusNext},
		{Action: "focus_prev", Keys: k.FocusPrev},
		{Action: "seed", Keys: k.Seed},
		{Action: "help", Keys: k.Help},
		{Action: "quit", Keys: k.Quit},
	}
}

// KeyBinding pairs an action name with its keys.
type KeyBinding struct {
	Action string
	Keys   []string
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File overrides the log file path. Empty means $XDG_STATE_HOME/tiles/tiles.log.
	File string `mapstructure:"file" toml:"file" yaml:"file" json:"file"`
	// MaxSizeMB rotates the log file once it grows past this size. 0 disables rotation.
	MaxSizeMB int `mapstructure:"max_size_mb" toml:"max_size_mb" yaml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
}
