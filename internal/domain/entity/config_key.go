package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "layout.mode")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool", "[]string")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values, empty if not an enum
	Values []string `json:"values,omitempty"`

	// Range describes value constraints (e.g., "0-4"), empty if none
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Layout", "Keys")
	Section string `json:"section"`
}
