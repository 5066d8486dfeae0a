package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tiles/internal/domain/entity"
)

// Section names
const (
	SectionLayout     = "Layout"
	SectionAppearance = "Appearance"
	SectionKeys       = "Keys"
	SectionLogging    = "Logging"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()
	var keys []entity.ConfigKeyInfo

	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getKeysKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)

	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.mode",
			Type:        "string",
			Default:     string(defaults.Layout.Mode),
			Description: "Panel tree representation",
			Values:      []string{string(LayoutModeRegistry), string(LayoutModeTree)},
			Section:     SectionLayout,
		},
		{
			Key:         "layout.reseed_empty",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Layout.ReseedEmpty),
			Description: "Open a fresh panel after the last one is closed",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	colorKey := func(key, def, desc string) entity.ConfigKeyInfo {
		return entity.ConfigKeyInfo{
			Key:         key,
			Type:        "string",
			Default:     def,
			Description: desc,
			Range:       "#rgb, #rrggbb or 0-255",
			Section:     SectionAppearance,
		}
	}
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.border_style",
			Type:        "string",
			Default:     string(defaults.Appearance.BorderStyle),
			Description: "Panel border",
			Values: []string{
				string(BorderRounded), string(BorderNormal), string(BorderThick),
				string(BorderDouble), string(BorderHidden),
			},
			Section: SectionAppearance,
		},
		colorKey("appearance.border_color", defaults.Appearance.BorderColor, "Border color of unfocused panels"),
		colorKey("appearance.focus_color", defaults.Appearance.FocusColor, "Border and title color of the focused panel"),
		colorKey("appearance.text_color", defaults.Appearance.TextColor, "Panel body text color"),
		colorKey("appearance.muted_color", defaults.Appearance.MutedColor, "Action hints and help text color"),
		{
			Key:         "appearance.padding",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Appearance.Padding),
			Description: "Horizontal padding inside each panel, in cells",
			Range:       "0-4",
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getKeysKeys(defaults *Config) []entity.ConfigKeyInfo {
	descriptions := map[string]string{
		"split_horizontal": "Split the focused panel side by side",
		"split_vertical":   "Split the focused panel top and bottom",
		"close":            "Close the focused panel",
		"focus_next":       "Focus the next panel",
		"focus_prev":       "Focus the previous panel",
		"seed":             "Open a panel in an empty layout",
		"help":             "Toggle the full help",
		"quit":             "Quit",
	}

	bindings := defaults.Keys.Bindings()
	keys := make([]entity.ConfigKeyInfo, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, entity.ConfigKeyInfo{
			Key:         "keys." + b.Action,
			Type:        "[]string",
			Default:     strings.Join(b.Keys, ", "),
			Description: descriptions[b.Action],
			Section:     SectionKeys,
		})
	}
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     "(XDG_STATE_HOME/tiles/tiles.log)",
			Description: "Log file path",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size (0 disables rotation)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}
