package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "unknown layout mode",
			mutate:  func(c *Config) { c.Layout.Mode = "grid" },
			wantMsg: "layout.mode",
		},
		{
			name:    "unknown border style",
			mutate:  func(c *Config) { c.Appearance.BorderStyle = "dotted" },
			wantMsg: "appearance.border_style",
		},
		{
			name:    "bad hex color",
			mutate:  func(c *Config) { c.Appearance.FocusColor = "#12345" },
			wantMsg: "appearance.focus_color",
		},
		{
			name:    "ansi color out of range",
			mutate:  func(c *Config) { c.Appearance.TextColor = "256" },
			wantMsg: "appearance.text_color",
		},
		{
			name:    "padding too large",
			mutate:  func(c *Config) { c.Appearance.Padding = 5 },
			wantMsg: "appearance.padding",
		},
		{
			name:    "action without keys",
			mutate:  func(c *Config) { c.Keys.Close = nil },
			wantMsg: "keys.close must have at least one key",
		},
		{
			name:    "key bound twice",
			mutate:  func(c *Config) { c.Keys.Close = []string{"h"} },
			wantMsg: `key "h" is bound to both keys.split_horizontal and keys.close`,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantMsg: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantMsg: "logging.format",
		},
		{
			name:    "negative log size",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = -1 },
			wantMsg: "logging.max_size_mb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateConfig_AcceptsAnsiAndShortHex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.BorderColor = "8"
	cfg.Appearance.FocusColor = "#fa0"

	assert.NoError(t, validateConfig(cfg))
}
