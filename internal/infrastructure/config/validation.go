package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateKeys(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	switch config.Layout.Mode {
	case LayoutModeRegistry, LayoutModeTree:
		return nil
	default:
		return []string{fmt.Sprintf("layout.mode must be one of: registry, tree (got: %s)", config.Layout.Mode)}
	}
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	switch config.Appearance.BorderStyle {
	case BorderRounded, BorderNormal, BorderThick, BorderDouble, BorderHidden:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"appearance.border_style must be one of: rounded, normal, thick, double, hidden (got: %s)",
			config.Appearance.BorderStyle,
		))
	}

	colors := []struct {
		key   string
		value string
	}{
		{"appearance.border_color", config.Appearance.BorderColor},
		{"appearance.focus_color", config.Appearance.FocusColor},
		{"appearance.text_color", config.Appearance.TextColor},
		{"appearance.muted_color", config.Appearance.MutedColor},
	}
	for _, c := range colors {
		if !isColor(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s must be a hex color (#rgb or #rrggbb) or an ANSI color number 0-255 (got: %q)", c.key, c.value,
			))
		}
	}

	if config.Appearance.Padding < 0 || config.Appearance.Padding > 4 {
		validationErrors = append(validationErrors, "appearance.padding must be between 0 and 4")
	}
	return validationErrors
}

func isColor(s string) bool {
	if hexColorRegex.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

func validateKeys(config *Config) []string {
	var validationErrors []string
	owners := make(map[string]string)

	for _, b := range config.Keys.Bindings() {
		if len(b.Keys) == 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("keys.%s must have at least one key", b.Action))
			continue
		}
		for _, k := range b.Keys {
			k = strings.TrimSpace(k)
			if k == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keys.%s contains an empty key", b.Action))
				continue
			}
			if owner, ok := owners[k]; ok && owner != b.Action {
				validationErrors = append(validationErrors, fmt.Sprintf(
					"key %q is bound to both keys.%s and keys.%s", k, owner, b.Action,
				))
				continue
			}
			owners[k] = b.Action
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLevels[strings.ToLower(config.Logging.Level)] {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}

	switch strings.ToLower(config.Logging.Format) {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format,
		))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	return validationErrors
}
