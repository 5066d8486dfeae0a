// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiles/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.AppearanceConfig)
	Border lipgloss.Color
	Focus  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	BorderShape lipgloss.Border
	Padding     int

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Panel styles
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelActions lipgloss.Style
	EmptyState   lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default appearance.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the appearance section.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	t := &Theme{
		Border:      lipgloss.Color(a.BorderColor),
		Focus:       lipgloss.Color(a.FocusColor),
		Text:        lipgloss.Color(a.TextColor),
		Muted:       lipgloss.Color(a.MutedColor),
		Error:       lipgloss.Color("#ef4444"),
		Warning:     lipgloss.Color("#e0af68"),
		BorderShape: borderFor(a.BorderStyle),
		Padding:     a.Padding,
	}

	t.buildStyles()
	return t
}

func borderFor(s config.BorderStyle) lipgloss.Border {
	switch s {
	case config.BorderNormal:
		return lipgloss.NormalBorder()
	case config.BorderThick:
		return lipgloss.ThickBorder()
	case config.BorderDouble:
		return lipgloss.DoubleBorder()
	case config.BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Focus).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	// Panels: width and height are set per render.
	t.Panel = lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, t.Padding)

	t.PanelFocused = t.Panel.
		BorderForeground(t.Focus)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.PanelActions = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.EmptyState = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Focus)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)
}
