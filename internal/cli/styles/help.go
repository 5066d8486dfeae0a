package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiles/internal/infrastructure/config"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// TilesKeyMap defines keybindings for the interactive layout.
type TilesKeyMap struct {
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	Close           key.Binding
	FocusNext       key.Binding
	FocusPrev       key.Binding
	Seed            key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TilesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitHorizontal, k.SplitVertical, k.Close, k.FocusNext, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k TilesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitHorizontal, k.SplitVertical, k.Close},
		{k.FocusNext, k.FocusPrev, k.Seed},
		{k.Help, k.Quit},
	}
}

// NewTilesKeyMap builds the keymap from the configured keys.
func NewTilesKeyMap(keys config.KeysConfig) TilesKeyMap {
	return TilesKeyMap{
		SplitHorizontal: binding(keys.SplitHorizontal, "split side by side"),
		SplitVertical:   binding(keys.SplitVertical, "split stacked"),
		Close:           binding(keys.Close, "close"),
		FocusNext:       binding(keys.FocusNext, "next panel"),
		FocusPrev:       binding(keys.FocusPrev, "previous panel"),
		Seed:            binding(keys.Seed, "new panel"),
		Help:            binding(keys.Help, "help"),
		Quit:            binding(keys.Quit, "quit"),
	}
}

// DefaultTilesKeyMap returns the default keybindings.
func DefaultTilesKeyMap() TilesKeyMap {
	return NewTilesKeyMap(config.DefaultKeys())
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

var keyGlyphs = map[string]string{
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
	"shift+tab": "⇧tab",
}

func helpLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if g, ok := keyGlyphs[k]; ok {
			k = g
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Focus)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Focus)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
