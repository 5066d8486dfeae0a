// Package model provides Bubbletea models for the interactive CLI.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiles/internal/application/port"
	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/infrastructure/config"
	"github.com/bnema/tiles/internal/logging"
	"github.com/bnema/tiles/internal/ui/layout"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ConfigReloadedMsg is sent when the config file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when a config reload failed.
type ConfigErrorMsg struct {
	Err error
}

// themeSetter is implemented by renderers that can restyle on reload.
type themeSetter interface {
	SetTheme(theme *styles.Theme)
}

// TilesModel is the interactive panel layout.
type TilesModel struct {
	session  *layout.Session
	renderer port.ViewRenderer
	view     *entity.View
	focus    int

	help  help.Model
	keys  styles.TilesKeyMap
	theme *styles.Theme

	width         int
	height        int
	statusMessage string
	err           error

	ctx context.Context
}

// NewTilesModel creates the layout model and projects the initial view.
func NewTilesModel(
	ctx context.Context,
	theme *styles.Theme,
	renderer port.ViewRenderer,
	session *layout.Session,
	keys config.KeysConfig,
) TilesModel {
	m := TilesModel{
		session:  session,
		renderer: renderer,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.NewTilesKeyMap(keys),
		theme:    theme,
		width:    defaultWidth,
		height:   defaultHeight,
		ctx:      logging.WithComponent(ctx, "tui"),
	}
	m.help.Width = m.width
	m.project()
	return m
}

// Init implements tea.Model.
func (m TilesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.statusMessage = "config reloaded"
		return m, nil

	case ConfigErrorMsg:
		m.statusMessage = fmt.Sprintf("config error: %v", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m TilesModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.SplitHorizontal):
		m.invoke(func(l *entity.LeafView) func() { return l.SplitHorizontal })

	case key.Matches(msg, m.keys.SplitVertical):
		m.invoke(func(l *entity.LeafView) func() { return l.SplitVertical })

	case key.Matches(msg, m.keys.Close):
		m.invoke(func(l *entity.LeafView) func() { return l.Close })

	case key.Matches(msg, m.keys.Seed):
		if m.session.Seed(m.ctx) {
			m.statusMessage = ""
		} else {
			m.statusMessage = "layout is not empty"
		}
		m.project()
	}

	return m, nil
}

// invoke runs one action of the focused leaf and processes the queue.
func (m *TilesModel) invoke(pick func(*entity.LeafView) func()) {
	leaf := m.focusedLeaf()
	if leaf == nil {
		return
	}
	if action := pick(leaf); action != nil {
		action()
	}

	res := m.session.Process(m.ctx)
	logging.FromContext(m.ctx).Debug().
		Int("applied", res.Applied).
		Int("collapsed", res.Collapsed).
		Bool("reseeded", res.Reseeded).
		Msg("actions processed")

	m.statusMessage = ""
	m.project()
}

// project rebuilds the view and keeps the focus index in range.
func (m *TilesModel) project() {
	view, err := m.session.View()
	switch {
	case errors.Is(err, layout.ErrEmptyLayout):
		m.view, m.err = nil, nil
	case err != nil:
		m.view, m.err = nil, err
		logging.FromContext(m.ctx).Error().Err(err).Msg("projection failed")
	default:
		m.view, m.err = view, nil
	}
	m.clampFocus()
}

func (m *TilesModel) clampFocus() {
	n := len(m.leaves())
	switch {
	case n == 0:
		m.focus = 0
	case m.focus >= n:
		m.focus = n - 1
	case m.focus < 0:
		m.focus = 0
	}
}

func (m *TilesModel) moveFocus(delta int) {
	n := len(m.leaves())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m TilesModel) leaves() []*entity.LeafView {
	if m.view == nil {
		return nil
	}
	return m.view.Leaves()
}

func (m TilesModel) focusedLeaf() *entity.LeafView {
	leaves := m.leaves()
	if m.focus < 0 || m.focus >= len(leaves) {
		return nil
	}
	return leaves[m.focus]
}

// FocusedKey returns the key of the focused leaf, empty when there is none.
func (m TilesModel) FocusedKey() string {
	if leaf := m.focusedLeaf(); leaf != nil {
		return leaf.Key
	}
	return ""
}

// Layout returns the current projection, nil for an empty layout.
func (m TilesModel) Layout() *entity.View {
	return m.view
}

func (m *TilesModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	if ts, ok := m.renderer.(themeSetter); ok {
		ts.SetTheme(m.theme)
	}
	showAll := m.help.ShowAll
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = showAll
	m.help.Width = m.width
	m.keys = styles.NewTilesKeyMap(cfg.Keys)
	m.session.SetReseedEmpty(cfg.Layout.ReseedEmpty)
}

// View implements tea.Model.
func (m TilesModel) View() string {
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight <= 0 {
		return footer
	}

	body := m.renderer.Render(m.view, m.FocusedKey(), m.width, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m TilesModel) renderFooter() string {
	var status string
	switch {
	case m.err != nil:
		status = m.theme.ErrorStyle.Render(m.err.Error())
	case m.statusMessage != "":
		status = m.theme.Subtle.Render(m.statusMessage)
	case m.view == nil:
		status = m.theme.Subtle.Render(fmt.Sprintf("empty layout, press %s to open a panel", m.keys.Seed.Help().Key))
	}

	helpView := m.help.View(m.keys)
	if status == "" {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, helpView)
}
