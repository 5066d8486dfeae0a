package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tiles/internal/application/port/mocks"
	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/infrastructure/config"
	"github.com/bnema/tiles/internal/ui/layout"
)

func newTestModel(t *testing.T, mode layout.Mode, reseed bool) (TilesModel, *mocks.MockViewRenderer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockViewRenderer(ctrl)

	session, err := layout.NewSession(context.Background(), mode, layout.SessionOptions{ReseedEmpty: reseed})
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	m := NewTilesModel(context.Background(), styles.NewTheme(cfg), renderer, session, cfg.Keys)
	return m, renderer
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m TilesModel, msgs ...tea.Msg) TilesModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(TilesModel)
		require.True(t, ok)
	}
	return m
}

func TestTilesModel_InitialProjection(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	require.NotNil(t, m.Layout())
	assert.Equal(t, "Hello 0", m.Layout().Outline())
	assert.Equal(t, "0", m.FocusedKey())
	assert.Nil(t, m.Init())
}

func TestTilesModel_ViewPassesFocusAndSize(t *testing.T) {
	m, renderer := newTestModel(t, layout.ModeRegistry, true)
	m = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	// One footer line for the short help.
	renderer.EXPECT().Render(gomock.Any(), "0", 60, 19).Return("BODY")

	out := m.View()

	assert.Contains(t, out, "BODY")
	assert.Contains(t, out, "split")
}

func TestTilesModel_SplitAndFocus(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	m = press(t, m, runeKey("h"))
	assert.Equal(t, "H(Hello 1,Hello 2)", m.Layout().Outline())
	assert.Equal(t, "1", m.FocusedKey())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "2", m.FocusedKey())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "1", m.FocusedKey(), "focus wraps around")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "2", m.FocusedKey())

	m = press(t, m, runeKey("v"))
	assert.Equal(t, "H(Hello 1,V(Hello 3,Hello 4))", m.Layout().Outline())
	assert.Equal(t, "3", m.FocusedKey())
}

func TestTilesModel_CloseClampsFocus(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	m = press(t, m, runeKey("h"), tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "2", m.FocusedKey())

	m = press(t, m, runeKey("x"))

	assert.Equal(t, "Hello 0", m.Layout().Outline())
	assert.Equal(t, "0", m.FocusedKey())
}

func TestTilesModel_TreeEmptyThenSeed(t *testing.T) {
	m, renderer := newTestModel(t, layout.ModeTree, false)

	m = press(t, m, runeKey("x"))
	assert.Equal(t, "Hello 2", m.Layout().Outline())

	m = press(t, m, runeKey("x"))
	assert.Nil(t, m.Layout())
	assert.Empty(t, m.FocusedKey())

	// Actions on an empty layout are ignored.
	m = press(t, m, runeKey("h"))
	assert.Nil(t, m.Layout())

	renderer.EXPECT().Render(nil, "", 80, gomock.Any()).Return("")
	assert.Contains(t, m.View(), "press n to open a panel")

	m = press(t, m, runeKey("n"))
	require.NotNil(t, m.Layout())
	assert.Len(t, m.Layout().Leaves(), 1)

	m = press(t, m, runeKey("n"))
	assert.Len(t, m.Layout().Leaves(), 1, "seeding a non-empty layout is a no-op")
}

func TestTilesModel_ReseedOnEmpty(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	m = press(t, m, runeKey("x"))

	require.NotNil(t, m.Layout())
	assert.Len(t, m.Layout().Leaves(), 1)
	assert.Equal(t, "0", m.FocusedKey())
}

func TestTilesModel_ConfigReload(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	cfg := config.DefaultConfig()
	cfg.Keys.Close = []string{"d"}
	cfg.Layout.ReseedEmpty = false
	m = press(t, m, ConfigReloadedMsg{Config: cfg})

	m = press(t, m, runeKey("x"))
	require.NotNil(t, m.Layout(), "old close key is unbound")

	m = press(t, m, runeKey("d"))
	assert.Nil(t, m.Layout(), "reseed disabled by the reloaded config")
}

func TestTilesModel_ConfigErrorShowsStatus(t *testing.T) {
	m, renderer := newTestModel(t, layout.ModeRegistry, true)
	m = press(t, m, ConfigErrorMsg{Err: errors.New("bad border")})

	renderer.EXPECT().Render(gomock.Any(), "0", 80, 22).Return("BODY")

	assert.Contains(t, m.View(), "config error: bad border")
}

func TestTilesModel_RealRendererThemeSwap(t *testing.T) {
	session, err := layout.NewSession(context.Background(), layout.ModeRegistry, layout.SessionOptions{})
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	theme := styles.NewTheme(cfg)
	m := NewTilesModel(context.Background(), theme, styles.NewPanelRenderer(theme), session, cfg.Keys)

	assert.Contains(t, m.View(), "╭")

	reloaded := config.DefaultConfig()
	reloaded.Appearance.BorderStyle = config.BorderDouble
	m = press(t, m, ConfigReloadedMsg{Config: reloaded})

	out := m.View()
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "Hello 0")
}

func TestTilesModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, layout.ModeRegistry, true)

	_, cmd := m.Update(runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
