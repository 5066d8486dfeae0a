package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/infrastructure/config"
)

func leafView(key, title string) *entity.View {
	return &entity.View{
		Kind: entity.ViewLeaf,
		Leaf: &entity.LeafView{Key: key, Title: title, Body: "Hello!"},
	}
}

func splitView(axis entity.Axis, lhs, rhs *entity.View) *entity.View {
	return &entity.View{Kind: entity.ViewSplit, Axis: axis, Children: [2]*entity.View{lhs, rhs}}
}

func assertSize(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height, out)
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d: %q", i, line)
	}
}

func TestPanelRenderer_LeafFillsArea(t *testing.T) {
	r := NewPanelRenderer(nil)

	out := r.Render(leafView("0", "Hello 0"), "0", 30, 6)

	assertSize(t, out, 30, 6)
	assert.Contains(t, out, "Hello 0")
	assert.Contains(t, out, "[H][V][X]")
	assert.Contains(t, out, "Hello!")
}

func TestPanelRenderer_DropsActionsWhenNarrow(t *testing.T) {
	r := NewPanelRenderer(nil)

	out := r.Render(leafView("0", "Hello 0"), "", 12, 4)

	assertSize(t, out, 12, 4)
	assert.NotContains(t, out, "[H][V][X]")
	assert.Contains(t, out, "Hello 0")
}

func TestPanelRenderer_Splits(t *testing.T) {
	tests := []struct {
		name          string
		view          *entity.View
		width, height int
	}{
		{
			name:  "horizontal odd width",
			view:  splitView(entity.AxisHorizontal, leafView("1", "Hello 1"), leafView("2", "Hello 2")),
			width: 41, height: 7,
		},
		{
			name:  "vertical odd height",
			view:  splitView(entity.AxisVertical, leafView("1", "Hello 1"), leafView("2", "Hello 2")),
			width: 40, height: 9,
		},
		{
			name: "nested",
			view: splitView(entity.AxisHorizontal,
				leafView("1", "Hello 1"),
				splitView(entity.AxisVertical, leafView("3", "Hello 3"), leafView("4", "Hello 4")),
			),
			width: 60, height: 12,
		},
		{
			name:  "too small for panels",
			view:  splitView(entity.AxisHorizontal, leafView("1", "Hello 1"), leafView("2", "Hello 2")),
			width: 3, height: 1,
		},
	}

	r := NewPanelRenderer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.view, "1", tt.width, tt.height)
			assertSize(t, out, tt.width, tt.height)
		})
	}
}

func TestPanelRenderer_RemainderGoesRight(t *testing.T) {
	r := NewPanelRenderer(nil)
	view := splitView(entity.AxisHorizontal, leafView("1", "L"), leafView("2", "R"))

	out := r.Render(view, "", 21, 4)

	// The right panel starts at column 10 with its top-left corner.
	first := []rune(strings.Split(out, "\n")[0])
	require.Len(t, first, 21)
	assert.Equal(t, '╭', first[0])
	assert.Equal(t, '╮', first[9])
	assert.Equal(t, '╭', first[10])
	assert.Equal(t, '╮', first[20])
}

func TestPanelRenderer_EmptyLayout(t *testing.T) {
	r := NewPanelRenderer(nil)

	out := r.Render(nil, "", 20, 5)

	assertSize(t, out, 20, 5)
	assert.Contains(t, out, "no panels")
	assert.Empty(t, r.Render(nil, "", 0, 5))
}

func TestPanelRenderer_BorderStyleFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.BorderStyle = config.BorderDouble
	r := NewPanelRenderer(NewTheme(cfg))

	out := r.Render(leafView("0", "Hello 0"), "", 20, 4)

	assert.Contains(t, out, "╔")
	assert.NotContains(t, out, "╭")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Hello", truncate("Hello", 5))
	assert.Equal(t, "Hel…", truncate("Hello", 4))
	assert.Equal(t, "H", truncate("Hello", 1))
	assert.Equal(t, "", truncate("Hello", 0))
}
