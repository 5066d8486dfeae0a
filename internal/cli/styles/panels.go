package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/tiles/internal/application/port"
	"github.com/bnema/tiles/internal/domain/entity"
)

var _ port.ViewRenderer = (*PanelRenderer)(nil)

const (
	panelActions = "[H][V][X]"
	emptyMessage = "no panels"
	ellipsis     = "…"
)

// PanelRenderer draws a projected layout as bordered lipgloss boxes.
// It implements port.ViewRenderer.
type PanelRenderer struct {
	theme *Theme
}

// NewPanelRenderer creates a renderer using theme.
func NewPanelRenderer(theme *Theme) *PanelRenderer {
	if theme == nil {
		theme = NewTheme(nil)
	}
	return &PanelRenderer{theme: theme}
}

// SetTheme swaps the theme used by later renders.
func (r *PanelRenderer) SetTheme(theme *Theme) {
	if theme != nil {
		r.theme = theme
	}
}

// Render draws view into exactly width x height cells. Horizontal splits
// halve the width, vertical splits halve the height; an odd remainder goes
// to the right or bottom child.
func (r *PanelRenderer) Render(view *entity.View, focus string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if view == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, r.theme.EmptyState.Render(truncate(emptyMessage, width)))
	}
	return r.render(view, focus, width, height)
}

func (r *PanelRenderer) render(view *entity.View, focus string, width, height int) string {
	if view == nil {
		return blank(width, height)
	}
	if view.Kind == entity.ViewLeaf {
		return r.renderLeaf(view.Leaf, view.Leaf.Key == focus, width, height)
	}

	if view.Axis == entity.AxisHorizontal {
		left := width / 2
		if left == 0 {
			return r.render(view.Children[1], focus, width, height)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top,
			r.render(view.Children[0], focus, left, height),
			r.render(view.Children[1], focus, width-left, height),
		)
	}
	top := height / 2
	if top == 0 {
		return r.render(view.Children[1], focus, width, height)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		r.render(view.Children[0], focus, width, top),
		r.render(view.Children[1], focus, width, height-top),
	)
}

func (r *PanelRenderer) renderLeaf(leaf *entity.LeafView, focused bool, width, height int) string {
	style := r.theme.Panel
	titleStyle := r.theme.PanelTitle
	if focused {
		style = r.theme.PanelFocused
		titleStyle = r.theme.Highlight
	}

	boxW := width - style.GetHorizontalBorderSize()
	boxH := height - style.GetVerticalBorderSize()
	innerW := boxW - style.GetHorizontalPadding()
	if innerW < 1 || boxH < 1 {
		return blank(width, height)
	}

	lines := []string{r.header(leaf.Title, titleStyle, innerW)}
	if boxH > 1 {
		lines = append(lines, r.theme.Normal.Render(truncate(leaf.Body, innerW)))
	}

	return style.
		Width(boxW).
		Height(boxH).
		Render(strings.Join(lines, "\n"))
}

// header lays out the title on the left and the action hints on the right,
// dropping the hints when they do not fit.
func (r *PanelRenderer) header(title string, titleStyle lipgloss.Style, width int) string {
	actionsW := lipgloss.Width(panelActions)
	if lipgloss.Width(title)+1+actionsW > width {
		return titleStyle.Render(truncate(title, width))
	}
	gap := width - lipgloss.Width(title) - actionsW
	return titleStyle.Render(title) + strings.Repeat(" ", gap) + r.theme.PanelActions.Render(panelActions)
}

// truncate shortens plain text to width cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
