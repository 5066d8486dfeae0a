package port

import "github.com/bnema/tiles/internal/domain/entity"

//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// ViewRenderer draws a projected layout into a width x height cell area.
// focus is the Key of the highlighted leaf; an unknown key highlights nothing.
type ViewRenderer interface {
	Render(view *entity.View, focus string, width, height int) string
}
