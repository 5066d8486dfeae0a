// Package layout projects panel layouts into render trees and drives the
// mutate-then-project cycle for one layout session.
package layout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

// ErrEmptyLayout is returned when projecting a layout with no root.
var ErrEmptyLayout = errors.New("layout is empty")

// ErrMissingPanel is returned when a split references an identifier the
// registry does not hold.
var ErrMissingPanel = errors.New("panel not found")

const leafBody = "Hello!"

// Projector derives View trees from layouts. Projection never mutates the
// layout: leaf actions only enqueue mutations on the dispatcher.
type Projector struct {
	dispatcher *usecase.Dispatcher
	panels     *usecase.ManagePanelsUseCase
	trees      *usecase.ManageTreeUseCase
	logger     zerolog.Logger
}

// NewProjector creates a projector whose leaf actions enqueue on dispatcher.
func NewProjector(
	ctx context.Context,
	dispatcher *usecase.Dispatcher,
	panels *usecase.ManagePanelsUseCase,
	trees *usecase.ManageTreeUseCase,
) *Projector {
	log := logging.FromContext(ctx)
	return &Projector{
		dispatcher: dispatcher,
		panels:     panels,
		trees:      trees,
		logger:     log.With().Str("component", "projector").Logger(),
	}
}

// ProjectRegistry builds the View for reg. Leaf keys are panel identifiers.
func (p *Projector) ProjectRegistry(reg *entity.Registry) (*entity.View, error) {
	if reg == nil {
		return nil, usecase.ErrNilRegistry
	}
	if reg.IsEmpty() {
		return nil, ErrEmptyLayout
	}

	view, err := p.projectPanel(reg, entity.RootID, nil, 0)
	if err != nil {
		return nil, err
	}
	p.logger.Trace().Int("panels", reg.Len()).Msg("registry projected")
	return view, nil
}

func (p *Projector) projectPanel(reg *entity.Registry, id entity.PanelID, parent *entity.PanelID, depth int) (*entity.View, error) {
	panel, ok := reg.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingPanel, id)
	}

	if panel.IsLeaf() {
		addr := usecase.Address{ID: id, Parent: parent}
		return &entity.View{
			Kind: entity.ViewLeaf,
			Leaf: &entity.LeafView{
				Key:             strconv.FormatUint(uint64(id), 10),
				Title:           fmt.Sprintf("Hello %d", id),
				Body:            leafBody,
				Depth:           depth,
				SplitHorizontal: p.enqueueAction(reg, usecase.ActionSplitHorizontal, addr),
				SplitVertical:   p.enqueueAction(reg, usecase.ActionSplitVertical, addr),
				Close:           p.enqueueAction(reg, usecase.ActionClose, addr),
			},
		}, nil
	}

	self := id
	lhs, err := p.projectPanel(reg, panel.LHS, &self, depth+1)
	if err != nil {
		return nil, err
	}
	rhs, err := p.projectPanel(reg, panel.RHS, &self, depth+1)
	if err != nil {
		return nil, err
	}
	return &entity.View{
		Kind:     entity.ViewSplit,
		Axis:     panel.Axis,
		Children: [2]*entity.View{lhs, rhs},
	}, nil
}

func (p *Projector) enqueueAction(reg *entity.Registry, kind usecase.ActionKind, addr usecase.Address) func() {
	mutation := p.panels.Bind(reg, usecase.Action{Kind: kind, Address: addr})
	return func() {
		p.dispatcher.Enqueue(mutation)
	}
}

// ProjectTree builds the View for tree. Leaf keys are left/right paths from
// the root ("/", "/L", "/LR", ...) and change when the structure does.
func (p *Projector) ProjectTree(tree *entity.Tree) (*entity.View, error) {
	if tree == nil {
		return nil, usecase.ErrNilTree
	}
	if tree.IsEmpty() {
		return nil, ErrEmptyLayout
	}
	return p.projectNode(tree, tree.RootSlot(), "/", 0), nil
}

func (p *Projector) projectNode(tree *entity.Tree, slot entity.Slot, path string, depth int) *entity.View {
	switch node := slot.Get().(type) {
	case *entity.Split:
		return &entity.View{
			Kind: entity.ViewSplit,
			Axis: node.Axis,
			Children: [2]*entity.View{
				p.projectNode(tree, node.LHSSlot(), path+"L", depth+1),
				p.projectNode(tree, node.RHSSlot(), path+"R", depth+1),
			},
		}
	case *entity.Leaf:
		splitH := p.trees.BindSplit(tree, slot, entity.AxisHorizontal)
		splitV := p.trees.BindSplit(tree, slot, entity.AxisVertical)
		closeLeaf := p.trees.BindClose(node)
		return &entity.View{
			Kind: entity.ViewLeaf,
			Leaf: &entity.LeafView{
				Key:             path,
				Title:           node.Label,
				Body:            leafBody,
				Depth:           depth,
				SplitHorizontal: func() { p.dispatcher.Enqueue(splitH) },
				SplitVertical:   func() { p.dispatcher.Enqueue(splitV) },
				Close:           func() { p.dispatcher.Enqueue(closeLeaf) },
			},
		}
	default:
		// Unreachable while every split keeps two children.
		p.logger.Error().Str("path", path).Msg("absent child under split")
		return nil
	}
}
