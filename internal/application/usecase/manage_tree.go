package usecase

import (
	"context"
	"errors"

	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

// ErrNilTree is returned when a tree operation gets no tree.
var ErrNilTree = errors.New("tree is required")

// ManageTreeUseCase applies leaf actions to an owned panel tree.
// Close only flags the leaf; Collapse prunes flagged leaves once per pass.
type ManageTreeUseCase struct{}

// NewManageTreeUseCase creates a new tree use case.
func NewManageTreeUseCase() *ManageTreeUseCase {
	return &ManageTreeUseCase{}
}

// SplitLeaf splits the leaf held by slot. Returns the new leaf, or nil when
// the slot no longer holds a leaf.
func (uc *ManageTreeUseCase) SplitLeaf(ctx context.Context, tree *entity.Tree, slot entity.Slot, axis entity.Axis) (*entity.Leaf, error) {
	log := logging.FromContext(ctx)
	if tree == nil {
		return nil, ErrNilTree
	}

	target, _ := slot.Get().(*entity.Leaf)
	fresh := tree.SplitAt(slot, axis)
	if fresh == nil {
		log.Debug().Str("axis", axis.String()).Msg("split ignored, slot holds no leaf")
		return nil, nil
	}

	log.Info().
		Str("target", target.Label).
		Str("created", fresh.Label).
		Str("axis", axis.String()).
		Msg("leaf split completed")
	return fresh, nil
}

// RequestClose flags leaf for removal on the next Collapse.
func (uc *ManageTreeUseCase) RequestClose(ctx context.Context, leaf *entity.Leaf) {
	if leaf == nil {
		return
	}
	leaf.RequestClose()
	logging.FromContext(ctx).Debug().Str("leaf", leaf.Label).Msg("leaf marked for close")
}

// Collapse runs the pruning fold over tree and returns how many leaves it removed.
func (uc *ManageTreeUseCase) Collapse(ctx context.Context, tree *entity.Tree) (int, error) {
	if tree == nil {
		return 0, ErrNilTree
	}

	removed := tree.Collapse()
	if removed > 0 {
		logging.FromContext(ctx).Info().
			Int("removed", removed).
			Bool("empty", tree.IsEmpty()).
			Msg("tree collapsed")
	}
	return removed, nil
}

// BindSplit returns a mutation splitting the leaf at slot when flushed.
func (uc *ManageTreeUseCase) BindSplit(tree *entity.Tree, slot entity.Slot, axis entity.Axis) Mutation {
	return func(ctx context.Context) {
		if _, err := uc.SplitLeaf(ctx, tree, slot, axis); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to split leaf")
		}
	}
}

// BindClose returns a mutation flagging leaf when flushed.
func (uc *ManageTreeUseCase) BindClose(leaf *entity.Leaf) Mutation {
	return func(ctx context.Context) {
		uc.RequestClose(ctx, leaf)
	}
}
