package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

var (
	// ErrNilRegistry is returned when a registry operation gets no registry.
	ErrNilRegistry = errors.New("registry is required")
	// ErrUnknownAction is returned for an action kind the use case cannot apply.
	ErrUnknownAction = errors.New("unknown action")
)

// ManagePanelsUseCase applies leaf actions to a panel registry.
type ManagePanelsUseCase struct{}

// NewManagePanelsUseCase creates a new registry use case.
func NewManagePanelsUseCase() *ManagePanelsUseCase {
	return &ManagePanelsUseCase{}
}

// SplitPanelInput contains parameters for splitting a panel.
type SplitPanelInput struct {
	Registry *entity.Registry
	Target   entity.PanelID
	Axis     entity.Axis
}

// SplitPanelOutput contains the result of a split.
type SplitPanelOutput struct {
	Applied bool
	Moved   entity.PanelID // new address of the target's content
	Created entity.PanelID // the fresh content panel
}

// Split splits the target content panel. A stale or non-leaf target is a
// no-op reported through Applied.
func (uc *ManagePanelsUseCase) Split(ctx context.Context, input SplitPanelInput) (*SplitPanelOutput, error) {
	log := logging.FromContext(ctx)
	if input.Registry == nil {
		return nil, ErrNilRegistry
	}

	if !input.Registry.Split(input.Target, input.Axis) {
		log.Debug().
			Uint64("target_id", uint64(input.Target)).
			Str("axis", input.Axis.String()).
			Msg("split ignored, target is not a content panel")
		return &SplitPanelOutput{}, nil
	}

	split, _ := input.Registry.Lookup(input.Target)
	log.Info().
		Uint64("target_id", uint64(input.Target)).
		Uint64("moved_to", uint64(split.LHS)).
		Uint64("created", uint64(split.RHS)).
		Str("axis", input.Axis.String()).
		Msg("panel split completed")

	return &SplitPanelOutput{Applied: true, Moved: split.LHS, Created: split.RHS}, nil
}

// ClosePanelInput contains parameters for closing a panel.
type ClosePanelInput struct {
	Registry *entity.Registry
	Parent   *entity.PanelID
	Target   entity.PanelID
}

// ClosePanelOutput contains the result of a close.
type ClosePanelOutput struct {
	Applied bool
	Emptied bool // the last panel was closed
}

// Close removes the target content panel and promotes its sibling.
func (uc *ManagePanelsUseCase) Close(ctx context.Context, input ClosePanelInput) (*ClosePanelOutput, error) {
	log := logging.FromContext(ctx)
	if input.Registry == nil {
		return nil, ErrNilRegistry
	}

	evt := log.Debug().Uint64("target_id", uint64(input.Target))
	if input.Parent != nil {
		evt = evt.Uint64("parent_id", uint64(*input.Parent))
	}
	evt.Msg("closing panel")

	if !input.Registry.Close(input.Parent, input.Target) {
		log.Debug().Uint64("target_id", uint64(input.Target)).Msg("close ignored, stale address")
		return &ClosePanelOutput{}, nil
	}

	out := &ClosePanelOutput{Applied: true, Emptied: input.Registry.IsEmpty()}
	if out.Emptied {
		log.Info().Msg("closed last panel")
	} else {
		log.Info().Uint64("closed_id", uint64(input.Target)).Msg("panel closed, sibling promoted")
	}
	return out, nil
}

// Apply routes action to Split or Close. It reports whether the registry changed.
func (uc *ManagePanelsUseCase) Apply(ctx context.Context, reg *entity.Registry, action Action) (bool, error) {
	if axis, ok := action.Kind.Axis(); ok {
		out, err := uc.Split(ctx, SplitPanelInput{Registry: reg, Target: action.Address.ID, Axis: axis})
		if err != nil {
			return false, err
		}
		return out.Applied, nil
	}

	if action.Kind == ActionClose {
		out, err := uc.Close(ctx, ClosePanelInput{
			Registry: reg,
			Parent:   action.Address.Parent,
			Target:   action.Address.ID,
		})
		if err != nil {
			return false, err
		}
		return out.Applied, nil
	}

	return false, fmt.Errorf("%w: %q", ErrUnknownAction, action.Kind)
}

// Bind returns a mutation applying action to reg when flushed.
func (uc *ManagePanelsUseCase) Bind(reg *entity.Registry, action Action) Mutation {
	return func(ctx context.Context) {
		if _, err := uc.Apply(ctx, reg, action); err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("action", string(action.Kind)).Msg("failed to apply action")
		}
	}
}
