package usecase

import (
	"context"

	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

// ActionKind names a leaf-scoped user action.
type ActionKind string

const (
	ActionSplitHorizontal ActionKind = "split_horizontal"
	ActionSplitVertical   ActionKind = "split_vertical"
	ActionClose           ActionKind = "close"
)

// Axis returns the split axis for split actions.
func (k ActionKind) Axis() (entity.Axis, bool) {
	switch k {
	case ActionSplitHorizontal:
		return entity.AxisHorizontal, true
	case ActionSplitVertical:
		return entity.AxisVertical, true
	default:
		return 0, false
	}
}

// Address locates a registry panel: its own identifier plus the identifier of
// the split holding it (nil for the root). Close needs the parent to rewrite it.
type Address struct {
	ID     entity.PanelID
	Parent *entity.PanelID
}

// Action is a leaf-scoped request against a registry.
type Action struct {
	Kind    ActionKind
	Address Address
}

// Mutation is a queued change applied on the next Flush.
type Mutation func(ctx context.Context)

// Dispatcher queues mutations raised by view actions and applies them between
// two projection passes. It is not safe for concurrent use; all calls happen
// on the UI update loop.
type Dispatcher struct {
	pending []Mutation
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Enqueue queues m. Mutations enqueued while a flush is running are deferred
// to the next flush.
func (d *Dispatcher) Enqueue(m Mutation) {
	if m == nil {
		return
	}
	d.pending = append(d.pending, m)
}

// Pending returns the number of queued mutations.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}

// Flush applies the queued mutations in FIFO order and returns how many ran.
func (d *Dispatcher) Flush(ctx context.Context) int {
	if len(d.pending) == 0 {
		return 0
	}
	batch := d.pending
	d.pending = nil

	for _, m := range batch {
		m(ctx)
	}

	logging.FromContext(ctx).Debug().Int("applied", len(batch)).Msg("mutations flushed")
	return len(batch)
}
