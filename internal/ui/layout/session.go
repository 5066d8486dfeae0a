package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

// Mode selects the layout representation behind a session.
type Mode string

const (
	ModeRegistry Mode = "registry"
	ModeTree     Mode = "tree"
)

// ErrUnknownMode is returned by ParseMode for anything but registry or tree.
var ErrUnknownMode = errors.New("unknown layout mode")

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRegistry:
		return ModeRegistry, nil
	case ModeTree:
		return ModeTree, nil
	default:
		return "", fmt.Errorf("%w: %q (want registry or tree)", ErrUnknownMode, s)
	}
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// ReseedEmpty installs a fresh panel during Process once the layout is empty.
	ReseedEmpty bool
}

// ProcessResult reports what one processing pass did.
type ProcessResult struct {
	Applied   int // mutations flushed
	Collapsed int // leaves pruned by the collapse fold (tree mode)
	Reseeded  bool
}

// Changed reports whether the pass touched the layout.
func (r ProcessResult) Changed() bool {
	return r.Applied > 0 || r.Collapsed > 0 || r.Reseeded
}

// Session owns one layout and runs its mutate-then-project cycle:
// actions raised from a View enqueue mutations, Process applies them,
// View projects the result.
type Session struct {
	mode       Mode
	registry   *entity.Registry
	tree       *entity.Tree
	dispatcher *usecase.Dispatcher
	panels     *usecase.ManagePanelsUseCase
	trees      *usecase.ManageTreeUseCase
	projector  *Projector
	opts       SessionOptions
}

// NewSession creates a session with the default layout for mode: a single
// panel for the registry, a horizontal pair for the tree.
func NewSession(ctx context.Context, mode Mode, opts SessionOptions) (*Session, error) {
	s := &Session{
		mode:       mode,
		dispatcher: usecase.NewDispatcher(),
		panels:     usecase.NewManagePanelsUseCase(),
		trees:      usecase.NewManageTreeUseCase(),
		opts:       opts,
	}

	switch mode {
	case ModeRegistry:
		s.registry = entity.NewRegistry()
	case ModeTree:
		s.tree = entity.NewTree()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	ctx = logging.WithLayoutMode(ctx, string(mode))
	s.projector = NewProjector(ctx, s.dispatcher, s.panels, s.trees)
	logging.FromContext(ctx).Debug().Bool("reseed_empty", opts.ReseedEmpty).Msg("layout session created")
	return s, nil
}

// Mode returns the session's representation.
func (s *Session) Mode() Mode {
	return s.mode
}

// Registry returns the registry, nil in tree mode.
func (s *Session) Registry() *entity.Registry {
	return s.registry
}

// Tree returns the owned tree, nil in registry mode.
func (s *Session) Tree() *entity.Tree {
	return s.tree
}

// Dispatcher returns the queue leaf actions enqueue on.
func (s *Session) Dispatcher() *usecase.Dispatcher {
	return s.dispatcher
}

// SetReseedEmpty updates the reseed option, e.g. after a config reload.
func (s *Session) SetReseedEmpty(v bool) {
	s.opts.ReseedEmpty = v
}

// IsEmpty reports whether the layout has no panel.
func (s *Session) IsEmpty() bool {
	if s.mode == ModeTree {
		return s.tree.IsEmpty()
	}
	return s.registry.IsEmpty()
}

// View projects the current layout. An empty layout yields ErrEmptyLayout.
func (s *Session) View() (*entity.View, error) {
	if s.mode == ModeTree {
		return s.projector.ProjectTree(s.tree)
	}
	return s.projector.ProjectRegistry(s.registry)
}

// Process applies the queued mutations, runs the collapse fold in tree mode
// and reseeds an empty layout when enabled. Call it between two projections.
func (s *Session) Process(ctx context.Context) ProcessResult {
	ctx = logging.WithLayoutMode(ctx, string(s.mode))
	var res ProcessResult

	res.Applied = s.dispatcher.Flush(ctx)

	if s.mode == ModeTree && res.Applied > 0 {
		removed, err := s.trees.Collapse(ctx, s.tree)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("collapse failed")
		}
		res.Collapsed = removed
	}

	if s.opts.ReseedEmpty && s.IsEmpty() {
		res.Reseeded = s.Seed(ctx)
	}
	return res
}

// Seed installs a fresh panel into an empty layout. Returns false when the
// layout already has a root.
func (s *Session) Seed(ctx context.Context) bool {
	var seeded bool
	if s.mode == ModeTree {
		seeded = s.tree.Seed()
	} else {
		seeded = s.registry.EnsureRoot()
	}
	if seeded {
		logging.FromContext(ctx).Info().Msg("empty layout reseeded")
	}
	return seeded
}
