package layout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/domain/entity"
	"github.com/bnema/tiles/internal/logging"
)

// ErrInvalidOp is returned for a malformed replay operation.
var ErrInvalidOp = errors.New("invalid operation")

// Op is one scripted leaf action: "h:<target>", "v:<target>" or "x:<target>".
// In registry mode the target is a panel identifier; in tree mode it is the
// 1-based position of the leaf in left-to-right order.
type Op struct {
	Kind   usecase.ActionKind
	Target string
}

func (o Op) String() string {
	switch o.Kind {
	case usecase.ActionSplitHorizontal:
		return "h:" + o.Target
	case usecase.ActionSplitVertical:
		return "v:" + o.Target
	default:
		return "x:" + o.Target
	}
}

// ParseOp parses a single operation.
func ParseOp(s string) (Op, error) {
	verb, target, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || target == "" {
		return Op{}, fmt.Errorf("%w: %q (want h:<target>, v:<target> or x:<target>)", ErrInvalidOp, s)
	}
	n, err := strconv.ParseUint(target, 10, 64)
	if err != nil {
		return Op{}, fmt.Errorf("%w: %q: target must be a non-negative integer", ErrInvalidOp, s)
	}

	var kind usecase.ActionKind
	switch strings.ToLower(verb) {
	case "h":
		kind = usecase.ActionSplitHorizontal
	case "v":
		kind = usecase.ActionSplitVertical
	case "x":
		kind = usecase.ActionClose
	default:
		return Op{}, fmt.Errorf("%w: %q: unknown verb %q", ErrInvalidOp, s, verb)
	}
	return Op{Kind: kind, Target: strconv.FormatUint(n, 10)}, nil
}

// ParseOps parses every operation, stopping at the first error.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, err := ParseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Apply triggers op through the current projection, exactly as a user
// activating the leaf would, then processes the queue. A target that names
// no visible leaf is a no-op.
func (s *Session) Apply(ctx context.Context, op Op) (ProcessResult, error) {
	view, err := s.View()
	if err != nil && !errors.Is(err, ErrEmptyLayout) {
		return ProcessResult{}, err
	}

	leaf := s.findLeaf(view, op.Target)
	if leaf == nil {
		logging.FromContext(ctx).Debug().Str("op", op.String()).Msg("replay target not found")
		return s.Process(ctx), nil
	}

	switch op.Kind {
	case usecase.ActionSplitHorizontal:
		leaf.SplitHorizontal()
	case usecase.ActionSplitVertical:
		leaf.SplitVertical()
	case usecase.ActionClose:
		leaf.Close()
	default:
		return ProcessResult{}, fmt.Errorf("%w: %q", usecase.ErrUnknownAction, op.Kind)
	}
	return s.Process(ctx), nil
}

func (s *Session) findLeaf(view *entity.View, target string) *entity.LeafView {
	leaves := view.Leaves()
	if s.mode == ModeTree {
		idx, err := strconv.Atoi(target)
		if err != nil || idx < 1 || idx > len(leaves) {
			return nil
		}
		return leaves[idx-1]
	}

	for _, leaf := range leaves {
		if leaf.Key == target {
			return leaf
		}
	}
	return nil
}
