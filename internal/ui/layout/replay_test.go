package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/ui/layout"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Op
		wantErr bool
	}{
		{in: "h:0", want: layout.Op{Kind: usecase.ActionSplitHorizontal, Target: "0"}},
		{in: "V:12", want: layout.Op{Kind: usecase.ActionSplitVertical, Target: "12"}},
		{in: " x:007 ", want: layout.Op{Kind: usecase.ActionClose, Target: "7"}},
		{in: "h", wantErr: true},
		{in: "h:", wantErr: true},
		{in: "h:-1", wantErr: true},
		{in: "z:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := layout.ParseOp(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, layout.ErrInvalidOp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOps_StopsAtFirstError(t *testing.T) {
	_, err := layout.ParseOps([]string{"h:0", "nope", "x:1"})
	assert.ErrorIs(t, err, layout.ErrInvalidOp)

	ops, err := layout.ParseOps([]string{"h:0", "x:2"})
	require.NoError(t, err)
	assert.Equal(t, "h:0", ops[0].String())
	assert.Equal(t, "x:2", ops[1].String())
}

// replay applies ops and returns the outline after each one.
func replay(t *testing.T, s *layout.Session, ops ...string) []string {
	t.Helper()
	parsed, err := layout.ParseOps(ops)
	require.NoError(t, err)

	outlines := make([]string, 0, len(parsed))
	for _, op := range parsed {
		_, err := s.Apply(context.Background(), op)
		require.NoError(t, err)
		view, _ := s.View()
		outlines = append(outlines, view.Outline())
	}
	return outlines
}

func TestSession_Apply_RegistryScenario(t *testing.T) {
	s, err := layout.NewSession(context.Background(), layout.ModeRegistry, layout.SessionOptions{})
	require.NoError(t, err)

	got := replay(t, s, "h:0", "x:2", "v:0", "x:3", "x:0")

	assert.Equal(t, []string{
		"H(Hello 1,Hello 2)",
		"Hello 0",
		"V(Hello 3,Hello 4)",
		"Hello 0",
		"<empty>",
	}, got)
}

func TestSession_Apply_TreeScenario(t *testing.T) {
	s, err := layout.NewSession(context.Background(), layout.ModeTree, layout.SessionOptions{})
	require.NoError(t, err)

	got := replay(t, s, "x:2", "v:1", "x:1", "x:1")

	assert.Equal(t, []string{
		"Hello 1",
		"V(Hello 1,Hello 3)",
		"Hello 3",
		"<empty>",
	}, got)
}

func TestSession_Apply_UnknownTargetIsNoOp(t *testing.T) {
	tests := []struct {
		mode layout.Mode
		op   string
	}{
		{mode: layout.ModeRegistry, op: "x:9"},
		{mode: layout.ModeTree, op: "h:0"},
		{mode: layout.ModeTree, op: "v:3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.op, func(t *testing.T) {
			s, err := layout.NewSession(context.Background(), tt.mode, layout.SessionOptions{})
			require.NoError(t, err)
			before, err := s.View()
			require.NoError(t, err)

			op, err := layout.ParseOp(tt.op)
			require.NoError(t, err)
			res, err := s.Apply(context.Background(), op)

			require.NoError(t, err)
			assert.False(t, res.Changed())
			after, err := s.View()
			require.NoError(t, err)
			assert.Equal(t, before.Outline(), after.Outline())
		})
	}
}

func TestSession_Apply_SplitOfRegistrySplitIsNoOp(t *testing.T) {
	s, err := layout.NewSession(context.Background(), layout.ModeRegistry, layout.SessionOptions{})
	require.NoError(t, err)

	got := replay(t, s, "h:0", "v:0")

	assert.Equal(t, "H(Hello 1,Hello 2)", got[1])
	assert.Equal(t, 2, s.Registry().Allocator().Issued())
}
