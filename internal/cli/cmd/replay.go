package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/logging"
	"github.com/bnema/tiles/internal/ui/layout"
)

const (
	defaultReplayWidth  = 80
	defaultReplayHeight = 12
)

var (
	replayMode        string
	replayWidth       int
	replayHeight      int
	replayOutlineOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay OP...",
	Short: "Apply layout operations and print the result",
	Long: `Apply a sequence of operations to a fresh layout and print it after each one.

An operation is ACTION:TARGET where ACTION is h (split side by side),
v (split stacked) or x (close). In registry mode TARGET is a panel ID,
in tree mode it is the 1-based position of the leaf from left to right.
Operations on unknown targets leave the layout unchanged.

Examples:
  tiles replay h:0 x:2                  # Registry: split the root, close panel 2
  tiles replay --mode tree x:2 v:1      # Tree: close the right leaf, split the left
  tiles replay --outline h:0 v:1        # Outlines only, no drawing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayMode, "mode", "m", "", "layout engine: registry or tree (default from layout.mode)")
	replayCmd.Flags().IntVar(&replayWidth, "width", defaultReplayWidth, "render width in cells (default: terminal width, else 80)")
	replayCmd.Flags().IntVar(&replayHeight, "height", defaultReplayHeight, "render height in lines")
	replayCmd.Flags().BoolVar(&replayOutlineOnly, "outline", false, "print outlines only")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ops, err := layout.ParseOps(args)
	if err != nil {
		return err
	}

	ctx := logging.WithComponent(app.Ctx(), "replay")
	session, err := newSession(ctx, app, replayMode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := replayWidth
	if !cmd.Flags().Changed("width") {
		width = terminalWidth(out, replayWidth)
	}
	renderer := styles.NewPanelRenderer(app.Theme)
	show := func(label string) error {
		view, err := session.View()
		if err != nil && !errors.Is(err, layout.ErrEmptyLayout) {
			return err
		}
		fmt.Fprintf(out, "%s  %s\n", label, view.Outline())
		if !replayOutlineOnly {
			writeRendered(out, renderer.Render(view, "", width, replayHeight))
		}
		return nil
	}

	if err := show("start"); err != nil {
		return err
	}
	for _, op := range ops {
		res, err := session.Apply(ctx, op)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		logging.FromContext(ctx).Debug().
			Str("op", op.String()).
			Int("applied", res.Applied).
			Int("collapsed", res.Collapsed).
			Bool("reseeded", res.Reseeded).
			Msg("op replayed")
		if err := show(op.String()); err != nil {
			return err
		}
	}
	return nil
}

// terminalWidth returns the width of w when it is a terminal, def otherwise.
func terminalWidth(w io.Writer, def int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return def
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return def
	}
	return width
}

func writeRendered(w io.Writer, s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(w, s)
}
