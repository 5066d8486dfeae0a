package entity

import "strings"

// ViewKind distinguishes projected splits from projected leaves.
type ViewKind int

const (
	ViewLeaf ViewKind = iota
	ViewSplit
)

// View is the render tree derived from a layout on every projection pass.
// It holds no reference back into the layout except through leaf actions.
type View struct {
	Kind     ViewKind
	Axis     Axis     // split only
	Children [2]*View // split only, left/top first
	Leaf     *LeafView
}

// LeafView is a projected content panel and its three activation affordances.
// The action funcs only queue mutations; they never touch the layout directly.
type LeafView struct {
	Key   string // stable within one pass
	Title string
	Body  string
	Depth int

	SplitHorizontal func()
	SplitVertical   func()
	Close           func()
}

// Leaves returns the projected leaves in left-to-right order.
func (v *View) Leaves() []*LeafView {
	if v == nil {
		return nil
	}
	if v.Kind == ViewLeaf {
		return []*LeafView{v.Leaf}
	}
	return append(v.Children[0].Leaves(), v.Children[1].Leaves()...)
}

// Outline renders the structure as H(a,V(b,c)) using leaf titles.
func (v *View) Outline() string {
	var sb strings.Builder
	v.outline(&sb)
	return sb.String()
}

func (v *View) outline(sb *strings.Builder) {
	switch {
	case v == nil:
		sb.WriteString("<empty>")
	case v.Kind == ViewLeaf:
		sb.WriteString(v.Leaf.Title)
	default:
		sb.WriteString(v.Axis.Short())
		sb.WriteByte('(')
		v.Children[0].outline(sb)
		sb.WriteByte(',')
		v.Children[1].outline(sb)
		sb.WriteByte(')')
	}
}
