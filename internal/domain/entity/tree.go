package entity

import "fmt"

const labelFormat = "Hello %d"

// Node is a panel in an owned tree: either a *Split or a *Leaf.
// Every node is owned by exactly one parent field (or the tree root).
type Node interface {
	isNode()
}

// Split divides its region between two exclusively owned children.
type Split struct {
	Axis Axis
	LHS  Node
	RHS  Node
}

func (*Split) isNode() {}

// LHSSlot addresses the left/top child field.
func (s *Split) LHSSlot() Slot {
	return Slot{ref: &s.LHS}
}

// RHSSlot addresses the right/bottom child field.
func (s *Split) RHSSlot() Slot {
	return Slot{ref: &s.RHS}
}

// Leaf holds user-facing content and the close-request flag read by Collapse.
type Leaf struct {
	Label          string
	closeRequested bool
}

func (*Leaf) isNode() {}

// NewLeaf creates a leaf with the given display label.
func NewLeaf(label string) *Leaf {
	return &Leaf{Label: label}
}

// RequestClose marks the leaf for removal on the next Collapse.
func (l *Leaf) RequestClose() {
	l.closeRequested = true
}

// CloseRequested reports whether the leaf is marked for removal.
func (l *Leaf) CloseRequested() bool {
	return l.closeRequested
}

// Slot is a read/write accessor for the field that holds a node: the tree
// root or one side of a split.
type Slot struct {
	ref *Node
}

// Get returns the node held by the slot, nil if absent.
func (s Slot) Get() Node {
	if s.ref == nil {
		return nil
	}
	return *s.ref
}

// Set replaces the node held by the slot.
func (s Slot) Set(n Node) {
	if s.ref != nil {
		*s.ref = n
	}
}

// Tree is the owned recursive representation of a panel layout.
type Tree struct {
	Root   Node
	labels *IDAllocator
}

// NewTree creates the default layout: a horizontal split of two leaves.
func NewTree() *Tree {
	t := &Tree{labels: NewIDAllocator(1)}
	t.Root = &Split{
		Axis: AxisHorizontal,
		LHS:  t.newLeaf(),
		RHS:  t.newLeaf(),
	}
	return t
}

// NewTreeFrom wraps an existing node. New leaves are numbered past both the
// leaf count and the highest "Hello N" label already present.
func NewTreeFrom(root Node) *Tree {
	next := PanelID(CountLeaves(root) + 1)
	if n := maxLabelNumber(root); n >= next {
		next = n + 1
	}
	return &Tree{
		Root:   root,
		labels: NewIDAllocator(next),
	}
}

func maxLabelNumber(n Node) PanelID {
	switch node := n.(type) {
	case *Leaf:
		var num uint64
		if _, err := fmt.Sscanf(node.Label, labelFormat, &num); err != nil {
			return 0
		}
		return PanelID(num)
	case *Split:
		return max(maxLabelNumber(node.LHS), maxLabelNumber(node.RHS))
	default:
		return 0
	}
}

func (t *Tree) newLeaf() *Leaf {
	return NewLeaf(fmt.Sprintf(labelFormat, t.labels.Allocate()))
}

// RootSlot addresses the root field.
func (t *Tree) RootSlot() Slot {
	return Slot{ref: &t.Root}
}

// IsEmpty returns true once every leaf has been closed.
func (t *Tree) IsEmpty() bool {
	return t.Root == nil
}

// Seed installs a single fresh leaf as root of an empty tree.
// Returns false if the tree already has a root.
func (t *Tree) Seed() bool {
	if t.Root != nil {
		return false
	}
	t.Root = t.newLeaf()
	return true
}

// SplitAt replaces the leaf held by slot with a split whose first child is
// that leaf and whose second child is a new leaf. Returns the new leaf, or
// nil when the slot is empty or holds a split.
func (t *Tree) SplitAt(slot Slot, axis Axis) *Leaf {
	leaf, ok := slot.Get().(*Leaf)
	if !ok || leaf == nil {
		return nil
	}
	fresh := t.newLeaf()
	slot.Set(&Split{Axis: axis, LHS: leaf, RHS: fresh})
	return fresh
}

// Collapse prunes every leaf whose close flag is set and promotes the
// surviving sibling of each pruned leaf, in a single bottom-up pass.
// Returns the number of leaves removed.
func (t *Tree) Collapse() int {
	removed := 0
	t.Root = collapse(t.Root, &removed)
	return removed
}

// collapse returns the surviving subtree for n, or nil if nothing survives.
func collapse(n Node, removed *int) Node {
	switch node := n.(type) {
	case *Leaf:
		if node.closeRequested {
			*removed++
			return nil
		}
		return node
	case *Split:
		lhs := collapse(node.LHS, removed)
		rhs := collapse(node.RHS, removed)
		switch {
		case lhs != nil && rhs != nil:
			node.LHS, node.RHS = lhs, rhs
			return node
		case lhs != nil:
			return lhs
		case rhs != nil:
			return rhs
		default:
			return nil
		}
	default:
		return nil
	}
}

// Walk visits every node depth-first, left before right, passing the slot
// that holds it and its depth (root is 0).
func (t *Tree) Walk(fn func(slot Slot, depth int) bool) {
	walkSlot(t.RootSlot(), 0, fn)
}

func walkSlot(slot Slot, depth int, fn func(Slot, int) bool) {
	n := slot.Get()
	if n == nil || !fn(slot, depth) {
		return
	}
	if s, ok := n.(*Split); ok {
		walkSlot(s.LHSSlot(), depth+1, fn)
		walkSlot(s.RHSSlot(), depth+1, fn)
	}
}

// Leaves returns the leaves in left-to-right order.
func (t *Tree) Leaves() []*Leaf {
	var leaves []*Leaf
	t.Walk(func(slot Slot, _ int) bool {
		if leaf, ok := slot.Get().(*Leaf); ok {
			leaves = append(leaves, leaf)
		}
		return true
	})
	return leaves
}

// CountLeaves returns the number of leaves under n.
func CountLeaves(n Node) int {
	switch node := n.(type) {
	case *Leaf:
		return 1
	case *Split:
		return CountLeaves(node.LHS) + CountLeaves(node.RHS)
	default:
		return 0
	}
}
