package entity

import "sort"

// RootID is the fixed address of the registry root. A split of the root keeps
// this identifier for the new split record.
const RootID PanelID = 0

// PanelKind distinguishes split records from content panels.
type PanelKind int

const (
	PanelContent PanelKind = iota // Leaf holding the "Hello" content
	PanelSplit                     // Two children arranged along an axis
)

// Panel is a registry entry. Split panels reference their children by ID;
// content panels carry no payload of their own and are rendered by ID.
type Panel struct {
	Kind PanelKind
	LHS  PanelID // Left/top child, split only
	RHS  PanelID // Right/bottom child, split only
	Axis Axis
}

// IsSplit returns true if the panel divides its region into two children.
func (p Panel) IsSplit() bool {
	return p.Kind == PanelSplit
}

// IsLeaf returns true for content panels.
func (p Panel) IsLeaf() bool {
	return p.Kind == PanelContent
}

// Registry is the flat keyed representation of a panel tree.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	panels  map[PanelID]Panel
	alloc   *IDAllocator
	retired map[PanelID]struct{}
}

// NewRegistry creates a registry holding a single content panel at RootID.
func NewRegistry() *Registry {
	r := &Registry{
		panels:  make(map[PanelID]Panel),
		alloc:   NewIDAllocator(RootID + 1),
		retired: make(map[PanelID]struct{}),
	}
	r.panels[RootID] = Panel{Kind: PanelContent}
	return r
}

// EnsureRoot seeds a content panel at RootID when the registry is empty.
// The allocator is not rewound. Returns true if a root was created.
func (r *Registry) EnsureRoot() bool {
	if len(r.panels) > 0 {
		return false
	}
	r.panels[RootID] = Panel{Kind: PanelContent}
	return true
}

// Split replaces the content panel id with a split record. The old content is
// relocated to a freshly allocated left child and a new content panel is
// created as the right child. Returns false, leaving the registry untouched,
// when id is unknown or already a split.
func (r *Registry) Split(id PanelID, axis Axis) bool {
	original, ok := r.panels[id]
	if !ok || original.IsSplit() {
		return false
	}

	lhs := r.alloc.Allocate()
	r.panels[lhs] = original

	rhs := r.alloc.Allocate()
	r.panels[rhs] = Panel{Kind: PanelContent}

	r.panels[id] = Panel{Kind: PanelSplit, LHS: lhs, RHS: rhs, Axis: axis}
	return true
}

// Close removes the content panel id. With a nil parent, id must be the root
// and the registry becomes empty. Otherwise the sibling of id is promoted
// into the parent's address and both old child addresses are retired.
//
// Close is a no-op returning false when the parent is missing, is not a split,
// does not list id as a child, or when id is not a content panel.
func (r *Registry) Close(parent *PanelID, id PanelID) bool {
	if parent == nil {
		target, ok := r.panels[id]
		if id != RootID || !ok || target.IsSplit() {
			return false
		}
		r.Clear()
		return true
	}

	split, ok := r.panels[*parent]
	if !ok || !split.IsSplit() {
		return false
	}

	var sibling PanelID
	switch id {
	case split.LHS:
		sibling = split.RHS
	case split.RHS:
		sibling = split.LHS
	default:
		return false
	}

	target, ok := r.panels[id]
	if !ok || target.IsSplit() {
		return false
	}
	remaining, ok := r.panels[sibling]
	if !ok {
		return false
	}

	delete(r.panels, id)
	delete(r.panels, sibling)
	r.retire(id, sibling)

	r.panels[*parent] = remaining
	return true
}

// Clear removes every panel. All non-root identifiers become retired.
func (r *Registry) Clear() {
	for id := range r.panels {
		r.retire(id)
	}
	clear(r.panels)
}

func (r *Registry) retire(ids ...PanelID) {
	for _, id := range ids {
		if id == RootID {
			continue
		}
		r.retired[id] = struct{}{}
	}
}

// Lookup returns the panel stored at id.
func (r *Registry) Lookup(id PanelID) (Panel, bool) {
	p, ok := r.panels[id]
	return p, ok
}

// Has reports whether id is currently addressable.
func (r *Registry) Has(id PanelID) bool {
	_, ok := r.panels[id]
	return ok
}

// IsRetired reports whether id was removed by a close.
func (r *Registry) IsRetired(id PanelID) bool {
	_, ok := r.retired[id]
	return ok
}

// Len returns the number of addressable panels, splits included.
func (r *Registry) Len() int {
	return len(r.panels)
}

// IsEmpty returns true when the registry has no root.
func (r *Registry) IsEmpty() bool {
	return len(r.panels) == 0
}

// Allocator exposes the identity allocator for inspection.
func (r *Registry) Allocator() *IDAllocator {
	return r.alloc
}

// IDs returns every addressable identifier in ascending order.
func (r *Registry) IDs() []PanelID {
	ids := make([]PanelID, 0, len(r.panels))
	for id := range r.panels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Walk visits the panels reachable from the root depth-first, left child
// before right. parent is nil for the root. Returning false from fn stops the
// descent below the current panel.
func (r *Registry) Walk(fn func(id PanelID, parent *PanelID, p Panel) bool) {
	r.walk(RootID, nil, fn)
}

func (r *Registry) walk(id PanelID, parent *PanelID, fn func(PanelID, *PanelID, Panel) bool) {
	p, ok := r.panels[id]
	if !ok {
		return
	}
	if !fn(id, parent, p) || !p.IsSplit() {
		return
	}
	self := id
	r.walk(p.LHS, &self, fn)
	r.walk(p.RHS, &self, fn)
}

// ParentOf returns the split that lists id as a child.
func (r *Registry) ParentOf(id PanelID) (PanelID, bool) {
	for pid, p := range r.panels {
		if p.IsSplit() && (p.LHS == id || p.RHS == id) {
			return pid, true
		}
	}
	return 0, false
}

// Leaves returns the content panel identifiers in left-to-right order.
func (r *Registry) Leaves() []PanelID {
	var leaves []PanelID
	r.Walk(func(id PanelID, _ *PanelID, p Panel) bool {
		if p.IsLeaf() {
			leaves = append(leaves, id)
		}
		return true
	})
	return leaves
}
