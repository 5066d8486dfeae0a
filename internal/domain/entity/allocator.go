package entity

// PanelID identifies a panel in a Registry.
type PanelID uint64

// IDAllocator hands out strictly increasing panel identifiers.
// Identifiers are never reclaimed, even after the panel that bore one is closed.
type IDAllocator struct {
	next   PanelID
	issued int
}

// NewIDAllocator returns an allocator whose first identifier is start.
func NewIDAllocator(start PanelID) *IDAllocator {
	return &IDAllocator{next: start}
}

// Allocate returns a value greater than every value returned before it.
func (a *IDAllocator) Allocate() PanelID {
	id := a.next
	a.next++
	a.issued++
	return id
}

// Peek returns the identifier the next Allocate call will return.
func (a *IDAllocator) Peek() PanelID {
	return a.next
}

// Issued returns how many identifiers this allocator has handed out.
func (a *IDAllocator) Issued() int {
	return a.issued
}
