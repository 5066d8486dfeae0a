// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAxis is returned when an axis name cannot be parsed.
var ErrInvalidAxis = errors.New("invalid axis")

// Axis indicates how a split arranges its two children.
type Axis int

const (
	AxisHorizontal Axis = iota // Left/right, children side by side
	AxisVertical               // Top/bottom, children stacked
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Short returns the single letter used by key hints and replay ops.
func (a Axis) Short() string {
	if a == AxisVertical {
		return "V"
	}
	return "H"
}

// ParseAxis accepts "h", "horizontal", "v" or "vertical" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return AxisHorizontal, nil
	case "v", "vertical":
		return AxisVertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}
