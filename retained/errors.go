package retained

import (
	"errors"
	"fmt"
)

var (
	// ErrNotChild is returned when removing a node that is not a child.
	ErrNotChild = errors.New("node is not a child")

	// ErrCycle is returned when reparenting would make a node its own ancestor.
	ErrCycle = errors.New("node cannot be its own ancestor")

	// ErrPageNotFound is returned for page names never registered with AddPage.
	ErrPageNotFound = errors.New("page not found")

	// ErrDegenerateSize is returned when a size is rejected. The node keeps
	// its previous size.
	ErrDegenerateSize = errors.New("degenerate size")

	// ErrInvalidButtonMask is returned for message buttons outside ButtonAll.
	ErrInvalidButtonMask = errors.New("invalid button mask")

	// ErrUnknownThemeSize is reported when a theme-sized axis names a
	// size the theme does not define.
	ErrUnknownThemeSize = errors.New("unknown theme size")

	// ErrReleased is wrapped by the ReleasedError panic value.
	ErrReleased = errors.New("node released")
)

// ReleasedError is the panic value for operations on a removed node.
type ReleasedError struct {
	ID NodeID
	Op string
}

func (e *ReleasedError) Error() string {
	return fmt.Sprintf("%s on node %d: %v", e.Op, e.ID, ErrReleased)
}

func (e *ReleasedError) Unwrap() error { return ErrReleased }
