package retained

import "time"

// ============================================================================
// Grab Event Types
// ============================================================================

// EventType identifies what a pointer did to a selectable.
type EventType uint8

const (
	EventGrab EventType = iota + 1
	EventHold
	EventRelease
	// EventQuickRelease fires before EventRelease when the grab lasted
	// less than QuickReleaseTime.
	EventQuickRelease
	EventHighlight
	EventHover
	EventHoverEnd
)

func (t EventType) String() string {
	switch t {
	case EventGrab:
		return "grab"
	case EventHold:
		return "hold"
	case EventRelease:
		return "release"
	case EventQuickRelease:
		return "quick-release"
	case EventHighlight:
		return "highlight"
	case EventHover:
		return "hover"
	case EventHoverEnd:
		return "hover-end"
	}
	return "event?"
}

// QuickReleaseTime is the longest grab that still counts as a tap.
const QuickReleaseTime = 500 * time.Millisecond

// GrabEvent is passed to grab handlers.
type GrabEvent struct {
	Type   EventType
	Target *Node
	// Held is how long the target has been grabbed, by the frame clock.
	Held time.Duration
	// On is the highlight state for EventHighlight.
	On bool
}

// GrabHandler handles a GrabEvent.
type GrabHandler func(GrabEvent)
