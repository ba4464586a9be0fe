package retained

import "time"

// ============================================================================
// Grabbable
// ============================================================================

// Grabbable is the grab, highlight and hover behavior a widget embeds to
// become something a pointer driver can interact with. A widget binds it
// to its node at construction.
//
// A Grabbable is a selection target only after SetSelectable(true);
// otherwise its node contributes its children's selectables as usual.
type Grabbable struct {
	node        *Node
	selectable  bool
	grabbed     bool
	highlighted bool
	hovered     bool
	grabTime    time.Duration
	handlers    map[EventType][]GrabHandler
}

func (g *Grabbable) bind(n *Node) { g.node = n }

// On registers fn for events of type t.
func (g *Grabbable) On(t EventType, fn GrabHandler) {
	if g.handlers == nil {
		g.handlers = make(map[EventType][]GrabHandler)
	}
	g.handlers[t] = append(g.handlers[t], fn)
}

// OnGrab registers fn to run when the widget is first grabbed.
func (g *Grabbable) OnGrab(fn GrabHandler) { g.On(EventGrab, fn) }

// OnHold registers fn to run on every frame the widget is held, including
// the first.
func (g *Grabbable) OnHold(fn GrabHandler) { g.On(EventHold, fn) }

// OnRelease registers fn to run when a grab ends.
func (g *Grabbable) OnRelease(fn GrabHandler) { g.On(EventRelease, fn) }

// OnQuickRelease registers fn to run when a short grab ends.
func (g *Grabbable) OnQuickRelease(fn GrabHandler) { g.On(EventQuickRelease, fn) }

// OnHighlight registers fn to run when the highlight turns on or off.
func (g *Grabbable) OnHighlight(fn GrabHandler) { g.On(EventHighlight, fn) }

// OnHover registers fn to run on every frame the pointer is over the widget.
func (g *Grabbable) OnHover(fn GrabHandler) { g.On(EventHover, fn) }

// OnHoverEnd registers fn to run when the pointer leaves.
func (g *Grabbable) OnHoverEnd(fn GrabHandler) { g.On(EventHoverEnd, fn) }

func (g *Grabbable) emit(t EventType, on bool) {
	e := GrabEvent{Type: t, Target: g.node, On: on}
	if g.grabbed {
		e.Held = g.now() - g.grabTime
	}
	for _, fn := range g.handlers[t] {
		fn(e)
	}
}

func (g *Grabbable) now() time.Duration {
	if g.node == nil {
		return 0
	}
	return g.node.tree.ctx.Now()
}

// Selectable reports whether the widget is a selection target.
func (g *Grabbable) Selectable() bool { return g.selectable }

// SetSelectable makes the widget a selection target.
func (g *Grabbable) SetSelectable(on bool) { g.selectable = on }

// SelectsSelf reports whether the widget is its own selection target.
func (g *Grabbable) SelectsSelf() bool { return g.selectable }

// IsGrabbed reports whether a grab is in progress.
func (g *Grabbable) IsGrabbed() bool { return g.grabbed }

// Grab starts a grab, or continues one as a hold.
func (g *Grabbable) Grab() {
	if !g.grabbed {
		g.grabTime = g.now()
		g.emit(EventGrab, true)
	}
	g.emit(EventHold, true)
	g.grabbed = true
}

// Hold continues a grab.
func (g *Grabbable) Hold() {
	if g.grabbed {
		g.emit(EventHold, true)
	}
}

// Release ends a grab. Silent releases fire no events.
func (g *Grabbable) Release(silent bool) {
	if !g.grabbed {
		return
	}
	if !silent {
		held := g.now() - g.grabTime
		if held < QuickReleaseTime {
			g.emit(EventQuickRelease, true)
		}
		g.emit(EventRelease, true)
	}
	g.grabbed = false
}

// Highlighted reports the highlight state.
func (g *Grabbable) Highlighted() bool { return g.highlighted }

// Highlight turns the hover highlight on or off.
func (g *Grabbable) Highlight(on bool) {
	if g.highlighted == on {
		return
	}
	g.highlighted = on
	g.emit(EventHighlight, on)
}

// Hovered reports whether the pointer is over the widget.
func (g *Grabbable) Hovered() bool { return g.hovered }

// Hover is called every frame the pointer is over the widget.
func (g *Grabbable) Hover() {
	g.hovered = true
	g.emit(EventHover, true)
}

// HoverEnd is called once when the pointer leaves.
func (g *Grabbable) HoverEnd() {
	if !g.hovered {
		return
	}
	g.hovered = false
	g.emit(EventHoverEnd, false)
}

var (
	_ Grabber       = (*Grabbable)(nil)
	_ Highlightable = (*Grabbable)(nil)
	_ Hoverable     = (*Grabbable)(nil)
	_ selfSelector  = (*Grabbable)(nil)
)
