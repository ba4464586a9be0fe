package retained

// ============================================================================
// Pointer Dispatcher
// ============================================================================

// Pointer is one frame's sample of an abstract pointer: a position in the
// root's frame and whether its button is down.
type Pointer struct {
	Position Vec2
	Pressed  bool
}

// Dispatcher turns per-frame pointer samples into highlight, hover and
// grab calls on the selectables of a root. It knows nothing about layout
// or depth beyond HoldsPoint and draw order.
type Dispatcher struct {
	root    *Node
	hovered *Node
	grabbed *Node
	pressed bool
}

// NewDispatcher creates a dispatcher for the tree under root.
func NewDispatcher(root Widget) *Dispatcher {
	return &Dispatcher{root: root.AsNode()}
}

// Hovered returns the selectable under the pointer, or nil.
func (d *Dispatcher) Hovered() *Node { return d.hovered }

// Grabbed returns the selectable being held, or nil.
func (d *Dispatcher) Grabbed() *Node { return d.grabbed }

// HitTest returns the topmost selectable containing pos, or nil.
func (d *Dispatcher) HitTest(pos Vec2) *Node {
	if d.root.released {
		return nil
	}
	var hit *Node
	for _, n := range d.root.Selectables() {
		if !n.HoldsPoint(pos) {
			continue
		}
		if hit == nil || n.depth.drawOrder >= hit.depth.drawOrder {
			hit = n
		}
	}
	return hit
}

// Update processes one pointer sample.
func (d *Dispatcher) Update(p Pointer) {
	d.forgetReleased()
	target := d.HitTest(p.Position)

	if target != d.hovered {
		if d.hovered != nil {
			if h, ok := d.hovered.impl.(Hoverable); ok {
				h.HoverEnd()
			}
			if h, ok := d.hovered.impl.(Highlightable); ok {
				h.Highlight(false)
			}
		}
		if target != nil {
			if h, ok := target.impl.(Highlightable); ok {
				h.Highlight(true)
			}
		}
		d.hovered = target
	}
	if target != nil {
		if h, ok := target.impl.(Hoverable); ok {
			h.Hover()
		}
	}

	switch {
	case p.Pressed && !d.pressed:
		if target != nil {
			if g, ok := target.impl.(Grabber); ok {
				g.Grab()
				d.grabbed = target
			}
		}
	case p.Pressed && d.grabbed != nil:
		d.grabbed.impl.(Grabber).Hold()
	case !p.Pressed && d.pressed && d.grabbed != nil:
		d.grabbed.impl.(Grabber).Release(false)
		d.grabbed = nil
	}
	d.pressed = p.Pressed
}

// Reset silently releases any grab and clears the hover state.
func (d *Dispatcher) Reset() {
	d.forgetReleased()
	if d.grabbed != nil {
		d.grabbed.impl.(Grabber).Release(true)
	}
	if d.hovered != nil {
		if h, ok := d.hovered.impl.(Highlightable); ok {
			h.Highlight(false)
		}
	}
	d.grabbed, d.hovered, d.pressed = nil, nil, false
}

func (d *Dispatcher) forgetReleased() {
	if d.hovered != nil && d.hovered.released {
		d.hovered = nil
	}
	if d.grabbed != nil && d.grabbed.released {
		d.grabbed = nil
	}
}
