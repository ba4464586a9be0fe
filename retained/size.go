package retained

import (
	"fmt"

	"github.com/chewxy/math32"
)

// SizeEpsilon is the smallest per-axis change a size mode resolution
// applies. An axis that moves by less keeps its previous value, so
// sub-threshold drift never accumulates; any axis that moves by more
// marks the size as changed and triggers a resize and relayout.
const SizeEpsilon = 1e-5

// minExtent is the smallest interior a node can shrink to.
const minExtent = 0.001

// SizeMode selects how one axis of a node's size is derived.
type SizeMode uint8

const (
	// SizeMeters is an absolute size. It is never changed by the parent.
	SizeMeters SizeMode = 1 << iota
	// SizePercentParent is a fraction of the parent's interior.
	SizePercentParent
	// SizePercentRemaining is a fraction of the parent's interior left
	// after the visible SizeMeters siblings on the same axis.
	SizePercentRemaining
	// SizeSync mirrors another node's size on the same axis.
	SizeSync
	// SizeTheme reads a named size from the node's theme.
	SizeTheme
	// SizeFunction calls a function of the node.
	SizeFunction
)

func (m SizeMode) String() string {
	switch m {
	case SizeMeters:
		return "meters"
	case SizePercentParent:
		return "percent-parent"
	case SizePercentRemaining:
		return "percent-remaining"
	case SizeSync:
		return "sync"
	case SizeTheme:
		return "theme"
	case SizeFunction:
		return "function"
	}
	return fmt.Sprintf("SizeMode(%d)", uint8(m))
}

// SizeRef parameterizes a SizeMode. Only the field matching the mode is
// read.
type SizeRef struct {
	// Scale multiplies the percent modes. Zero means 1.
	Scale float32
	// Sync is the node mirrored by SizeSync.
	Sync NodeID
	// ThemeKey names the theme size read by SizeTheme.
	ThemeKey string
	// Func computes the axis for SizeFunction.
	Func func(n *Node) float32
}

// RefScale is a SizeRef for the percent modes.
func RefScale(scale float32) SizeRef { return SizeRef{Scale: scale} }

// RefSync is a SizeRef mirroring w.
func RefSync(w Widget) SizeRef { return SizeRef{Sync: w.AsNode().id} }

// RefTheme is a SizeRef reading the theme size key.
func RefTheme(key string) SizeRef { return SizeRef{ThemeKey: key} }

// RefFunc is a SizeRef computed by fn.
func RefFunc(fn func(n *Node) float32) SizeRef { return SizeRef{Func: fn} }

func (r SizeRef) scale() float32 {
	if r.Scale == 0 {
		return 1
	}
	return r.Scale
}

// Size returns the current size.
func (n *Node) Size() Vec2 { return n.size }

// SizeMode returns the per-axis size modes.
func (n *Node) SizeMode() [2]SizeMode { return n.sizeMode }

// SetSizeMode changes the size modes and re-resolves against the parent.
func (n *Node) SetSizeMode(mode [2]SizeMode, ref [2]SizeRef) {
	n.mustLive("SetSizeMode")
	for i, m := range mode {
		if m == 0 {
			mode[i] = SizeMeters
		}
	}
	n.sizeMode = mode
	n.sizeRef = ref
	var parentInterior Vec2
	if p := n.Parent(); p != nil {
		parentInterior = p.InteriorSize()
	}
	n.updateSize(parentInterior)
}

// MinSize is padding plus any border allowance plus a small interior.
func (n *Node) MinSize() Vec2 {
	var extra float32
	if a, ok := n.impl.(BorderAllower); ok {
		extra, _ = a.BorderAllowance()
	}
	return Vec2{
		minExtent + n.padding.Horizontal() + extra,
		minExtent + n.padding.Vertical() + extra,
	}
}

func (n *Node) interiorInset() float32 {
	if a, ok := n.impl.(BorderAllower); ok {
		_, inset := a.BorderAllowance()
		return inset
	}
	return 0
}

// InteriorSize is the area available for children: size minus padding
// and any border inset.
func (n *Node) InteriorSize() Vec2 {
	inset := 2 * n.interiorInset()
	return Vec2{
		n.size[0] - n.padding.Horizontal() - inset,
		n.size[1] - n.padding.Vertical() - inset,
	}
}

// InteriorOrigin is the top-left corner of the interior in the node's
// own frame.
func (n *Node) InteriorOrigin() Vec2 {
	inset := n.interiorInset()
	return Vec2{n.padding[Left] + inset, n.padding[Top] + inset}
}

// Bounds is the box the parent's layout places: the content bounds for
// widgets that measure themselves, the size otherwise.
func (n *Node) Bounds() Vec2 {
	if b, ok := n.impl.(ContentBounder); ok {
		return b.ContentBounds()
	}
	return n.size
}

// SetSize clamps size to MinSize, applies it to the widget geometry,
// refreshes the layout, resizes overlays and pages, and re-resolves the
// size modes of the children. A size the widget rejects leaves the node
// unchanged and returns ErrDegenerateSize.
//
// Calls made from inside the node's own hooks are ignored.
func (n *Node) SetSize(size Vec2) error {
	n.mustLive("SetSize")
	if n.inSetSize {
		n.logger().Debug("re-entrant SetSize ignored", "node", n.id)
		return nil
	}
	if !size.Finite() {
		return fmt.Errorf("set size %v on node %d: %w", size, n.id, ErrDegenerateSize)
	}

	n.inSetSize = true
	n.tree.sizing++
	_, err := n.applySize(size)
	if err == nil {
		n.RefreshLayout(false)
		for _, o := range n.overlayPanels() {
			n.refreshOverlay(o)
		}
		interior := n.InteriorSize()
		for _, id := range n.children {
			n.tree.Node(id).updateSize(interior)
		}
	}
	n.inSetSize = false
	n.tree.sizing--

	if err != nil {
		return fmt.Errorf("set size %v on node %d: %w", size, n.id, err)
	}
	if n.tree.sizing == 0 {
		// children may have changed size, so every ancestor layout is stale
		n.Root().RefreshLayout(true)
	}
	return nil
}

// applySize clamps and hands the size to the widget hook without any
// layout side effects.
func (n *Node) applySize(size Vec2) (Vec2, error) {
	size = size.Max(n.MinSize())
	if a, ok := n.impl.(SizeApplier); ok {
		inHook := n.inSetSize
		n.inSetSize = true
		out, ok := a.ApplySize(size)
		n.inSetSize = inHook
		if !ok || !out.Finite() || out[0] <= 0 || out[1] <= 0 {
			return n.size, ErrDegenerateSize
		}
		size = out
	}
	n.size = size
	n.pushPosition()
	return size, nil
}

// ResolveSize evaluates the size modes against the parent's interior. It
// reports whether any axis moved by more than SizeEpsilon; axes that did
// not keep their current value.
func (n *Node) ResolveSize(parentInterior Vec2) (Vec2, bool) {
	next := n.size
	changed := false
	for axis := 0; axis < 2; axis++ {
		v, ok := n.resolveAxis(axis, parentInterior)
		if !ok {
			continue
		}
		if math32.Abs(v-n.size[axis]) > SizeEpsilon {
			next[axis] = v
			changed = true
		}
	}
	return next, changed
}

func (n *Node) resolveAxis(axis int, parentInterior Vec2) (float32, bool) {
	ref := n.sizeRef[axis]
	switch n.sizeMode[axis] {
	case SizePercentParent:
		return parentInterior[axis] * ref.scale(), true
	case SizePercentRemaining:
		remaining := parentInterior[axis]
		if p := n.Parent(); p != nil {
			remaining -= p.absoluteChildrenSize(axis)
		}
		return remaining * ref.scale(), true
	case SizeSync:
		target := n.tree.Node(ref.Sync)
		if target == nil {
			n.logger().Warn("size sync target is gone", "node", n.id, "target", ref.Sync)
			return 0, false
		}
		return target.size[axis], true
	case SizeTheme:
		v, ok := n.theme.Size(ref.ThemeKey)
		if !ok {
			n.logger().Warn("theme size lookup failed", "node", n.id, "key", ref.ThemeKey, "err", ErrUnknownThemeSize)
			return 0, false
		}
		return v[axis], true
	case SizeFunction:
		if ref.Func == nil {
			return 0, false
		}
		return ref.Func(n), true
	}
	return 0, false
}

// absoluteChildrenSize sums the visible SizeMeters children on axis. Only
// absolute siblings count, which keeps percent-remaining resolution free
// of cycles.
func (n *Node) absoluteChildrenSize(axis int) float32 {
	var total float32
	for _, id := range n.children {
		c := n.tree.Node(id)
		if c.visible && c.sizeMode[axis] == SizeMeters {
			total += c.size[axis]
		}
	}
	return total
}

// updateSize runs once per parent resize, top-down.
func (n *Node) updateSize(parentInterior Vec2) {
	next, changed := n.ResolveSize(parentInterior)
	if !changed {
		return
	}
	if err := n.SetSize(next); err != nil {
		n.logger().Warn("resolved size rejected", "node", n.id, "size", next, "err", err)
	}
}

// SetFitContent makes the node resize itself on each layout to the
// natural size of its children plus padding, per axis.
func (n *Node) SetFitContent(width, height bool) {
	n.fit = [2]bool{width, height}
	n.RefreshLayout(false)
}
