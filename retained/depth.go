package retained

import "github.com/agiangrant/immersive/scene"

// Draw order spacing. Each child takes ChildIndexStep slots after its
// parent; the render offsets place overlay, highlight, outline and cursor
// drawables between a node's last child and the next sibling.
const (
	ChildIndexStep = 10

	RenderOffsetDisabled  = 5
	RenderOffsetOverlay   = 6
	RenderOffsetHighlight = 7
	RenderOffsetOutline   = 8
	RenderOffsetCursor    = 9

	// MaxDrawDepthOffset is the default base added to every draw order
	// index, keeping GUI drawables after ordinary scene content.
	MaxDrawDepthOffset = 50000

	// DefaultBaseOffset is the stencil reference written by a root. The
	// host is expected to clear the stencil buffer to this value.
	DefaultBaseOffset = 10
)

// DepthPass is the draw state a node receives from RefreshDepth.
type DepthPass struct {
	// Index is the node's draw order index, before the base offset.
	Index int
	// Stencil is the reference value the node is tested against.
	Stencil int
	Compare scene.CompareOp
	Pass    scene.StencilOp
	// DrawOrder is BaseDepthOffset + Index.
	DrawOrder int
}

// Func returns the stencil function for the pass.
func (p DepthPass) Func() scene.StencilFunc {
	return scene.StencilFunc{Compare: p.Compare, Ref: p.Stencil, Pass: p.Pass}
}

// DrawOrderIndex is the index assigned by the last depth pass.
func (n *Node) DrawOrderIndex() int { return n.depth.drawOrder }

// StencilDepth is the stencil reference assigned by the last depth pass.
func (n *Node) StencilDepth() int { return n.depth.stencilDepth }

// PostChildrenDrawIndex is the index after the node's last descendant.
func (n *Node) PostChildrenDrawIndex() int { return n.depth.postChildren }

// BaseDepthOffset is added to every draw order index of the tree.
func (n *Node) BaseDepthOffset() int { return n.baseDepthOffset }

// InternalDepth is the stencil level the node adds for its children.
func (n *Node) InternalDepth() int { return n.internalDepth }

// SetInternalDepth changes the stencil level added for children.
func (n *Node) SetInternalDepth(depth int) {
	n.internalDepth = max(depth, 0)
	n.RefreshDepth()
}

// RefreshDepth recomputes draw order and stencil state for the whole tree
// n belongs to, then disables color write on everything covered by an
// active overlay.
func (n *Node) RefreshDepth() {
	if n.released {
		return
	}
	root := n.Root()
	root.reapplyDepth(DepthPass{
		Stencil: root.baseOffset,
		Compare: scene.CompareAlways,
		Pass:    scene.OpReplace,
	})
	root.hideOverlaid()
}

// reapplyDepth assigns p to n and walks its children, active overlay,
// cursor and tooltip in draw order. It returns the last index used.
func (n *Node) reapplyDepth(p DepthPass) int {
	p.DrawOrder = n.baseDepthOffset + p.Index
	if a, ok := n.impl.(DepthApplier); ok {
		a.ApplyDepth(p)
	} else if !n.isGroup {
		fn := p.Func()
		for _, h := range n.handles {
			n.applyDrawable(h, p.DrawOrder, fn)
		}
	}
	n.depth.drawOrder = p.Index
	n.depth.stencilDepth = p.Stencil

	index := p.Index
	stencil := p.Stencil + n.internalDepth
	for _, id := range n.children {
		c := n.tree.Node(id)
		index = c.reapplyDepth(DepthPass{
			Index:   index + ChildIndexStep,
			Stencil: stencil,
			Compare: scene.CompareEqual,
			Pass:    scene.OpKeep,
		})
	}
	n.depth.postChildren = index

	if ov := n.tree.Node(n.overlay); ov != nil {
		index = ov.reapplyDepth(DepthPass{
			Index:   index + RenderOffsetOverlay,
			Stencil: stencil,
			Compare: scene.CompareLessEqual,
			Pass:    scene.OpReplace,
		})
	}
	if cur := n.tree.Node(n.cursor); cur != nil {
		index = cur.reapplyDepth(DepthPass{
			Index:   index + RenderOffsetCursor,
			Stencil: stencil,
			Compare: scene.CompareLessEqual,
			Pass:    scene.OpReplace,
		})
	}
	if tt := n.tree.Node(n.tooltip); tt != nil {
		// tooltips draw over everything and do not advance the index
		tt.reapplyDepth(DepthPass{
			Index:   index + ChildIndexStep + RenderOffsetCursor,
			Stencil: stencil + 1,
			Compare: scene.CompareAlways,
			Pass:    scene.OpReplace,
		})
	}
	return index
}

// hideOverlaid disables color write on every node covered by an active
// overlay and restores it everywhere else.
func (n *Node) hideOverlaid() {
	if ov := n.tree.Node(n.overlay); ov != nil {
		n.setSubtreeColorWrite(false, ov.id)
		ov.hideOverlaid()
	} else {
		n.setColorWrite(true)
		for _, id := range n.children {
			n.tree.Node(id).hideOverlaid()
		}
	}
	for _, id := range [...]NodeID{n.cursor, n.tooltip} {
		if a := n.tree.Node(id); a != nil {
			a.setSubtreeColorWrite(true, NoNode)
		}
	}
}

// setSubtreeColorWrite sets color write on n, its children and its
// attachments, skipping the node skip.
func (n *Node) setSubtreeColorWrite(enabled bool, skip NodeID) {
	n.setColorWrite(enabled)
	for _, id := range n.children {
		n.tree.Node(id).setSubtreeColorWrite(enabled, skip)
	}
	for _, a := range n.attachments() {
		if a.id != skip {
			a.setSubtreeColorWrite(enabled, skip)
		}
	}
}
