package retained

import (
	"fmt"
	"maps"
	"slices"

	"github.com/agiangrant/immersive/scene"
)

// Parent returns the layout parent, or nil for a top-level node.
func (n *Node) Parent() *Node { return n.tree.Node(n.parent) }

// Root returns the top-level node of the tree n belongs to. Overlays,
// pages, cursors and tooltips share their owner's root.
func (n *Node) Root() *Node {
	if r := n.tree.Node(n.root); r != nil {
		return r
	}
	return n
}

// Children returns the children in layout order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		out = append(out, n.tree.Node(id))
	}
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// AddChild appends child and refreshes the tree.
func (n *Node) AddChild(child Widget) error {
	return child.AsNode().attachTo(n, -1, true)
}

// InsertChild inserts child at index (clamped to the child count).
func (n *Node) InsertChild(index int, child Widget) error {
	return child.AsNode().attachTo(n, index, true)
}

// SetParent moves the node under parent, or detaches it when parent is
// nil. With autoRefresh the root's layout and depth are recomputed, since
// stencil depths are relative to the root.
func (n *Node) SetParent(parent Widget, autoRefresh bool) error {
	var p *Node
	if parent != nil {
		p = parent.AsNode()
	}
	return n.attachTo(p, -1, autoRefresh)
}

func (n *Node) attachTo(p *Node, index int, autoRefresh bool) error {
	n.mustLive("SetParent")
	if p != nil {
		p.mustLive("SetParent")
		if p == n || n.isAncestorOf(p) {
			return fmt.Errorf("set parent of node %d to %d: %w", n.id, p.id, ErrCycle)
		}
	}

	old := n.Parent()
	if old != nil {
		old.children = slices.DeleteFunc(old.children, func(id NodeID) bool { return id == n.id })
	}

	s := n.surface()
	if p == nil {
		n.parent = NoNode
		n.frame = NoNode
		s.SetParent(n.Handle(), scene.World)
		n.setRoot(n.id)
	} else {
		n.parent = p.id
		n.frame = p.id
		if index < 0 || index > len(p.children) {
			index = len(p.children)
		}
		p.children = slices.Insert(p.children, index, n.id)
		s.SetParent(n.Handle(), p.Handle())
		n.baseOffset = p.baseOffset
		n.baseDepthOffset = p.baseDepthOffset
		n.setRoot(p.root)
		n.setTooltipsEnabled(p.tooltipsEnabled)
		if !n.keepTheme {
			n.setTheme(p.theme, true)
		}
	}
	n.position = Vec2{}
	n.pushPosition()

	if !autoRefresh {
		return nil
	}
	if old != nil && old != p {
		old.RefreshLayout(false)
		old.RefreshDepth()
	}
	if p != nil {
		// re-resolve the new child's size mode against its new parent
		if err := p.SetSize(p.size); err != nil {
			return err
		}
	}
	root := n.Root()
	root.RefreshLayout(true)
	root.RefreshDepth()
	return nil
}

// checkAttach rejects hanging a off n when a is n or already above it.
func (n *Node) checkAttach(op string, a *Node) error {
	if a == n || a.isAncestorOf(n) {
		return fmt.Errorf("%s: attach node %d to %d: %w", op, a.id, n.id, ErrCycle)
	}
	return nil
}

// isAncestorOf reports whether n is above other through any chain of
// parents or attachment owners.
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other; cur != nil; {
		owner := cur.owner()
		if owner == NoNode {
			return false
		}
		if owner == n.id {
			return true
		}
		cur = n.tree.Node(owner)
	}
	return false
}

// owner is the node n hangs off: its parent, the node it overlays, the
// node it is a page of, or the node it is a cursor or tooltip for.
func (n *Node) owner() NodeID {
	switch {
	case n.parent != NoNode:
		return n.parent
	case n.overlayParent != NoNode:
		return n.overlayParent
	case n.pageParent != NoNode:
		return n.pageParent
	}
	return n.attachedTo
}

func (n *Node) setRoot(root NodeID) {
	n.root = root
	for _, id := range n.children {
		n.tree.Node(id).setRoot(root)
	}
	for _, a := range n.attachments() {
		a.setRoot(root)
	}
}

// attachments returns the nodes owned by n outside its children: every
// overlay in the stack, registered pages, the cursor and the tooltip.
func (n *Node) attachments() []*Node {
	var out []*Node
	seen := make(map[NodeID]bool)
	add := func(id NodeID) {
		if id == NoNode || seen[id] {
			return
		}
		if a := n.tree.Node(id); a != nil {
			seen[id] = true
			out = append(out, a)
		}
	}
	for _, e := range n.overlays {
		add(e.node)
	}
	for _, name := range slices.Sorted(maps.Keys(n.pages)) {
		add(n.pages[name])
	}
	add(n.cursor)
	add(n.tooltip)
	return out
}

// RemoveChild detaches child. With del the child is removed entirely.
func (n *Node) RemoveChild(child Widget, del bool) error {
	n.mustLive("RemoveChild")
	c := child.AsNode()
	if err := n.detachChild(c); err != nil {
		return err
	}
	if del {
		c.Remove()
	}
	if !n.removing {
		n.RefreshLayout(false)
		n.RefreshDepth()
	}
	return nil
}

// RemoveChildren detaches every child. With del they are removed entirely.
func (n *Node) RemoveChildren(del bool) {
	n.mustLive("RemoveChildren")
	ids := slices.Clone(n.children)
	for _, id := range ids {
		c := n.tree.Node(id)
		if err := n.detachChild(c); err != nil {
			continue
		}
		if del {
			c.Remove()
		}
	}
	if !n.removing {
		n.RefreshLayout(false)
		n.RefreshDepth()
	}
}

func (n *Node) detachChild(c *Node) error {
	i := slices.Index(n.children, c.id)
	if i < 0 || c.parent != n.id {
		return fmt.Errorf("remove node %d from %d: %w", c.id, n.id, ErrNotChild)
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = NoNode
	c.frame = NoNode
	if !c.released {
		n.surface().SetParent(c.Handle(), scene.World)
	}
	c.setRoot(c.id)
	return nil
}

// Remove detaches the node from whatever owns it, then removes its
// children and every overlay, page, cursor and tooltip it owns, and
// releases its drawables. Removing twice is a no-op; any other use of a
// removed node panics with a *ReleasedError.
func (n *Node) Remove() {
	if n.released || n.removing {
		return
	}
	n.removing = true

	if p := n.Parent(); p != nil {
		_ = p.RemoveChild(n, false)
	} else if o := n.tree.Node(n.overlayParent); o != nil && !o.removing {
		o.forgetOverlay(n)
	}
	if pp := n.tree.Node(n.pageParent); pp != nil && !pp.removing {
		pp.forgetPage(n)
	}
	if a := n.tree.Node(n.attachedTo); a != nil && !a.removing {
		a.forgetAttachment(n)
	}

	for _, id := range slices.Clone(n.children) {
		c := n.tree.Node(id)
		c.parent = NoNode
		c.Remove()
	}
	n.children = nil
	for _, a := range n.attachments() {
		a.overlayParent = NoNode
		a.pageParent = NoNode
		a.attachedTo = NoNode
		a.Remove()
	}
	n.overlays = nil
	n.overlay = NoNode
	n.pages = map[string]NodeID{}
	n.cursor = NoNode
	n.tooltip = NoNode

	s := n.surface()
	for i := len(n.handles) - 1; i >= 0; i-- {
		s.Release(n.handles[i])
	}
	n.released = true
	n.tree.nodes[n.id] = nil
	n.tree.live--
}
