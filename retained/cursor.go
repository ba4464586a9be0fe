package retained

import "github.com/agiangrant/immersive/theme"

// Cursor is a quad sized by the theme's cursor size and drawn above
// everything under the node it is attached to.
type Cursor struct {
	*Quad
}

// NewCursor creates a cursor. The size comes from the theme.
func (t *Tree) NewCursor(color theme.Color) *Cursor {
	cfg := QuadConfig{Color: color}
	cfg.SizeMode = [2]SizeMode{SizeTheme, SizeTheme}
	cfg.SizeRef = [2]SizeRef{RefTheme(theme.KeyCursorSize), RefTheme(theme.KeyCursorSize)}
	c := &Cursor{}
	c.Quad = &Quad{color: color}
	c.handle = t.surface().CreateQuad([2]float32{})
	c.Node = t.attach(c, cfg.Config, c.handle)
	c.bind(c.Node)
	c.finish(cfg.Config)
	return c
}

// Cursor returns the attached cursor, or nil.
func (n *Node) Cursor() *Node { return n.tree.Node(n.cursor) }

// SetCursor attaches c as the node's cursor, replacing and removing any
// previous one. A nil cursor removes the current one. A cursor that is
// the node or one of its owners returns ErrCycle.
func (n *Node) SetCursor(c Widget) error {
	n.mustLive("SetCursor")
	if c != nil {
		if err := n.checkAttach("set cursor", c.AsNode()); err != nil {
			return err
		}
	}
	if old := n.Cursor(); old != nil && (c == nil || old != c.AsNode()) {
		old.attachedTo = NoNode
		n.cursor = NoNode
		old.Remove()
	}
	if c == nil {
		n.RefreshDepth()
		return nil
	}
	cur := c.AsNode()
	n.attachNode(cur, n.theme)
	n.cursor = cur.id
	n.RefreshDepth()
	return nil
}

// MoveCursor places the cursor's hot spot at pos in the node's frame.
func (n *Node) MoveCursor(pos Vec2) {
	cur := n.Cursor()
	if cur == nil {
		return
	}
	hot := Vec2(cur.theme.CursorHotSpot)
	cur.SetPosition(pos.Sub(Vec2{hot[0] * cur.size[0], hot[1] * cur.size[1]}))
}

// attachNode hangs a cursor or tooltip off n, drawn in n's frame.
func (n *Node) attachNode(a *Node, th *theme.Theme) {
	if p := a.Parent(); p != nil {
		_ = p.RemoveChild(a, false)
	}
	a.attachedTo = n.id
	a.frame = n.id
	a.surface().SetParent(a.Handle(), n.Handle())
	a.setRoot(n.root)
	a.setTheme(th, true)
	a.updateSize(n.InteriorSize())
}

// forgetAttachment drops a removed cursor or tooltip.
func (n *Node) forgetAttachment(a *Node) {
	switch a.id {
	case n.cursor:
		n.cursor = NoNode
	case n.tooltip:
		n.tooltip = NoNode
	}
	n.RefreshDepth()
}
