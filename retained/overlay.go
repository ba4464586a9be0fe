package retained

import (
	"fmt"
	"maps"
	"slices"

	"github.com/agiangrant/immersive/scene"
)

// ============================================================================
// Overlay Stack
// ============================================================================

// OverlayState is the overlay state of a node.
type OverlayState int

const (
	// OverlayNone means the node shows its own children.
	OverlayNone OverlayState = iota
	// OverlayActive means an overlay covers the node's children.
	OverlayActive
)

func (s OverlayState) String() string {
	if s == OverlayActive {
		return "overlaid"
	}
	return "none"
}

// OverlayState reports whether an overlay is active.
func (n *Node) OverlayState() OverlayState {
	if n.overlay != NoNode {
		return OverlayActive
	}
	return OverlayNone
}

// ActiveOverlay returns the overlay on top of the stack, or nil.
func (n *Node) ActiveOverlay() *Node { return n.tree.Node(n.overlay) }

// OverlayID returns the ID the node was shown under as an overlay or page.
func (n *Node) OverlayID() string { return n.overlayID }

// OverlayIDs returns the IDs in the stack, bottom first.
func (n *Node) OverlayIDs() []string {
	ids := make([]string, len(n.overlays))
	for i, e := range n.overlays {
		ids[i] = e.id
	}
	return ids
}

// ShowOverlay covers the node's children with panel. A panel already in
// the stack moves to the top; the previously active overlay is hidden but
// kept. The panel is attached under the node without becoming a layout
// child and is sized to the interior times the theme's overlay percent.
// A panel that is the node or one of its owners returns ErrCycle.
func (n *Node) ShowOverlay(id string, panel Widget) error {
	n.mustLive("ShowOverlay")
	p := panel.AsNode()
	p.mustLive("ShowOverlay")
	if err := n.checkAttach("show overlay "+id, p); err != nil {
		return err
	}
	if pp := p.Parent(); pp != nil {
		_ = pp.RemoveChild(p, false)
	}

	if cur := n.ActiveOverlay(); cur != nil && cur != p {
		n.suspendOverlay(cur)
	}
	n.overlays = slices.DeleteFunc(n.overlays, func(e overlayEntry) bool { return e.node == p.id })
	n.overlays = append(n.overlays, overlayEntry{id: id, node: p.id})
	n.activateOverlay(id, p)

	n.logger().Debug("overlay shown", "node", n.id, "overlay", id, "stack", len(n.overlays))
	n.RefreshDepth()
	return nil
}

// RemoveOverlay removes every stack entry with id. When the active
// overlay is among them, the next entry down becomes active. Removed
// overlays are released unless they are registered pages.
func (n *Node) RemoveOverlay(id string) {
	n.mustLive("RemoveOverlay")
	for _, o := range n.removeOverlay(id) {
		if o.pageParent == NoNode {
			o.overlayParent = NoNode
			o.Remove()
		}
	}
	n.RefreshDepth()
}

// RemoveAllOverlays releases every overlay in the stack that is not a
// registered page and hides the pages.
func (n *Node) RemoveAllOverlays() {
	n.mustLive("RemoveAllOverlays")
	for _, id := range n.OverlayIDs() {
		n.RemoveOverlay(id)
	}
}

// removeOverlay drops id from the stack and returns the detached panels.
func (n *Node) removeOverlay(id string) []*Node {
	var removed []*Node
	n.overlays = slices.DeleteFunc(n.overlays, func(e overlayEntry) bool {
		if e.id != id {
			return false
		}
		if o := n.tree.Node(e.node); o != nil {
			removed = append(removed, o)
		}
		return true
	})
	if len(removed) == 0 {
		return nil
	}

	if active := n.ActiveOverlay(); active != nil && active.overlayID == id {
		n.overlay = NoNode
		if len(n.overlays) > 0 {
			top := n.overlays[len(n.overlays)-1]
			n.activateOverlay(top.id, n.tree.Node(top.node))
		}
	}
	for _, o := range removed {
		o.SetVisible(false)
		o.surface().SetParent(o.Handle(), scene.World)
		o.frame = NoNode
	}
	n.logger().Debug("overlay removed", "node", n.id, "overlay", id, "stack", len(n.overlays))
	return removed
}

func (n *Node) suspendOverlay(o *Node) {
	o.surface().SetParent(o.Handle(), scene.World)
	o.frame = NoNode
	o.SetVisible(false)
}

func (n *Node) activateOverlay(id string, o *Node) {
	o.overlayParent = n.id
	o.overlayID = id
	o.frame = n.id
	n.overlay = o.id
	o.surface().SetParent(o.Handle(), n.Handle())
	o.setRoot(n.root)
	o.setTooltipsEnabled(n.tooltipsEnabled)
	o.SetVisible(true)
	if o.theme == nil || o.theme.Name != n.theme.Name {
		o.setTheme(n.theme, true)
	}
	n.refreshOverlay(o)
}

// overlayPanels returns every overlay in the stack and every page.
func (n *Node) overlayPanels() []*Node {
	var out []*Node
	for _, a := range n.attachments() {
		if a.id != n.cursor && a.id != n.tooltip {
			out = append(out, a)
		}
	}
	return out
}

// refreshOverlay sizes o to the interior times the overlay percent and
// places it.
func (n *Node) refreshOverlay(o *Node) {
	pct := n.localTheme.OverlayPercent
	if err := o.SetSize(n.InteriorSize().Scale(pct)); err != nil {
		n.logger().Warn("overlay size rejected", "node", n.id, "overlay", o.overlayID, "err", err)
	}
	if o.id == n.overlay {
		n.placeOverlay(o)
	}
	o.RefreshLayout(true)
}

// placementLayout is a layout that keeps state from its last pass. It
// hands out a fresh copy for one-off placement so that state still
// describes the children.
type placementLayout interface {
	placementLayout() Layout
}

// placeOverlay positions the active overlay with the node's layout as its
// only item, centered when the node has none.
func (n *Node) placeOverlay(o *Node) {
	var l Layout = &Overlapping{HAlign: AlignCenter, VAlign: AlignCenter}
	if n.layout != nil {
		l = n.layout
	}
	if pl, ok := l.(placementLayout); ok {
		l = pl.placementLayout()
	}
	a := l.Arrange(n.InteriorSize(), []Item{{Size: o.Bounds(), Margin: o.margin}})
	o.position = n.InteriorOrigin().Add(a.Positions[0])
	o.pushPosition()
}

// forgetOverlay drops a removed panel from the stack.
func (n *Node) forgetOverlay(o *Node) {
	if o.pageParent == n.id {
		return
	}
	n.removeOverlay(o.overlayID)
	n.RefreshDepth()
}

// ============================================================================
// Pages
// ============================================================================

// AddPage registers page under name. Pages are kept hidden and sized with
// the node until shown. A page that is the node or one of its owners
// returns ErrCycle.
func (n *Node) AddPage(name string, page Widget) error {
	n.mustLive("AddPage")
	p := page.AsNode()
	if err := n.checkAttach("add page "+name, p); err != nil {
		return err
	}
	if pp := p.Parent(); pp != nil {
		_ = pp.RemoveChild(p, false)
	}
	p.pageParent = n.id
	p.overlayID = name
	p.setRoot(n.root)
	n.pages[name] = p.id
	if p.theme == nil || p.theme.Name != n.theme.Name {
		p.setTheme(n.theme, true)
	}
	p.SetVisible(false)
	n.refreshOverlay(p)
	return nil
}

// Page returns the page registered under name, or nil.
func (n *Node) Page(name string) *Node { return n.tree.Node(n.pages[name]) }

// PageNames returns the registered page names in sorted order.
func (n *Node) PageNames() []string { return slices.Sorted(maps.Keys(n.pages)) }

// ShowPage shows the page registered under name as the active overlay and
// records it in the history.
func (n *Node) ShowPage(name string) error {
	n.mustLive("ShowPage")
	p := n.Page(name)
	if p == nil {
		n.logger().Warn("unknown page", "node", n.id, "page", name)
		return fmt.Errorf("show page %q: %w", name, ErrPageNotFound)
	}
	if len(n.history) == 0 || n.history[len(n.history)-1] != name {
		n.history = append(n.history, name)
	}
	if n.ActiveOverlay() == p {
		return nil
	}
	return n.ShowOverlay(name, p)
}

// HidePage takes the page off the overlay stack and hides it.
func (n *Node) HidePage(name string) error {
	n.mustLive("HidePage")
	p := n.Page(name)
	if p == nil {
		return fmt.Errorf("hide page %q: %w", name, ErrPageNotFound)
	}
	n.removeOverlay(name)
	p.SetVisible(false)
	n.RefreshDepth()
	return nil
}

// Back leaves the current page and shows the previous one in the history.
// It reports false when the history holds one page or none.
func (n *Node) Back() bool {
	n.mustLive("Back")
	if len(n.history) <= 1 {
		return false
	}
	leaving := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.removeOverlay(leaving)
	if err := n.ShowPage(n.history[len(n.history)-1]); err != nil {
		n.logger().Warn("back navigation failed", "node", n.id, "err", err)
	}
	n.RefreshDepth()
	if n.onBack != nil {
		n.onBack()
	}
	return true
}

// Home returns to the first page in the history. It reports false when
// the history holds one page or none.
func (n *Node) Home() bool {
	n.mustLive("Home")
	if len(n.history) <= 1 {
		return false
	}
	home := n.history[0]
	for _, name := range n.history[1:] {
		n.removeOverlay(name)
	}
	n.history = n.history[:0]
	if err := n.ShowPage(home); err != nil {
		n.logger().Warn("home navigation failed", "node", n.id, "err", err)
	}
	n.RefreshDepth()
	return true
}

// History returns the page history, most recent last.
func (n *Node) History() []string { return slices.Clone(n.history) }

// CurrentPage returns the most recent page name, or "" with no history.
func (n *Node) CurrentPage() string {
	if len(n.history) == 0 {
		return ""
	}
	return n.history[len(n.history)-1]
}

// SetOnBack registers fn to run after each successful Back.
func (n *Node) SetOnBack(fn func()) { n.onBack = fn }

// forgetPage drops a removed page from the registry and history.
func (n *Node) forgetPage(p *Node) {
	for name, id := range n.pages {
		if id != p.id {
			continue
		}
		delete(n.pages, name)
		n.history = slices.DeleteFunc(n.history, func(h string) bool { return h == name })
		n.removeOverlay(name)
	}
	n.RefreshDepth()
}

// ============================================================================
// Selection
// ============================================================================

// Selectables returns the nodes a pointer may currently interact with.
// An active overlay replaces the node's own set.
func (n *Node) Selectables() []*Node {
	if !n.visible {
		return nil
	}
	if ov := n.ActiveOverlay(); ov != nil {
		return ov.Selectables()
	}
	if s, ok := n.impl.(selfSelector); ok && s.SelectsSelf() {
		return []*Node{n}
	}
	var out []*Node
	for _, id := range n.children {
		c := n.tree.Node(id)
		if !c.visible || c.disabled {
			continue
		}
		if s, ok := c.impl.(Selectable); ok {
			out = append(out, s.Selectables()...)
		}
	}
	return out
}
