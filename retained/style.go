package retained

import "github.com/agiangrant/immersive/theme"

// Theme returns the theme the node was given.
func (n *Node) Theme() *theme.Theme { return n.theme }

// LocalTheme returns the theme the widget actually draws with, which
// widgets may derive from Theme.
func (n *Node) LocalTheme() *theme.Theme { return n.localTheme }

// SetTheme restyles the node, its children, overlays, pages, cursor and
// tooltip. Children created with KeepTheme keep their own theme.
func (n *Node) SetTheme(th *theme.Theme) {
	n.mustLive("SetTheme")
	n.setTheme(th, true)
	n.Root().RefreshLayout(true)
	n.RefreshDepth()
}

// SetThemeOnly is SetTheme without descending into the children. The
// node's overlays, pages, cursor and tooltip still follow.
func (n *Node) SetThemeOnly(th *theme.Theme) {
	n.mustLive("SetThemeOnly")
	n.setTheme(th, false)
	n.Root().RefreshLayout(true)
	n.RefreshDepth()
}

func (n *Node) setTheme(th *theme.Theme, recurse bool) {
	if th == nil || n.inSetTheme {
		return
	}
	n.inSetTheme = true
	defer func() { n.inSetTheme = false }()

	th = th.Clone()
	n.theme = th
	n.localTheme = th
	if a, ok := n.impl.(ThemeApplier); ok {
		if local := a.ApplyTheme(th); local != nil {
			n.localTheme = local
		}
	}

	if _, err := n.applySize(n.size); err != nil {
		n.logger().Debug("size rejected after theme change", "node", n.id, "err", err)
	}

	if recurse {
		for _, id := range n.children {
			if c := n.tree.Node(id); !c.keepTheme {
				c.setTheme(th, true)
			}
		}
	}
	for _, o := range n.overlayPanels() {
		o.setTheme(th, true)
	}
	if c := n.tree.Node(n.cursor); c != nil {
		c.setTheme(th, true)
		c.updateSize(n.InteriorSize())
	}
	if tt := n.tree.Node(n.tooltip); tt != nil {
		tt.setTheme(th.TooltipTheme(), true)
	}

	n.RefreshLayout(false)
	for _, o := range n.overlayPanels() {
		n.refreshOverlay(o)
	}
}

// TooltipsEnabled reports whether tooltips in this subtree may show.
func (n *Node) TooltipsEnabled() bool { return n.tooltipsEnabled }

// SetTooltipsEnabled enables or disables tooltips for the node and every
// descendant. Disabling hides any tooltip currently shown.
func (n *Node) SetTooltipsEnabled(enabled bool) {
	n.mustLive("SetTooltipsEnabled")
	n.setTooltipsEnabled(enabled)
}

func (n *Node) setTooltipsEnabled(enabled bool) {
	n.tooltipsEnabled = enabled
	if tt := n.tree.Node(n.tooltip); tt != nil && !enabled {
		tt.SetVisible(false)
	}
	for _, id := range n.children {
		n.tree.Node(id).setTooltipsEnabled(enabled)
	}
	for _, o := range n.overlayPanels() {
		o.setTooltipsEnabled(enabled)
	}
}
