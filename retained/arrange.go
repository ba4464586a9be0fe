package retained

// Layout returns the layout strategy, or nil.
func (n *Node) Layout() Layout { return n.layout }

// SetLayout replaces the layout strategy and relays out the children.
func (n *Node) SetLayout(l Layout) {
	n.mustLive("SetLayout")
	n.layout = l
	n.RefreshLayout(false)
}

// NaturalSize is the extent the children needed on the last layout pass,
// excluding padding.
func (n *Node) NaturalSize() Vec2 { return n.natural }

// visibleChildren appends the visible children to dst.
func (n *Node) visibleChildren(dst []*Node) []*Node {
	for _, id := range n.children {
		if c := n.tree.Node(id); c != nil && c.visible {
			dst = append(dst, c)
		}
	}
	return dst
}

// RefreshLayout positions the visible children with the layout strategy.
// With recurse the children's layouts are refreshed first. Fit-content
// nodes are resized to the children's natural size and laid out again.
// Nodes without a layout keep their children's positions and only push
// them to the scene. The active overlay is placed last.
func (n *Node) RefreshLayout(recurse bool) {
	if n.released || n.inLayout {
		return
	}
	n.inLayout = true
	defer func() { n.inLayout = false }()

	if recurse {
		for _, id := range n.children {
			if c := n.tree.Node(id); c != nil {
				c.RefreshLayout(true)
			}
		}
	}

	children := n.visibleChildren(acquireNodeSlice(len(n.children)))
	defer releaseNodeSlice(children)

	if n.layout == nil {
		for _, c := range children {
			c.pushPosition()
		}
	} else {
		n.arrange(children)
		if n.fit[0] || n.fit[1] {
			want := n.size
			pad := n.size.Sub(n.InteriorSize())
			for axis, on := range n.fit {
				if on {
					want[axis] = n.natural[axis] + pad[axis]
				}
			}
			if _, err := n.applySize(want); err != nil {
				n.logger().Warn("fit content size rejected", "node", n.id, "size", want, "err", err)
			}
			n.arrange(children)
		}
	}

	if ov := n.tree.Node(n.overlay); ov != nil {
		n.placeOverlay(ov)
		if recurse {
			ov.RefreshLayout(true)
		}
	}
}

func (n *Node) arrange(children []*Node) {
	items := acquireItemSlice(len(children))
	defer releaseItemSlice(items)
	for _, c := range children {
		items = append(items, Item{Size: c.Bounds(), Margin: c.margin})
	}

	a := n.layout.Arrange(n.InteriorSize(), items)
	n.natural = a.Natural
	origin := n.InteriorOrigin()
	for i, c := range children {
		c.position = origin.Add(a.Positions[i])
		c.pushPosition()
	}
}
