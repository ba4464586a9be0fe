package retained

import "github.com/agiangrant/immersive/scene"

// Tooltip is a small panel of text shown while the pointer hovers the
// node it is attached to. It is drawn in the root's frame above
// everything else. Register show and hide observers with OnShow and
// OnHide.
type Tooltip struct {
	*Panel
	label *Text
	// Offset is added to the host's bottom-left corner.
	Offset Vec2
}

// NewTooltip creates a hidden tooltip showing text.
func (t *Tree) NewTooltip(text string) *Tooltip {
	tt := &Tooltip{Panel: &Panel{}}
	t.initPanel(tt.Panel, tt, Config{
		Padding: Uniform(0.002),
		Layout:  &Overlapping{HAlign: AlignCenter, VAlign: AlignCenter},
	})
	tt.label = t.NewText(TextConfig{
		Config: Config{SizeMode: [2]SizeMode{SizeMeters, SizeMeters}},
		Text:   text,
	})
	if err := tt.AddChild(tt.label); err != nil {
		tt.logger().Warn("tooltip label not attached", "err", err)
	}
	tt.SetFitContent(true, true)
	tt.SetVisible(false)
	return tt
}

// Label returns the text widget.
func (tt *Tooltip) Label() *Text { return tt.label }

// SetText changes the tooltip text and resizes the tooltip to it.
func (tt *Tooltip) SetText(s string) {
	tt.label.SetText(s)
	if err := tt.label.SetSize(tt.label.Measure()); err != nil {
		tt.logger().Warn("tooltip text size rejected", "err", err)
	}
	tt.RefreshLayout(false)
}

// host returns the node the tooltip is attached to.
func (tt *Tooltip) host() *Node { return tt.tree.Node(tt.attachedTo) }

// Show places the tooltip under its host and makes it visible, unless
// tooltips are disabled for the host.
func (tt *Tooltip) Show() {
	h := tt.host()
	if h == nil || !h.tooltipsEnabled {
		return
	}
	tt.SetPosition(h.AbsolutePosition().Add(Vec2{0, h.size[1]}).Add(tt.Offset))
	tt.SetVisible(true)
}

// Hide hides the tooltip.
func (tt *Tooltip) Hide() { tt.SetVisible(false) }

// ApplyDepth implements DepthApplier. A tooltip draws over whatever
// stencil values are below it, so the border replaces them first and the
// interior raises the border's value for the label.
func (tt *Tooltip) ApplyDepth(d DepthPass) {
	tt.applyDrawable(tt.border, d.DrawOrder, scene.StencilFunc{
		Compare: scene.CompareAlways, Ref: d.Stencil, Pass: scene.OpReplace,
	})
	tt.applyDrawable(tt.interior, d.DrawOrder+1, scene.StencilFunc{
		Compare: scene.CompareEqual, Ref: d.Stencil, Pass: scene.OpIncr,
	})
}

// Tooltip returns the attached tooltip node, or nil.
func (n *Node) Tooltip() *Node { return n.tree.Node(n.tooltip) }

// hoverSource is a widget that reports pointer hover.
type hoverSource interface {
	On(t EventType, fn GrabHandler)
}

// SetTooltip attaches tt to the node, replacing and removing any previous
// tooltip. When the node's widget reports hover, the tooltip shows on
// hover and hides when the hover ends. A tooltip that is the node or one
// of its owners returns ErrCycle.
func (n *Node) SetTooltip(tt *Tooltip) error {
	n.mustLive("SetTooltip")
	if tt != nil {
		if err := n.checkAttach("set tooltip", tt.Node); err != nil {
			return err
		}
	}
	if old := n.Tooltip(); old != nil && (tt == nil || old != tt.Node) {
		old.attachedTo = NoNode
		n.tooltip = NoNode
		old.Remove()
	}
	if tt == nil {
		n.RefreshDepth()
		return nil
	}

	n.attachNode(tt.Node, n.theme.TooltipTheme())
	root := n.Root()
	tt.frame = root.id
	tt.surface().SetParent(tt.Handle(), root.Handle())
	n.tooltip = tt.id
	tt.Hide()

	if src, ok := n.impl.(hoverSource); ok {
		src.On(EventHover, func(GrabEvent) {
			if !tt.released && !tt.visible {
				tt.Show()
			}
		})
		src.On(EventHoverEnd, func(GrabEvent) {
			if !tt.released {
				tt.Hide()
			}
		})
	}
	n.RefreshDepth()
	return nil
}

var (
	_ Sizable      = (*Cursor)(nil)
	_ SizeApplier  = (*Cursor)(nil)
	_ Themeable    = (*Tooltip)(nil)
	_ DepthApplier = (*Tooltip)(nil)
)
