package retained

import (
	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

// Panel is a rounded border quad with an inset interior quad. The
// interior quad raises the stencil by one so children only draw inside
// it. With zero top and right padding the interior quad is hidden and the
// panel adds no clip level.
//
// The stencil buffer is expected to be cleared to the root's base offset
// before the GUI draws.
type Panel struct {
	*Node
	Grabbable
	border   scene.Handle
	interior scene.Handle
}

// NewPanel creates a panel.
func (t *Tree) NewPanel(cfg Config) *Panel {
	p := &Panel{}
	t.initPanel(p, p, cfg)
	return p
}

// initPanel creates the quads of p and registers impl, the widget that
// embeds p, as the node's implementation.
func (t *Tree) initPanel(p *Panel, impl Widget, cfg Config) {
	s := t.surface()
	p.border = s.CreateQuad(cfg.Size)
	p.interior = s.CreateQuad(cfg.Size.Sub(cfg.Padding.Total()).Max(Vec2{}))
	s.SetParent(p.interior, p.border)

	cfg.InternalDepth = 1
	p.Node = t.attach(impl, cfg, p.border, p.interior)
	p.bind(p.Node)
	p.finish(cfg)
}

// BorderAllowance implements BorderAllower.
func (p *Panel) BorderAllowance() (float32, float32) {
	r := p.cornerRadius()
	return 2 * r, r
}

func (p *Panel) hasBorder() bool {
	return p.padding[Top] != 0 || p.padding[Right] != 0
}

// ApplySize implements SizeApplier.
func (p *Panel) ApplySize(size Vec2) (Vec2, bool) {
	inner := size.Sub(p.padding.Total())
	if inner[0] <= 0 || inner[1] <= 0 {
		return p.size, false
	}
	r := p.cornerRadius()
	s := p.surface()
	s.SetVertices(p.border, quadVertices(size, r))
	s.SetVertices(p.interior, quadVertices(inner, r))
	s.SetPosition(p.interior, [3]float32{
		(p.padding[Left] - p.padding[Right]) / 2,
		-(p.padding[Top] - p.padding[Bottom]) / 2,
		0,
	})

	if p.hasBorder() {
		p.internalDepth = 1
		s.SetVisible(p.interior, true)
	} else {
		p.internalDepth = 0
		s.SetVisible(p.interior, false)
	}
	return size, true
}

// ApplyTheme implements ThemeApplier. Top-level panels use the top
// background color.
func (p *Panel) ApplyTheme(th *theme.Theme) *theme.Theme {
	back := th.BackColor
	if p.parent == NoNode {
		back = th.TopBackColor
	}
	border := th.BorderColor
	if !p.hasBorder() {
		border = back
	}
	s := p.surface()
	s.SetColor(p.border, uint32(border))
	s.SetColor(p.interior, uint32(back))
	return th
}

// ApplyDepth implements DepthApplier. With a border the interior quad
// draws first and increments the stencil; the border draws next over the
// same region without changing it.
func (p *Panel) ApplyDepth(d DepthPass) {
	if p.internalDepth == 0 {
		// the interior quad is hidden
		p.dropDrawable(p.interior)
		p.applyDrawable(p.border, d.DrawOrder, d.Func())
		return
	}
	p.applyDrawable(p.interior, d.DrawOrder, scene.StencilFunc{
		Compare: scene.CompareEqual, Ref: d.Stencil, Pass: scene.OpIncr,
	})
	p.applyDrawable(p.border, d.DrawOrder+1, scene.StencilFunc{
		Compare: scene.CompareEqual, Ref: d.Stencil, Pass: scene.OpKeep,
	})
}

var (
	_ SizeApplier   = (*Panel)(nil)
	_ ThemeApplier  = (*Panel)(nil)
	_ DepthApplier  = (*Panel)(nil)
	_ BorderAllower = (*Panel)(nil)
	_ Grabber       = (*Panel)(nil)
	_ Highlightable = (*Panel)(nil)
	_ Hoverable     = (*Panel)(nil)
	_ Sizable       = (*Panel)(nil)
	_ Themeable     = (*Panel)(nil)
	_ Selectable    = (*Panel)(nil)
	_ Overlayable   = (*Panel)(nil)
)
