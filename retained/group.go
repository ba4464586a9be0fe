package retained

import (
	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

// cornerRadius is the theme corner radius the node draws with.
func (n *Node) cornerRadius() float32 {
	if n.localTheme == nil {
		return 0
	}
	return n.localTheme.CornerRadius
}

// Group is an organizing container with no drawables of its own. It
// reserves room for a rounded border in its minimum size so it lines up
// with panels.
type Group struct {
	*Node
	Grabbable
}

// NewGroup creates a group.
func (t *Tree) NewGroup(cfg Config) *Group {
	g := &Group{}
	g.Node = t.attach(g, cfg, t.surface().CreateGroup())
	g.isGroup = true
	g.bind(g.Node)
	g.finish(cfg)
	return g
}

// BorderAllowance implements BorderAllower.
func (g *Group) BorderAllowance() (float32, float32) {
	return 2 * g.cornerRadius(), 0
}

// Quad is a single rounded rectangle.
type Quad struct {
	*Node
	Grabbable
	handle scene.Handle
	color  theme.Color
	radius float32
}

// QuadConfig configures a Quad.
type QuadConfig struct {
	Config
	// Color defaults to the theme highlight color.
	Color theme.Color
	// CornerRadius defaults to square corners.
	CornerRadius float32
}

// NewQuad creates a quad.
func (t *Tree) NewQuad(cfg QuadConfig) *Quad {
	q := &Quad{color: cfg.Color, radius: cfg.CornerRadius}
	q.handle = t.surface().CreateQuad(cfg.Size)
	q.Node = t.attach(q, cfg.Config, q.handle)
	q.bind(q.Node)
	q.finish(cfg.Config)
	return q
}

// ApplySize implements SizeApplier.
func (q *Quad) ApplySize(size Vec2) (Vec2, bool) {
	q.surface().SetVertices(q.handle, quadVertices(size, q.radius))
	return size, true
}

// ApplyTheme implements ThemeApplier.
func (q *Quad) ApplyTheme(th *theme.Theme) *theme.Theme {
	c := q.color
	if c == 0 {
		c = th.HighlightColor
	}
	q.surface().SetColor(q.handle, uint32(c))
	return th
}

// Color returns the fill color, or zero for the theme color.
func (q *Quad) Color() theme.Color { return q.color }

// SetColor changes the fill color. Zero selects the theme color.
func (q *Quad) SetColor(c theme.Color) {
	q.mustLive("SetColor")
	q.color = c
	q.ApplyTheme(q.localTheme)
}

var (
	_ BorderAllower = (*Group)(nil)
	_ Grabber       = (*Group)(nil)
	_ Selectable    = (*Group)(nil)

	_ SizeApplier  = (*Quad)(nil)
	_ ThemeApplier = (*Quad)(nil)
	_ Grabber      = (*Quad)(nil)
	_ Sizable      = (*Quad)(nil)
)
