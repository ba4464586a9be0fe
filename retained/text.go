package retained

import (
	"github.com/rivo/uniseg"

	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

// Text auto-fit limits.
const (
	// MaxFitIterations bounds the wrap width search.
	MaxFitIterations = 20
	// MinWrapWidth is the wrap width used when no width fits.
	MinWrapWidth = 5
)

// TextConfig configures a Text.
type TextConfig struct {
	Config
	Text string
	// Level 1 to 4 selects the theme's header heights; 0 is body text.
	Level int
	// Index draws with the theme's index text color.
	Index bool
	// LineScale multiplies the theme line height. Zero means 1.
	LineScale float32
}

// Text is wrapped text that re-wraps itself to fit its width. By default
// it fills the parent's width and the height left by absolute siblings.
// Its layout box is the measured text, not its size.
type Text struct {
	*Node
	Grabbable
	handle     scene.Handle
	text       string
	level      int
	index      bool
	scale      float32
	lineHeight float32
	wrap       int
	bounds     Vec2
}

// NewText creates a text widget. A zero size is replaced by the size of
// the unwrapped text.
func (t *Tree) NewText(cfg TextConfig) *Text {
	x := &Text{text: cfg.Text, level: cfg.Level, index: cfg.Index, scale: cfg.LineScale}
	if x.scale == 0 {
		x.scale = 1
	}
	if cfg.SizeMode == ([2]SizeMode{}) {
		cfg.SizeMode = [2]SizeMode{SizePercentParent, SizePercentRemaining}
	}
	x.handle = t.surface().CreateText(cfg.Text)
	x.Node = t.attach(x, cfg.Config, x.handle)
	x.bind(x.Node)

	if cfg.Size == (Vec2{}) {
		th := cfg.Theme
		if th == nil {
			th = theme.Dark()
		}
		x.setLineHeight(th)
		cfg.Size = x.Measure()
	}
	x.finish(cfg.Config)
	return x
}

// Text returns the unwrapped text.
func (x *Text) Text() string { return x.text }

// SetText replaces the text, re-fits it and relays out the parent.
func (x *Text) SetText(s string) {
	x.mustLive("SetText")
	x.text = s
	x.surface().SetText(x.handle, s)
	if _, err := x.applySize(x.size); err != nil {
		x.logger().Debug("text size rejected", "node", x.id, "err", err)
	}
	if p := x.Parent(); p != nil {
		p.RefreshLayout(false)
	}
}

// LineHeight returns the line height in meters.
func (x *Text) LineHeight() float32 { return x.lineHeight }

// WrapWidth returns the wrap width chosen by the last fit, in characters.
func (x *Text) WrapWidth() int { return x.wrap }

// Measure returns the extent of the text without wrapping.
func (x *Text) Measure() Vec2 {
	s := x.surface()
	s.SetWrapWidth(x.handle, 0)
	box := s.MeasureBoundingBox(x.handle)
	s.SetWrapWidth(x.handle, x.wrap)
	return Vec2{box.Width, box.Height}
}

// ContentBounds implements ContentBounder.
func (x *Text) ContentBounds() Vec2 { return x.bounds }

// ApplySize implements SizeApplier by re-fitting the wrap width.
func (x *Text) ApplySize(size Vec2) (Vec2, bool) {
	x.fit(size[0])
	return size, true
}

// fit binary searches the widest wrap width whose measured text is no
// wider than width.
func (x *Text) fit(width float32) {
	s := x.surface()
	measure := func(chars int) scene.Box {
		s.SetWrapWidth(x.handle, chars)
		return s.MeasureBoundingBox(x.handle)
	}

	lo, hi := 1, max(uniseg.GraphemeClusterCount(x.text), 1)
	best := 0
	var bestBox scene.Box
	for i := 0; i < MaxFitIterations && lo <= hi; i++ {
		mid := (lo + hi) / 2
		box := measure(mid)
		if box.Width <= width {
			best, bestBox = mid, box
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == 0 {
		x.logger().Warn("text too wide to fit, using minimum wrap width",
			"node", x.id, "width", width, "wrap", MinWrapWidth)
		best = MinWrapWidth
		bestBox = measure(best)
	} else {
		s.SetWrapWidth(x.handle, best)
	}
	x.wrap = best
	x.bounds = Vec2{bestBox.Width, bestBox.Height}
}

func (x *Text) setLineHeight(th *theme.Theme) {
	h := th.LineHeight
	switch x.level {
	case 1:
		h = th.H1
	case 2:
		h = th.H2
	case 3:
		h = th.H3
	case 4:
		h = th.H4
	}
	x.lineHeight = h * x.scale
	x.surface().SetLineHeight(x.handle, x.lineHeight)
}

// ApplyTheme implements ThemeApplier.
func (x *Text) ApplyTheme(th *theme.Theme) *theme.Theme {
	x.setLineHeight(th)
	c := th.TextColor
	if x.index {
		c = th.IndexTextColor
	}
	x.surface().SetColor(x.handle, uint32(c))
	return th
}

var (
	_ SizeApplier    = (*Text)(nil)
	_ ThemeApplier   = (*Text)(nil)
	_ ContentBounder = (*Text)(nil)
	_ Grabber        = (*Text)(nil)
	_ Sizable        = (*Text)(nil)
)
