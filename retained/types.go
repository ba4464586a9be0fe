package retained

import "github.com/chewxy/math32"

// Vec2 is a width/height or x/y pair in meters.
type Vec2 [2]float32

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{math32.Max(v[0], o[0]), math32.Max(v[1], o[1])} }

// Finite reports whether both components are finite numbers.
func (v Vec2) Finite() bool {
	return !math32.IsNaN(v[0]) && !math32.IsNaN(v[1]) && !math32.IsInf(v[0], 0) && !math32.IsInf(v[1], 0)
}

// Side indexes into Sides.
const (
	Top = iota
	Right
	Bottom
	Left
)

// Sides holds per-edge values in top, right, bottom, left order.
type Sides [4]float32

// Uniform returns Sides with every edge set to v.
func Uniform(v float32) Sides { return Sides{v, v, v, v} }

// Horizontal returns left + right.
func (s Sides) Horizontal() float32 { return s[Left] + s[Right] }

// Vertical returns top + bottom.
func (s Sides) Vertical() float32 { return s[Top] + s[Bottom] }

// Total returns (left + right, top + bottom).
func (s Sides) Total() Vec2 { return Vec2{s.Horizontal(), s.Vertical()} }

// Align positions items inside the available space.
type Align int

const (
	// AlignStart places items at the top or left edge.
	AlignStart Align = iota
	// AlignCenter centers items.
	AlignCenter
	// AlignEnd places items at the bottom or right edge.
	AlignEnd
	// AlignJustify spreads leftover space evenly between items. With a
	// single item it behaves like AlignStart.
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignJustify:
		return "justify"
	}
	return "align?"
}
