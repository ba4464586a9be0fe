// Package scene is the boundary between the GUI core and the host renderer.
// The core only ever talks to a Backend: a handful of drawable and text
// primitives on a retained 3D scene graph.
package scene

// Handle identifies a drawable owned by a Backend.
type Handle uint32

// World is the scene root. Parenting to World detaches from any GUI node.
const World Handle = 0

// CompareOp is a stencil comparison function.
type CompareOp uint8

const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

var compareNames = [...]string{"NEVER", "LESS", "EQUAL", "LEQUAL", "GREATER", "NOTEQUAL", "GEQUAL", "ALWAYS"}

func (c CompareOp) String() string {
	if int(c) < len(compareNames) {
		return compareNames[c]
	}
	return "COMPARE?"
}

// StencilOp is applied to the stencil buffer when the comparison passes.
type StencilOp uint8

const (
	OpKeep StencilOp = iota
	OpZero
	OpReplace
	OpIncr
	OpDecr
	OpInvert
)

var opNames = [...]string{"KEEP", "ZERO", "REPLACE", "INCR", "DECR", "INVERT"}

func (o StencilOp) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "OP?"
}

// StencilFunc compares the existing stencil value against Ref using
// Compare and applies Pass where the comparison succeeds.
type StencilFunc struct {
	Compare CompareOp
	Ref     int
	Pass    StencilOp
}

// Box is a measured extent in meters.
type Box struct {
	Width  float32
	Height float32
}

// Surface is the drawable primitive set.
type Surface interface {
	CreateQuad(size [2]float32) Handle
	CreateGroup() Handle
	SetVertices(h Handle, verts [][3]float32)
	SetPosition(h Handle, pos [3]float32)
	SetParent(h Handle, parent Handle)
	SetColor(h Handle, rgba uint32)
	SetDrawOrder(h Handle, order int)
	SetStencilFunc(h Handle, fn StencilFunc)
	SetVisible(h Handle, visible bool)
	SetColorWrite(h Handle, enabled bool)
	Release(h Handle)
}

// TextSurface is the text primitive set. Wrap widths count characters.
type TextSurface interface {
	CreateText(s string) Handle
	SetText(h Handle, s string)
	SetLineHeight(h Handle, height float32)
	SetWrapWidth(h Handle, chars int)
	MeasureBoundingBox(h Handle) Box
}

// Backend is everything the GUI core needs from a renderer.
type Backend interface {
	Surface
	TextSurface
}

// Batcher is implemented by backends that want to group the calls made
// inside Context.Batch.
type Batcher interface {
	BeginBatch()
	EndBatch() error
}
