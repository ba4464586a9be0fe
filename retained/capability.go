package retained

import "github.com/agiangrant/immersive/theme"

// ============================================================================
// Widget hooks
// ============================================================================
//
// A Node calls these on its implementation when the widget provides them.
// They run inside the node's own guards, so they must not call back into
// SetSize or SetTheme on the same node.

// SizeApplier rebuilds widget geometry for a new size. It returns the size
// actually used, or false to reject the size.
type SizeApplier interface {
	ApplySize(size Vec2) (Vec2, bool)
}

// ThemeApplier restyles a widget. It returns the theme the node should
// keep, normally the one passed in.
type ThemeApplier interface {
	ApplyTheme(th *theme.Theme) *theme.Theme
}

// DepthApplier assigns draw order and stencil state to a widget that owns
// more than one drawable.
type DepthApplier interface {
	ApplyDepth(p DepthPass)
}

// BorderAllower reserves room for a drawn border. minExtra is added to
// the minimum size and inset shrinks the interior on every side.
type BorderAllower interface {
	BorderAllowance() (minExtra, inset float32)
}

// ContentBounder reports a layout box different from the node size.
type ContentBounder interface {
	ContentBounds() Vec2
}

// selfSelector marks widgets that are selection targets themselves
// instead of containers of them.
type selfSelector interface {
	SelectsSelf() bool
}

// ============================================================================
// Capabilities
// ============================================================================
//
// Callers that hold a Widget check for these with a type assertion.

// Sizable is anything that can be resized.
type Sizable interface {
	Widget
	Size() Vec2
	SetSize(size Vec2) error
}

// Themeable is anything that can be restyled.
type Themeable interface {
	Widget
	Theme() *theme.Theme
	SetTheme(th *theme.Theme)
}

// Selectable contributes selection targets.
type Selectable interface {
	Widget
	Selectables() []*Node
}

// Grabber responds to being grabbed by a pointer.
type Grabber interface {
	Grab()
	Hold()
	Release(silent bool)
	IsGrabbed() bool
}

// Highlightable shows a hover highlight.
type Highlightable interface {
	Highlight(on bool)
}

// Hoverable is told when a pointer enters and leaves.
type Hoverable interface {
	Hover()
	HoverEnd()
}

// Overlayable hosts overlays and pages.
type Overlayable interface {
	Widget
	ShowOverlay(id string, panel Widget) error
	RemoveOverlay(id string)
	ActiveOverlay() *Node
}

var (
	_ Sizable     = (*Node)(nil)
	_ Themeable   = (*Node)(nil)
	_ Selectable  = (*Node)(nil)
	_ Overlayable = (*Node)(nil)
)
