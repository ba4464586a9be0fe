package retained

import (
	"log/slog"
	"slices"

	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

// ============================================================================
// Node Arena
// ============================================================================

// NodeID is a stable index into a Tree. IDs are never reused, so a stale
// ID simply resolves to nil once its node is removed.
type NodeID uint32

// NoNode is the zero NodeID.
const NoNode NodeID = 0

// Widget is anything backed by a Node. Concrete widgets embed *Node and
// pass themselves as the node's implementation so the node can reach
// their optional hooks (see capability.go).
type Widget interface {
	AsNode() *Node
}

// Tree owns every node created through it. Parent, root and overlay
// back-references are NodeIDs resolved here, never pointers.
type Tree struct {
	ctx    *scene.Context
	nodes  []*Node
	live   int
	sizing int
}

// NewTree creates an empty tree drawing through ctx.
func NewTree(ctx *scene.Context) *Tree {
	return &Tree{ctx: ctx, nodes: make([]*Node, 1, 64)}
}

// Context returns the scene context.
func (t *Tree) Context() *scene.Context { return t.ctx }

// Node returns the live node with the given ID, or nil.
func (t *Tree) Node(id NodeID) *Node {
	if id == NoNode || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of live nodes.
func (t *Tree) Len() int { return t.live }

func (t *Tree) surface() scene.Backend { return t.ctx.Backend() }

func (t *Tree) logger() *slog.Logger { return t.ctx.Logger() }

// Config holds the construction options shared by all nodes.
type Config struct {
	Size    Vec2
	Padding Sides
	Margin  Sides

	// SizeMode defaults to SizeMeters on both axes.
	SizeMode [2]SizeMode
	SizeRef  [2]SizeRef

	// Theme defaults to theme.Dark(). The node keeps its own deep copy.
	Theme *theme.Theme
	// KeepTheme stops the node from inheriting its parent's theme when
	// it is reparented.
	KeepTheme bool

	Layout Layout

	// InternalDepth is the extra stencil level this node adds for its
	// children. Negative values are treated as zero.
	InternalDepth int
	// BaseOffset is the stencil reference of a root. Zero means
	// DefaultBaseOffset.
	BaseOffset int
	// BaseDepthOffset is added to every draw order index. Zero means
	// MaxDrawDepthOffset.
	BaseDepthOffset int
}

type overlayEntry struct {
	id   string
	node NodeID
}

type drawRecord struct {
	handle  scene.Handle
	order   int
	stencil scene.StencilFunc
}

type depthState struct {
	drawOrder    int
	stencilDepth int
	postChildren int
}

// Node is a GUI tree node: size, padding, margin, theme, children and
// layout, plus the derived depth state written by RefreshDepth.
type Node struct {
	id       NodeID
	tree     *Tree
	impl     Widget
	handles  []scene.Handle
	isGroup  bool
	released bool
	removing bool

	parent        NodeID
	root          NodeID
	frame         NodeID
	children      []NodeID
	overlayParent NodeID
	pageParent    NodeID
	attachedTo    NodeID

	size     Vec2
	position Vec2
	padding  Sides
	margin   Sides
	sizeMode [2]SizeMode
	sizeRef  [2]SizeRef
	natural  Vec2
	fit      [2]bool
	layout   Layout

	theme      *theme.Theme
	localTheme *theme.Theme
	keepTheme  bool

	visible    bool
	disabled   bool
	colorWrite bool

	internalDepth   int
	baseOffset      int
	baseDepthOffset int
	depth           depthState
	drawables       []drawRecord

	overlay   NodeID
	overlayID string
	overlays  []overlayEntry
	pages     map[string]NodeID
	history   []string
	onBack    func()

	cursor          NodeID
	tooltip         NodeID
	tooltipsEnabled bool
	onShow          []func()
	onHide          []func()

	inSetSize  bool
	inSetTheme bool
	inLayout   bool
}

// NewNode creates a plain container node backed by a scene group.
func (t *Tree) NewNode(cfg Config) *Node {
	n := t.attach(nil, cfg, t.surface().CreateGroup())
	n.isGroup = true
	n.finish(cfg)
	return n
}

// attach registers a node for impl (nil for a plain node) owning handles.
// The first handle is the one children are parented to. Widgets call
// finish once their hooks are ready.
func (t *Tree) attach(impl Widget, cfg Config, handles ...scene.Handle) *Node {
	n := &Node{
		tree:            t,
		impl:            impl,
		handles:         handles,
		padding:         cfg.Padding,
		margin:          cfg.Margin,
		sizeMode:        cfg.SizeMode,
		sizeRef:         cfg.SizeRef,
		layout:          cfg.Layout,
		keepTheme:       cfg.KeepTheme,
		visible:         true,
		colorWrite:      true,
		tooltipsEnabled: true,
		internalDepth:   max(cfg.InternalDepth, 0),
		baseOffset:      cfg.BaseOffset,
		baseDepthOffset: cfg.BaseDepthOffset,
		pages:           make(map[string]NodeID),
	}
	for i, m := range n.sizeMode {
		if m == 0 {
			n.sizeMode[i] = SizeMeters
		}
	}
	if n.baseOffset == 0 {
		n.baseOffset = DefaultBaseOffset
	}
	if n.baseDepthOffset == 0 {
		n.baseDepthOffset = MaxDrawDepthOffset
	}
	if n.impl == nil {
		n.impl = n
	}

	n.id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.live++
	n.root = n.id
	return n
}

// finish applies the initial theme and size.
func (n *Node) finish(cfg Config) {
	th := cfg.Theme
	if th == nil {
		th = theme.Dark()
	}
	n.size = cfg.Size
	n.setTheme(th, false)
	if err := n.SetSize(cfg.Size); err != nil {
		n.logger().Warn("initial size rejected", "node", n.id, "size", cfg.Size, "err", err)
	}
	n.RefreshDepth()
}

// AsNode implements Widget.
func (n *Node) AsNode() *Node { return n }

// ID returns the node's stable ID.
func (n *Node) ID() NodeID { return n.id }

// Tree returns the owning tree.
func (n *Node) Tree() *Tree { return n.tree }

// Impl returns the widget the node belongs to, or the node itself.
func (n *Node) Impl() Widget { return n.impl }

// Handle returns the drawable children are parented to.
func (n *Node) Handle() scene.Handle { return n.handles[0] }

// Handles returns every drawable owned by the node.
func (n *Node) Handles() []scene.Handle { return slices.Clone(n.handles) }

// Released reports whether Remove has been called.
func (n *Node) Released() bool { return n.released }

func (n *Node) mustLive(op string) {
	if n.released {
		panic(&ReleasedError{ID: n.id, Op: op})
	}
}

func (n *Node) surface() scene.Backend { return n.tree.surface() }

func (n *Node) logger() *slog.Logger { return n.tree.logger() }

// ----------------------------------------------------------------------------
// Visibility
// ----------------------------------------------------------------------------

// Visible reports the node's own visibility flag.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node. Hidden nodes take no part in their
// parent's layout or selectables. Show and hide observers fire on change.
func (n *Node) SetVisible(visible bool) {
	n.mustLive("SetVisible")
	if n.visible == visible {
		return
	}
	n.visible = visible
	n.surface().SetVisible(n.Handle(), visible)

	observers := n.onHide
	if visible {
		observers = n.onShow
	}
	for _, fn := range observers {
		fn()
	}
	if p := n.Parent(); p != nil {
		p.RefreshLayout(false)
	}
}

// OnShow registers fn to run whenever the node becomes visible.
func (n *Node) OnShow(fn func()) { n.onShow = append(n.onShow, fn) }

// OnHide registers fn to run whenever the node becomes hidden.
func (n *Node) OnHide(fn func()) { n.onHide = append(n.onHide, fn) }

// Disabled reports whether the node is excluded from selection.
func (n *Node) Disabled() bool { return n.disabled }

// SetDisabled excludes the node and its subtree from selection.
func (n *Node) SetDisabled(disabled bool) { n.disabled = disabled }

// ----------------------------------------------------------------------------
// Padding, margin, position
// ----------------------------------------------------------------------------

// Padding returns the inner spacing.
func (n *Node) Padding() Sides { return n.padding }

// SetPadding changes the inner spacing and re-clamps the size.
func (n *Node) SetPadding(p Sides) error {
	n.mustLive("SetPadding")
	prev := n.padding
	n.padding = p
	if err := n.SetSize(n.size); err != nil {
		n.padding = prev
		return err
	}
	n.RefreshDepth()
	return nil
}

// Margin returns the outer spacing used by the parent's layout.
func (n *Node) Margin() Sides { return n.margin }

// SetMargin changes the outer spacing and relays out the parent.
func (n *Node) SetMargin(m Sides) {
	n.mustLive("SetMargin")
	n.margin = m
	if p := n.Parent(); p != nil {
		p.RefreshLayout(false)
	}
}

// Position returns the top-left corner in the frame of the node it is
// attached to (parent, overlay owner or root for tooltips), y down.
func (n *Node) Position() Vec2 { return n.position }

// SetPosition moves the node within its frame. Layouts overwrite it.
func (n *Node) SetPosition(pos Vec2) {
	n.mustLive("SetPosition")
	n.position = pos
	n.pushPosition()
}

// AbsolutePosition returns the top-left corner in the frame of the
// outermost node, which is the zero vector for that node itself.
func (n *Node) AbsolutePosition() Vec2 {
	f := n.tree.Node(n.frame)
	if f == nil {
		return Vec2{}
	}
	pos := n.position
	for ; f.frame != NoNode; f = n.tree.Node(f.frame) {
		pos = pos.Add(f.position)
	}
	return pos
}

// HoldsPoint reports whether pos, in the root's frame, is inside the node.
func (n *Node) HoldsPoint(pos Vec2) bool {
	abs := n.AbsolutePosition()
	return pos[0] >= abs[0] && pos[0] <= abs[0]+n.size[0] &&
		pos[1] >= abs[1] && pos[1] <= abs[1]+n.size[1]
}

// pushPosition converts the top-left layout position into the scene's
// convention: an offset of centers, y up.
func (n *Node) pushPosition() {
	var frameSize Vec2
	if f := n.tree.Node(n.frame); f != nil {
		frameSize = f.size
	}
	n.surface().SetPosition(n.Handle(), sceneOffset(n.position, n.size, frameSize))
}

// ----------------------------------------------------------------------------
// Drawables
// ----------------------------------------------------------------------------

// applyDrawable sets the draw order and stencil function of h and keeps a
// copy for the draw list.
func (n *Node) applyDrawable(h scene.Handle, order int, fn scene.StencilFunc) {
	s := n.surface()
	s.SetDrawOrder(h, order)
	s.SetStencilFunc(h, fn)
	for i := range n.drawables {
		if n.drawables[i].handle == h {
			n.drawables[i].order = order
			n.drawables[i].stencil = fn
			return
		}
	}
	n.drawables = append(n.drawables, drawRecord{handle: h, order: order, stencil: fn})
}

func (n *Node) dropDrawable(h scene.Handle) {
	n.drawables = slices.DeleteFunc(n.drawables, func(d drawRecord) bool { return d.handle == h })
}

func (n *Node) setColorWrite(enabled bool) {
	if n.colorWrite == enabled {
		return
	}
	n.colorWrite = enabled
	s := n.surface()
	for _, h := range n.handles {
		s.SetColorWrite(h, enabled)
	}
}

// ColorWrite reports whether the node's drawables currently write color.
// It is false while an ancestor is covered by an overlay.
func (n *Node) ColorWrite() bool { return n.colorWrite }
