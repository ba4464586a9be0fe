package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/immersive/scene"
)

type depthFixture struct {
	tree   *Tree
	rec    *scene.Recorder
	root   *Panel
	p1, p2 *Panel
	g1, g2 *Group
}

// newDepthFixture builds root -> {p1 -> g1, p2 -> g2} out of bordered
// panels.
func newDepthFixture(t *testing.T) *depthFixture {
	t.Helper()
	tree, rec := newTestTree(t)
	f := &depthFixture{tree: tree, rec: rec}
	f.root = tree.NewPanel(Config{Size: Vec2{1, 1}, Padding: Uniform(0.01), Layout: &HBox{}})
	f.p1 = tree.NewPanel(Config{Size: Vec2{0.3, 0.3}, Padding: Uniform(0.01)})
	f.p2 = tree.NewPanel(Config{Size: Vec2{0.3, 0.3}, Padding: Uniform(0.01)})
	f.g1 = tree.NewGroup(Config{Size: Vec2{0.1, 0.1}})
	f.g2 = tree.NewGroup(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, f.p1.AddChild(f.g1))
	require.NoError(t, f.p2.AddChild(f.g2))
	require.NoError(t, f.root.AddChild(f.p1))
	require.NoError(t, f.root.AddChild(f.p2))
	return f
}

func (f *depthFixture) record(t *testing.T, h scene.Handle) scene.Record {
	t.Helper()
	r, ok := f.rec.Record(h)
	require.True(t, ok)
	return r
}

func TestDepthIndices(t *testing.T) {
	f := newDepthFixture(t)

	tests := []struct {
		name    string
		node    *Node
		index   int
		stencil int
		post    int
	}{
		{"root", f.root.Node, 0, 10, 40},
		{"p1", f.p1.Node, 10, 11, 20},
		{"g1", f.g1.Node, 20, 12, 20},
		{"p2", f.p2.Node, 30, 11, 40},
		{"g2", f.g2.Node, 40, 12, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.index, tt.node.DrawOrderIndex())
			assert.Equal(t, tt.stencil, tt.node.StencilDepth())
			assert.Equal(t, tt.post, tt.node.PostChildrenDrawIndex())
		})
	}
}

func TestPanelStencilFuncs(t *testing.T) {
	f := newDepthFixture(t)
	border, interior := f.root.Handles()[0], f.root.Handles()[1]

	r := f.record(t, interior)
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareEqual, Ref: 10, Pass: scene.OpIncr}, r.Stencil)
	assert.Equal(t, MaxDrawDepthOffset, r.DrawOrder)
	assert.True(t, r.Visible)

	r = f.record(t, border)
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareEqual, Ref: 10, Pass: scene.OpKeep}, r.Stencil)
	assert.Equal(t, MaxDrawDepthOffset+1, r.DrawOrder)

	r = f.record(t, f.p2.Handles()[1])
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareEqual, Ref: 11, Pass: scene.OpIncr}, r.Stencil)
	assert.Equal(t, MaxDrawDepthOffset+30, r.DrawOrder)

	// groups own no drawables
	assert.Equal(t, 0, f.record(t, f.g1.Handle()).DrawOrder)
}

func TestPanelWithoutBorder(t *testing.T) {
	tree, rec := newTestTree(t)
	p := tree.NewPanel(Config{Size: Vec2{1, 1}, Padding: Sides{Bottom: 0.01, Left: 0.01}})
	g := tree.NewGroup(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, p.AddChild(g))

	assert.Equal(t, 0, p.InternalDepth())
	border, _ := rec.Record(p.Handles()[0])
	interior, _ := rec.Record(p.Handles()[1])
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareAlways, Ref: 10, Pass: scene.OpReplace}, border.Stencil)
	assert.False(t, interior.Visible)
	assert.Equal(t, 10, g.StencilDepth())

	entries := CollectDrawList(p)
	require.Len(t, entries, 1)
	assert.Equal(t, p.Handles()[0], entries[0].Handle)

	// a border brings the clip level back
	require.NoError(t, p.SetPadding(Uniform(0.01)))
	assert.Equal(t, 1, p.InternalDepth())
	assert.Equal(t, 11, g.StencilDepth())
	interior, _ = rec.Record(p.Handles()[1])
	assert.True(t, interior.Visible)
}

func TestDepthInvariants(t *testing.T) {
	f := newDepthFixture(t)

	var walk func(n *Node)
	walk = func(n *Node) {
		kids := n.Children()
		for i, c := range kids {
			assert.Greater(t, c.DrawOrderIndex(), n.DrawOrderIndex())
			assert.GreaterOrEqual(t, c.StencilDepth(), n.StencilDepth())
			assert.LessOrEqual(t, c.PostChildrenDrawIndex(), n.PostChildrenDrawIndex())
			if i > 0 {
				prev := kids[i-1]
				assert.Greater(t, c.DrawOrderIndex(), prev.PostChildrenDrawIndex(), "sibling ranges overlap")
			}
			walk(c)
		}
	}
	walk(f.root.Node)
}

func TestBaseDepthOffset(t *testing.T) {
	tree, rec := newTestTree(t)
	q := tree.NewQuad(QuadConfig{Config: Config{Size: Vec2{0.1, 0.1}, BaseDepthOffset: 100, BaseOffset: 3}})
	r, _ := rec.Record(q.Handle())
	assert.Equal(t, 100, r.DrawOrder)
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareAlways, Ref: 3, Pass: scene.OpReplace}, r.Stencil)
	assert.Equal(t, 100, q.BaseDepthOffset())
}

func TestOverlayDepth(t *testing.T) {
	f := newDepthFixture(t)
	post := f.root.PostChildrenDrawIndex()
	q := f.tree.NewQuad(QuadConfig{Config: Config{Size: Vec2{0.2, 0.2}}})
	require.NoError(t, f.root.ShowOverlay("q", q))

	assert.Equal(t, post+RenderOffsetOverlay, q.DrawOrderIndex())
	r := f.record(t, q.Handle())
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareLessEqual, Ref: 11, Pass: scene.OpReplace}, r.Stencil)
	assert.Equal(t, MaxDrawDepthOffset+post+RenderOffsetOverlay, r.DrawOrder)

	for _, n := range []*Node{f.p1.Node, f.g1.Node, f.p2.Node} {
		assert.False(t, n.ColorWrite())
		r := f.record(t, n.Handle())
		assert.False(t, r.ColorWrite)
	}
	assert.True(t, q.ColorWrite())

	f.root.RemoveOverlay("q")
	for _, n := range []*Node{f.root.Node, f.p1.Node, f.g1.Node, f.p2.Node} {
		assert.True(t, n.ColorWrite())
	}
	assert.True(t, q.Released())
}

func TestCursorAndTooltipDepth(t *testing.T) {
	f := newDepthFixture(t)
	post := f.root.PostChildrenDrawIndex()

	cur := f.tree.NewCursor(0)
	require.NoError(t, f.root.SetCursor(cur))
	assert.Equal(t, post+RenderOffsetCursor, cur.DrawOrderIndex())
	assert.Equal(t, 11, cur.StencilDepth())
	r := f.record(t, cur.Handle())
	assert.Equal(t, scene.CompareLessEqual, r.Stencil.Compare)

	// the cursor goes above an overlay
	q := f.tree.NewQuad(QuadConfig{Config: Config{Size: Vec2{0.2, 0.2}}})
	require.NoError(t, f.root.ShowOverlay("q", q))
	assert.Equal(t, post+RenderOffsetOverlay+RenderOffsetCursor, cur.DrawOrderIndex())
	assert.True(t, cur.ColorWrite())

	tt := f.tree.NewTooltip("tip")
	require.NoError(t, f.p1.SetTooltip(tt))
	p1post := f.p1.PostChildrenDrawIndex()
	assert.Equal(t, p1post+ChildIndexStep+RenderOffsetCursor, tt.DrawOrderIndex())
	assert.Equal(t, f.p1.StencilDepth()+f.p1.InternalDepth()+1, tt.StencilDepth())

	border := f.record(t, tt.Handles()[0])
	interior := f.record(t, tt.Handles()[1])
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareAlways, Ref: tt.StencilDepth(), Pass: scene.OpReplace}, border.Stencil)
	assert.Equal(t, scene.StencilFunc{Compare: scene.CompareEqual, Ref: tt.StencilDepth(), Pass: scene.OpIncr}, interior.Stencil)
	assert.Equal(t, border.DrawOrder+1, interior.DrawOrder)
	assert.Equal(t, tt.StencilDepth()+1, tt.Label().StencilDepth())

	// the tooltip takes no index from its siblings
	assert.Equal(t, 30, f.p2.DrawOrderIndex())
}
