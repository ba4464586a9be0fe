package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/immersive/theme"
)

func requireReleasedPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, ErrReleased)
	}()
	fn()
}

func TestRootPropagation(t *testing.T) {
	tree, _ := newTestTree(t)
	a := tree.NewNode(Config{Size: Vec2{1, 1}})
	b := tree.NewNode(Config{Size: Vec2{0.5, 0.5}})
	c := tree.NewNode(Config{Size: Vec2{0.2, 0.2}})

	require.NoError(t, b.AddChild(c))
	assert.Same(t, b, c.Root())
	require.NoError(t, a.AddChild(b))
	assert.Same(t, a, b.Root())
	assert.Same(t, a, c.Root())
	assert.Same(t, a, a.Root())
	assert.Nil(t, a.Parent())

	require.NoError(t, b.SetParent(nil, true))
	assert.Same(t, b, c.Root())
	assert.Equal(t, 0, a.ChildCount())
}

func TestReparentMovesBetweenParents(t *testing.T) {
	tree, _ := newTestTree(t)
	p1 := tree.NewNode(Config{Size: Vec2{1, 1}, Layout: &HBox{}})
	p2 := tree.NewNode(Config{Size: Vec2{1, 1}, Layout: &HBox{}})
	a := tree.NewNode(Config{Size: Vec2{0.2, 0.2}})
	b := tree.NewNode(Config{Size: Vec2{0.2, 0.2}})
	require.NoError(t, p1.AddChild(a))
	require.NoError(t, p1.AddChild(b))
	assert.InDelta(t, 0.2, b.Position()[0], delta)

	require.NoError(t, p2.AddChild(a))
	assert.Equal(t, []*Node{b}, p1.Children())
	assert.Equal(t, []*Node{a}, p2.Children())
	assert.Same(t, p2, a.Parent())
	assert.InDelta(t, 0, b.Position()[0], delta, "old parent is laid out again")
}

func TestHierarchyErrors(t *testing.T) {
	tree, _ := newTestTree(t)
	a := tree.NewNode(Config{Size: Vec2{1, 1}})
	b := tree.NewNode(Config{Size: Vec2{0.5, 0.5}})
	c := tree.NewNode(Config{Size: Vec2{0.2, 0.2}})
	require.NoError(t, a.AddChild(b))
	require.NoError(t, b.AddChild(c))

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"self parent", func() error { return a.AddChild(a) }, ErrCycle},
		{"descendant parent", func() error { return a.SetParent(c, true) }, ErrCycle},
		{"grandchild removal", func() error { return a.RemoveChild(c, false) }, ErrNotChild},
		{"unrelated removal", func() error { return c.RemoveChild(a, false) }, ErrNotChild},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.want)
		})
	}

	// failed calls leave the tree alone
	assert.Equal(t, []*Node{b}, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())
	assert.Same(t, a, c.Root())
}

func TestAttachRejectsCycles(t *testing.T) {
	tree, _ := newTestTree(t)
	root := tree.NewNode(Config{Size: Vec2{1, 1}})
	child := tree.NewPanel(Config{Size: Vec2{0.5, 0.5}, Padding: Uniform(0.01)})
	require.NoError(t, root.AddChild(child))
	ov := tree.NewPanel(Config{Size: Vec2{0.2, 0.2}, Padding: Uniform(0.01)})
	require.NoError(t, root.ShowOverlay("ov", ov))

	tip := tree.NewTooltip("help")
	host := tree.NewPanel(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, tip.AddChild(host))

	tests := []struct {
		name string
		run  func() error
	}{
		{"overlay of itself", func() error { return root.ShowOverlay("self", root) }},
		{"overlay of its parent", func() error { return child.ShowOverlay("loop", root) }},
		{"overlay of its overlay owner", func() error { return ov.ShowOverlay("back", root) }},
		{"page of its parent", func() error { return child.AddPage("loop", root) }},
		{"cursor of its parent", func() error { return child.SetCursor(root) }},
		{"tooltip containing its host", func() error { return host.SetTooltip(tip) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), ErrCycle)
		})
	}

	assert.Nil(t, root.Parent())
	assert.Same(t, root, root.Root())
	assert.Same(t, root, child.Root())
	assert.Same(t, ov.Node, root.ActiveOverlay())
	assert.Equal(t, []string{"ov"}, root.OverlayIDs())
	assert.Nil(t, child.ActiveOverlay())
	assert.Nil(t, ov.ActiveOverlay())
	assert.Nil(t, child.Page("loop"))
	assert.Nil(t, child.Cursor())
	assert.Nil(t, host.Tooltip())
	assert.Same(t, tip.Node, host.Parent())
}

func TestInsertChildOrder(t *testing.T) {
	tree, _ := newTestTree(t)
	p := tree.NewNode(Config{Size: Vec2{1, 1}, Layout: &HBox{}})
	x := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	y := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	z := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	w := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})

	require.NoError(t, p.AddChild(x))
	require.NoError(t, p.AddChild(y))
	require.NoError(t, p.InsertChild(0, z))
	require.NoError(t, p.InsertChild(99, w))

	assert.Equal(t, []*Node{z, x, y, w}, p.Children())
	assert.InDelta(t, 0, z.Position()[0], delta)
	assert.InDelta(t, 0.3, w.Position()[0], delta)
}

func TestRemoveReleasesSubtree(t *testing.T) {
	tree, rec := newTestTree(t)
	root := tree.NewNode(Config{Size: Vec2{1, 1}})
	p := tree.NewNode(Config{Size: Vec2{0.5, 0.5}})
	c1 := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	c2 := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, root.AddChild(p))
	require.NoError(t, p.AddChild(c1))
	require.NoError(t, p.AddChild(c2))
	require.Equal(t, 4, rec.Live())
	require.Equal(t, 4, tree.Len())

	p.Remove()
	assert.Equal(t, 1, rec.Live())
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 0, root.ChildCount())
	for _, n := range []*Node{p, c1, c2} {
		assert.True(t, n.Released())
		assert.Nil(t, tree.Node(n.ID()))
		r, ok := rec.Record(n.Handle())
		require.True(t, ok)
		assert.True(t, r.Released)
	}

	// removing again does nothing
	p.Remove()
	assert.Equal(t, 1, tree.Len())

	requireReleasedPanic(t, func() { p.SetVisible(false) })
	requireReleasedPanic(t, func() { _ = c1.SetSize(Vec2{1, 1}) })
	requireReleasedPanic(t, func() { _ = root.AddChild(c2) })
}

func TestRemoveChildKeepsNode(t *testing.T) {
	tree, rec := newTestTree(t)
	p := tree.NewNode(Config{Size: Vec2{1, 1}})
	c := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, p.AddChild(c))

	require.NoError(t, p.RemoveChild(c, false))
	assert.False(t, c.Released())
	assert.Nil(t, c.Parent())
	assert.Same(t, c, c.Root())
	assert.Equal(t, 2, rec.Live())

	require.NoError(t, p.AddChild(c))
	require.NoError(t, p.RemoveChild(c, true))
	assert.True(t, c.Released())
	assert.Equal(t, 1, rec.Live())
}

func TestRemoveChildren(t *testing.T) {
	tree, rec := newTestTree(t)
	p := tree.NewNode(Config{Size: Vec2{1, 1}})
	for range 3 {
		require.NoError(t, p.AddChild(tree.NewNode(Config{Size: Vec2{0.1, 0.1}})))
	}
	p.RemoveChildren(true)
	assert.Equal(t, 0, p.ChildCount())
	assert.Equal(t, 1, rec.Live())
}

func TestThemeInheritance(t *testing.T) {
	tree, _ := newTestTree(t)
	p := tree.NewNode(Config{Size: Vec2{1, 1}, Theme: theme.Light()})
	c := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	kept := tree.NewNode(Config{Size: Vec2{0.1, 0.1}, KeepTheme: true})
	require.NoError(t, p.AddChild(c))
	require.NoError(t, p.AddChild(kept))

	assert.Equal(t, "light", c.Theme().Name)
	assert.Equal(t, "dark", kept.Theme().Name)

	custom := theme.Dark()
	custom.Name = "custom"
	p.SetTheme(custom)
	assert.Equal(t, "custom", p.Theme().Name)
	assert.Equal(t, "custom", c.Theme().Name)
	assert.Equal(t, "dark", kept.Theme().Name)
}

func TestSetThemeOnly(t *testing.T) {
	tree, _ := newTestTree(t)
	p := tree.NewNode(Config{Size: Vec2{1, 1}})
	c := tree.NewNode(Config{Size: Vec2{0.1, 0.1}})
	require.NoError(t, p.AddChild(c))
	ov := tree.NewNode(Config{Size: Vec2{0.2, 0.2}})
	require.NoError(t, p.ShowOverlay("ov", ov))

	p.SetThemeOnly(theme.Light())
	assert.Equal(t, "light", p.Theme().Name)
	assert.Equal(t, "light", ov.Theme().Name, "overlays follow the node")
	assert.Equal(t, "dark", c.Theme().Name)

	p.SetTheme(theme.Light())
	assert.Equal(t, "light", c.Theme().Name)
}

func TestThemeIsCopied(t *testing.T) {
	tree, _ := newTestTree(t)
	th := theme.Dark()
	a := tree.NewNode(Config{Theme: th})
	b := tree.NewNode(Config{Theme: th})

	th.LineHeight = 1
	th.Icons["back"] = "changed.png"
	assert.InDelta(t, 0.02, a.Theme().LineHeight, delta)
	assert.Equal(t, "icons/back.png", a.Theme().Icons["back"])

	a.Theme().Icons["home"] = "mine.png"
	assert.Equal(t, "icons/home.png", b.Theme().Icons["home"])
	assert.NotSame(t, a.Theme(), b.Theme())
}
