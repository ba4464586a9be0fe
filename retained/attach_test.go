package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/immersive/theme"
)

func TestCursor(t *testing.T) {
	tree, rec := newTestTree(t)
	root := tree.NewNode(Config{Size: Vec2{1, 1}})
	cur := tree.NewCursor(0)
	require.NoError(t, root.SetCursor(cur))

	assert.Same(t, cur.Node, root.Cursor())
	assert.Same(t, root, cur.Root())
	assertVec(t, Vec2{0.02, 0.02}, cur.Size())
	assert.Equal(t, 0, root.ChildCount())

	r, _ := rec.Record(cur.Handle())
	assert.Equal(t, uint32(theme.Dark().HighlightColor), r.Color)
	assert.Equal(t, root.Handle(), r.Parent)

	root.MoveCursor(Vec2{0.5, 0.5})
	assertVec(t, Vec2{0.49, 0.49}, cur.Position())

	next := tree.NewCursor(theme.MustParseColor("#FF0000"))
	require.NoError(t, root.SetCursor(next))
	assert.True(t, cur.Released())
	assert.Same(t, next.Node, root.Cursor())

	require.NoError(t, root.SetCursor(nil))
	assert.True(t, next.Released())
	assert.Nil(t, root.Cursor())
	assert.NotPanics(t, func() { root.MoveCursor(Vec2{0.1, 0.1}) })
}

func TestCursorFollowsTheme(t *testing.T) {
	tree, _ := newTestTree(t)
	root := tree.NewNode(Config{Size: Vec2{1, 1}})
	cur := tree.NewCursor(0)
	require.NoError(t, root.SetCursor(cur))

	big := theme.Dark()
	big.CursorSize = [2]float32{0.05, 0.04}
	root.SetTheme(big)
	assertVec(t, Vec2{0.05, 0.04}, cur.Size())
}

func TestRemovedCursorDetaches(t *testing.T) {
	tree, _ := newTestTree(t)
	root := tree.NewNode(Config{Size: Vec2{1, 1}})
	cur := tree.NewCursor(0)
	require.NoError(t, root.SetCursor(cur))
	cur.Remove()
	assert.Nil(t, root.Cursor())
}

type tooltipFixture struct {
	tree  *Tree
	root  *Node
	host  *Panel
	tip   *Tooltip
	shown int
	hid   int
}

func newTooltipFixture(t *testing.T) *tooltipFixture {
	t.Helper()
	tree, _ := newTestTree(t)
	f := &tooltipFixture{tree: tree}
	f.root = tree.NewNode(Config{Size: Vec2{1, 1}})
	f.host = newSelectable(tree, Vec2{0.2, 0.2})
	require.NoError(t, f.root.AddChild(f.host))
	f.host.SetPosition(Vec2{0.1, 0.3})

	f.tip = tree.NewTooltip("help")
	f.tip.OnShow(func() { f.shown++ })
	f.tip.OnHide(func() { f.hid++ })
	require.NoError(t, f.host.SetTooltip(f.tip))
	return f
}

func TestTooltipFollowsHover(t *testing.T) {
	f := newTooltipFixture(t)
	assert.Same(t, f.tip.Node, f.host.Tooltip())
	assert.False(t, f.tip.Visible())
	assert.Equal(t, "dark-tooltip", f.tip.Theme().Name)

	f.host.Hover()
	f.host.Hover()
	assert.True(t, f.tip.Visible())
	assert.Equal(t, 1, f.shown)
	assertVec(t, Vec2{0.1, 0.5}, f.tip.Position())

	f.host.HoverEnd()
	assert.False(t, f.tip.Visible())
	assert.Equal(t, 1, f.hid)
}

func TestTooltipFromDispatcher(t *testing.T) {
	f := newTooltipFixture(t)
	d := NewDispatcher(f.root)

	d.Update(Pointer{Position: Vec2{0.2, 0.4}})
	assert.True(t, f.tip.Visible())
	d.Update(Pointer{Position: Vec2{0.9, 0.9}})
	assert.False(t, f.tip.Visible())
}

func TestTooltipsDisabled(t *testing.T) {
	f := newTooltipFixture(t)
	f.host.Hover()
	require.True(t, f.tip.Visible())

	f.root.SetTooltipsEnabled(false)
	assert.False(t, f.tip.Visible())
	assert.False(t, f.host.TooltipsEnabled())

	f.host.HoverEnd()
	f.host.Hover()
	assert.False(t, f.tip.Visible())
	assert.Equal(t, 1, f.shown)

	f.root.SetTooltipsEnabled(true)
	f.host.Hover()
	assert.True(t, f.tip.Visible())
}

func TestTooltipFitsText(t *testing.T) {
	f := newTooltipFixture(t)
	assert.InDelta(t, 0.015, f.tip.Label().LineHeight(), delta)
	assertVec(t, Vec2{0.038, 0.023}, f.tip.Size())

	f.tip.SetText("longer help")
	assert.Equal(t, "longer help", f.tip.Label().Text())
	assertVec(t, Vec2{0.0905, 0.023}, f.tip.Size())
}

func TestTooltipRemovedWithHost(t *testing.T) {
	f := newTooltipFixture(t)
	f.host.Remove()
	assert.True(t, f.tip.Released())

	g := newTooltipFixture(t)
	require.NoError(t, g.host.SetTooltip(nil))
	assert.True(t, g.tip.Released())
	assert.Nil(t, g.host.Tooltip())
	assert.NotPanics(t, func() { g.host.Hover() })
}
