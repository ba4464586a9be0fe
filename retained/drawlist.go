package retained

import (
	"slices"

	"github.com/agiangrant/immersive/scene"
)

// DrawEntry is one drawable as the renderer will see it.
type DrawEntry struct {
	Node       *Node
	Handle     scene.Handle
	Order      int
	Stencil    scene.StencilFunc
	ColorWrite bool
	// Visible is false when the node or anything it hangs off is hidden.
	Visible bool
}

// CollectDrawList returns every drawable under root, including overlays,
// pages, cursors and tooltips, sorted by draw order. Entries with equal
// order keep tree order.
func CollectDrawList(root Widget) []DrawEntry {
	var out []DrawEntry
	collectDraw(root.AsNode(), true, &out)
	slices.SortStableFunc(out, func(a, b DrawEntry) int { return a.Order - b.Order })
	return out
}

func collectDraw(n *Node, visible bool, out *[]DrawEntry) {
	if n == nil || n.released {
		return
	}
	visible = visible && n.visible
	for _, d := range n.drawables {
		*out = append(*out, DrawEntry{
			Node:       n,
			Handle:     d.handle,
			Order:      d.order,
			Stencil:    d.stencil,
			ColorWrite: n.colorWrite,
			Visible:    visible,
		})
	}
	for _, id := range n.children {
		collectDraw(n.tree.Node(id), visible, out)
	}
	for _, a := range n.attachments() {
		collectDraw(a, visible, out)
	}
}

// VisibleDrawList is CollectDrawList without hidden entries.
func VisibleDrawList(root Widget) []DrawEntry {
	return slices.DeleteFunc(CollectDrawList(root), func(e DrawEntry) bool { return !e.Visible })
}
