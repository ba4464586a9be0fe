package retained

import "sync"

// ============================================================================
// Node Slice Pooling
// ============================================================================
//
// Layout, depth and hit testing copy child lists on every pass. The pools
// below keep those copies off the heap for typical trees.
//
// Usage:
//   nodes := acquireNodeSlice(len(n.children))
//   ... use nodes ...
//   releaseNodeSlice(nodes)

var nodeSlicePool = sync.Pool{
	New: func() any {
		return make([]*Node, 0, 16)
	},
}

// acquireNodeSlice returns an empty slice with room for at least n nodes.
func acquireNodeSlice(n int) []*Node {
	slice := nodeSlicePool.Get().([]*Node)
	if cap(slice) < n {
		nodeSlicePool.Put(slice[:0])
		return make([]*Node, 0, n*2)
	}
	return slice[:0]
}

// releaseNodeSlice returns a slice to the pool. It must not be used after.
func releaseNodeSlice(slice []*Node) {
	if slice == nil {
		return
	}
	clear(slice[:cap(slice)])
	if cap(slice) <= 256 {
		nodeSlicePool.Put(slice[:0])
	}
}

var itemSlicePool = sync.Pool{
	New: func() any {
		return make([]Item, 0, 16)
	},
}

func acquireItemSlice(n int) []Item {
	slice := itemSlicePool.Get().([]Item)
	if cap(slice) < n {
		itemSlicePool.Put(slice[:0])
		return make([]Item, 0, n*2)
	}
	return slice[:0]
}

func releaseItemSlice(slice []Item) {
	if slice != nil && cap(slice) <= 256 {
		itemSlicePool.Put(slice[:0])
	}
}
