package finder

import (
	"container/heap"

	"github.com/voxpath/voxpath/grid"
)

// openItem is one open-list entry: the node, its priority key (the node's
// f value at insertion or last update), an insertion sequence number for
// tie-breaking, and the heap index used for in-place priority updates.
type openItem struct {
	node  *grid.Node
	key   float64
	seq   uint64
	index int
}

// openList is a min-heap of opened-but-not-closed nodes ordered by key.
// Ties break by most-recently-inserted-or-updated first: with the grid's
// fixed neighbor enumeration this makes pop order, and therefore paths
// and operation counts, reproducible.
//
// Priorities are updated in place via the stored heap index (the node's
// open-list membership handle) rather than lazily re-pushed, so a node
// appears at most once.
type openList struct {
	items  []*openItem
	handle map[*grid.Node]*openItem
	seq    uint64
}

func newOpenList() *openList {
	return &openList{handle: make(map[*grid.Node]*openItem)}
}

// Len returns the number of open nodes.
func (ol *openList) Len() int { return len(ol.items) }

// Less orders by key ascending; equal keys pop the newest entry first.
func (ol *openList) Less(i, j int) bool {
	if ol.items[i].key != ol.items[j].key {
		return ol.items[i].key < ol.items[j].key
	}

	return ol.items[i].seq > ol.items[j].seq
}

// Swap swaps two entries and keeps their heap indices current.
func (ol *openList) Swap(i, j int) {
	ol.items[i], ol.items[j] = ol.items[j], ol.items[i]
	ol.items[i].index = i
	ol.items[j].index = j
}

// Push appends an entry; called by container/heap only.
func (ol *openList) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(ol.items)
	ol.items = append(ol.items, item)
}

// Pop removes the last entry; called by container/heap only.
func (ol *openList) Pop() interface{} {
	old := ol.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	ol.items = old[:n-1]

	return item
}

// push opens a node, keyed by its current f value.
func (ol *openList) push(n *grid.Node) {
	ol.seq++
	item := &openItem{node: n, key: n.F, seq: ol.seq}
	ol.handle[n] = item
	heap.Push(ol, item)
}

// update re-keys an already-open node after its f value improved and
// restores the heap invariant around it.
func (ol *openList) update(n *grid.Node) {
	item, ok := ol.handle[n]
	if !ok {
		ol.push(n)
		return
	}
	ol.seq++
	item.key = n.F
	item.seq = ol.seq
	heap.Fix(ol, item.index)
}

// popNode removes and returns the best open node.
func (ol *openList) popNode() *grid.Node {
	item := heap.Pop(ol).(*openItem)
	delete(ol.handle, item.node)

	return item.node
}

// minKey returns the best key currently open. Callers must check Len first.
func (ol *openList) minKey() float64 {
	return ol.items[0].key
}
