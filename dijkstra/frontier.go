package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// frontierItem is a vertex queued with the distance it was admitted at.
type frontierItem struct {
	v     *gridgraph.Vertex
	dist  float64
	index int // position in the heap, maintained by Swap
}

// frontierHeap is a min-heap ordered by (dist, vertex ID).
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].v.ID < h[j].v.ID
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// frontier is the set of discovered, not yet extracted vertices. Unlike
// the lazy heap of a batch Dijkstra it holds each vertex at most once, so
// its size is what a renderer actually shows as the search edge.
type frontier struct {
	h    frontierHeap
	byID map[int]*frontierItem
}

func newFrontier() *frontier {
	return &frontier{byID: make(map[int]*frontierItem)}
}

func (f *frontier) Len() int { return f.h.Len() }

// push admits v with key (dist, v.ID).
func (f *frontier) push(v *gridgraph.Vertex, dist float64) {
	item := &frontierItem{v: v, dist: dist}
	heap.Push(&f.h, item)
	f.byID[v.ID] = item
}

// remove drops v if it is queued.
func (f *frontier) remove(v *gridgraph.Vertex) {
	item, ok := f.byID[v.ID]
	if !ok {
		return
	}
	heap.Remove(&f.h, item.index)
	delete(f.byID, v.ID)
}

// peek returns the current minimum without removing it.
func (f *frontier) peek() (*frontierItem, bool) {
	if f.h.Len() == 0 {
		return nil, false
	}
	return f.h[0], true
}

// pop removes and returns the current minimum.
func (f *frontier) pop() *gridgraph.Vertex {
	item := heap.Pop(&f.h).(*frontierItem)
	delete(f.byID, item.v.ID)
	return item.v
}
