package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *gridgraph.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, following the same moves
// as gridgraph.Graph.Neighborhoods (corner rule included).
// Returns ErrGraphNil, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any error returned by OnVisit.
func BFS(g *gridgraph.Graph, start gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	v, ok := g.At(start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if v.IsObstacle() {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make(map[gridgraph.Position]int, n),
			Parent: make(map[gridgraph.Position]gridgraph.Position, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{pos: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.pos, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	cur, _ := w.graph.At(item.pos)
	for _, nbr := range w.graph.Neighborhoods(cur) {
		if _, seen := w.res.Depth[nbr.Pos]; seen {
			continue
		}
		w.res.Depth[nbr.Pos] = next
		w.res.Parent[nbr.Pos] = item.pos
		w.queue = append(w.queue, queueItem{pos: nbr.Pos, depth: next})
	}
}

// Moves returns the fewest moves from g's start cell to its end cell, and
// false when either endpoint is missing or the end is walled off.
func Moves(g *gridgraph.Graph) (int, bool) {
	if g == nil {
		return 0, false
	}
	start, ok := g.Find(gridgraph.Start)
	if !ok {
		return 0, false
	}
	end, ok := g.Find(gridgraph.End)
	if !ok {
		return 0, false
	}
	res, err := BFS(g, start.Pos)
	if err != nil {
		return 0, false
	}
	d, ok := res.Depth[end.Pos]
	return d, ok
}
