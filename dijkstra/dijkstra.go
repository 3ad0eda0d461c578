// Package dijkstra implements an incremental, step-able Dijkstra search
// over a gridgraph.Graph.
//
// Each call to Step performs one unit of work: extract the frontier
// vertex with the smallest (distance, ID) key and relax its neighbours.
// A host loop (an animation tick, a test, Run) drives the search to
// completion by calling Step until it reports finished.
//
// Complexity:
//
//   - Step:  O(log V) for the extraction plus O(8 log V) for relaxations.
//   - Full search: O(V log V) over at most V steps, V = passable cells.
//   - Space: O(V) for the frontier index.
package dijkstra

import (
	"context"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Engine holds the mutable state of one search. It mutates the Graph it
// was initialized with in place: cell types (frontier, visited) and
// tentative distances. An Engine is not safe for concurrent use.
type Engine struct {
	g       *gridgraph.Graph
	options Options
	state   State
	front   *frontier
	dst     *gridgraph.Vertex
	steps   int
}

// New returns an uninitialized Engine configured with opts.
func New(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{options: cfg, state: Uninitialized}
}

// Init discards any previous run and prepares a search over g. The first
// start cell in row-major order seeds the frontier at distance 0. A grid
// without a start cell leaves the frontier empty, so the next Step
// completes as Unreachable. Distances left by an earlier search are not
// cleared; call Graph.ClearSearch or Graph.Reset first.
func (e *Engine) Init(g *gridgraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	e.g = g
	e.front = newFrontier()
	e.dst = nil
	e.steps = 0
	e.state = Running

	if start, ok := g.Find(gridgraph.Start); ok {
		start.Distance = 0
		e.front.push(start, 0)
	}

	return nil
}

// Step advances the search by one extraction. It returns true once the
// search is complete; later calls keep returning true without touching
// the graph.
func (e *Engine) Step() (bool, error) {
	switch e.state {
	case Uninitialized:
		return false, ErrNotInitialized
	case Reachable, Unreachable:
		return true, nil
	}

	// 1) Nothing left, or only unreachable leftovers: the end is out of reach.
	top, ok := e.front.peek()
	if !ok || top.dist == gridgraph.Infinity {
		e.finish(Unreachable)
		return true, nil
	}

	// 2) Extract the minimum by (distance, ID).
	cur := e.front.pop()
	e.steps++
	e.options.OnExtract(cur, e.front.Len())

	// 3) Distances pop in non-decreasing order, so the end is final here.
	if cur.IsEnd() {
		e.dst = cur
		e.finish(Reachable)
		return true, nil
	}

	// 4) Everything but the source is painted as visited.
	if !cur.IsStart() {
		e.g.MarkAs(cur, gridgraph.Visited)
	}

	// 5) Relax neighbours.
	for _, n := range e.g.Neighborhoods(cur) {
		if n.IsStart() {
			continue
		}
		tentative := cur.Distance + gridgraph.EuclideanDistance(cur.Pos, n.Pos)
		if tentative >= n.Distance {
			continue
		}
		old := n.Distance
		if n.DistanceIsInfinite() {
			e.mark(n, gridgraph.Frontier)
		} else {
			e.front.remove(n)
			e.mark(n, gridgraph.Visited)
		}
		n.Distance = tentative
		e.front.push(n, tentative)
		e.g.UpdateMaxDistance(tentative)
		e.options.OnRelax(n, old)
	}

	return false, nil
}

// mark paints n unless it is the end cell, which keeps its type so the
// extraction test in Step can recognise it.
func (e *Engine) mark(n *gridgraph.Vertex, t gridgraph.CellType) {
	if n.IsEnd() {
		return
	}
	e.g.MarkAs(n, t)
}

func (e *Engine) finish(s State) {
	e.state = s
	e.options.OnFinish(s, e.steps)
}

// Run calls Step until the search completes or ctx is done. It is the
// non-interactive counterpart of driving Step from a render loop.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		done, err := e.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Destination returns the end vertex once the search has reached it.
func (e *Engine) Destination() (*gridgraph.Vertex, bool) {
	return e.dst, e.dst != nil
}

// Steps returns the number of extractions performed since Init.
func (e *Engine) Steps() int { return e.steps }

// FrontierLen returns the number of queued vertices.
func (e *Engine) FrontierLen() int {
	if e.front == nil {
		return 0
	}
	return e.front.Len()
}

// Graph returns the graph the engine was initialized with, or nil.
func (e *Engine) Graph() *gridgraph.Graph { return e.g }
