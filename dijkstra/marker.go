package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// tieTolerance absorbs the rounding difference between sums of 1 and √2
// accumulated in different orders along equally long routes.
const tieTolerance = 1e-9

func sameDistance(a, b float64) bool {
	return math.Abs(a-b) <= tieTolerance*math.Max(1, math.Abs(b))
}

// MarkShortestPaths paints every optimal route back from the recorded
// destination. It does nothing if the search did not reach the end. It
// returns the number of cells painted Shortest or Bifurcation.
func (e *Engine) MarkShortestPaths() int {
	if e.g == nil || e.dst == nil {
		return 0
	}
	return MarkShortestPaths(e.g, e.dst)
}

// MarkShortestPaths walks backwards from dst towards the start using an
// explicit worklist.
//
// For each vertex v the predecessors are the neighbours whose distance
// equals the smallest distance in v's neighbourhood. Every predecessor
// that is neither an endpoint nor already painted becomes Shortest and is
// queued. When v has more than one predecessor it is painted Bifurcation,
// unless v is an endpoint. The result is the union of tied paths, a DAG
// anchored at dst.
//
// Complexity: O(V) vertices, each expanded at most once.
func MarkShortestPaths(g *gridgraph.Graph, dst *gridgraph.Vertex) int {
	if g == nil || dst == nil {
		return 0
	}
	marked := 0
	stack := []*gridgraph.Vertex{dst}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.IsStart() {
			continue
		}

		neigh := g.Neighborhoods(v)
		nearest := gridgraph.Infinity
		for _, n := range neigh {
			if n.Distance < nearest {
				nearest = n.Distance
			}
		}
		// No neighbour closer to the start: nothing to walk back to.
		if math.IsInf(nearest, 1) || nearest >= v.Distance {
			continue
		}

		preds := 0
		for _, n := range neigh {
			if !sameDistance(n.Distance, nearest) {
				continue
			}
			preds++
			if n.IsStart() || n.IsEnd() || n.IsShortest() {
				continue
			}
			g.MarkAs(n, gridgraph.Shortest)
			marked++
			stack = append(stack, n)
		}
		// v was counted when it was queued; only its colour changes here.
		if preds > 1 && !v.IsEnd() {
			g.MarkAs(v, gridgraph.Bifurcation)
		}
	}

	return marked
}
