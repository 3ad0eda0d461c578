// Package dijkstra runs a step-able single-source shortest-path search on a
// gridgraph.Graph and reconstructs every tied shortest path to the end cell.
//
// Lifecycle:
//
//	Uninitialized ──Init──▶ Running ──Step…──▶ Reachable | Unreachable
//
// Movement model:
//
//	– Eight directions; orthogonal moves cost 1, diagonal moves cost √2
//	  (true Euclidean distance between cell centres).
//	– Obstacles are never entered. A diagonal move is refused when both
//	  orthogonal cells sharing its corner are obstacles.
//
// Step:
//
//	– Extract the frontier vertex with the smallest (distance, ID) key.
//	– If it is the end cell, record it as the destination and finish.
//	– Otherwise paint it Visited (the start keeps its type) and relax its
//	  neighbours. A first-time discovery is painted Frontier; an improved,
//	  already-discovered vertex is re-queued and painted Visited.
//	– An empty frontier finishes the search as Unreachable. A grid with no
//	  start cell, or an enclosed end cell, ends this way; it is not an error.
//
// Path marking:
//
//	– MarkShortestPaths walks back from the destination with an explicit
//	  worklist, painting tied predecessors Shortest and branch points
//	  Bifurcation. It is a no-op when no destination was recorded.
//
// Determinism:
//
//	Vertex IDs follow row-major order and break every distance tie, and
//	neighbours are enumerated in a fixed order, so identical grids produce
//	identical extraction sequences and identical marks.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if Init receives a nil graph.
//	– ErrNotInitialized  if Step or Run is called before Init.
//
// Example usage:
//
//	g, _ := gridgraph.Parse(strings.NewReader("A**\n*X*\n**B\n"))
//	e := dijkstra.New()
//	_ = e.Init(g)
//	for done := false; !done; {
//	    done, _ = e.Step() // one animation frame
//	}
//	e.MarkShortestPaths()
package dijkstra
