// Package bfs provides breadth-first search over a gridgraph.Graph,
// returning move counts, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing number of moves from a start cell.
//   - Moves are exactly those of gridgraph.Graph.Neighborhoods: eight
//     directions, obstacles excluded, corner-cutting refused.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → moves from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Moves(g) answers the editor's question "is the end reachable, and in
//     how many moves" without touching vertex types or distances.
//
// Why
//
//   - A walled-off end can be reported before a search is started.
//   - It is an independent oracle for the weighted search: the end is
//     Unreachable for Dijkstra exactly when BFS does not reach it.
//
// Determinism
//
//	Neighborhoods yields cells in a fixed compass order (N, NE, E, SE, S,
//	SW, W, NW), so the visit sequence is fully reproducible.
//
// Complexity (V = cells)
//
//   - Time:   O(V) (each cell enqueued once, at most 8 neighbours each)
//   - Memory: O(V) for the queue, Depth and Parent maps
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   stop exploring beyond d moves (>0).
//   - WithOnVisit(fn):   hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartOutOfBounds  if the start position is off the grid.
//   - ErrStartBlocked      if the start position is an obstacle.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
