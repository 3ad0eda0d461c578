// Package gridgraph models a bounded 2D pathfinding grid as a graph of
// vertices, one per cell.
//
// What:
//
//   - Graph owns a rectangular [][]Vertex addressed by Position{Row, Col}.
//   - Each Vertex carries a stable ID (row-major), a CellType and a
//     tentative distance (Infinity until relaxed).
//   - Neighborhoods enumerates up to eight moves and enforces the
//     corner-cutting rule: a diagonal move is allowed only if at least one
//     of the two orthogonal cells sharing the corner is not an obstacle.
//   - MaxDistance tracks the largest distance handed out during a search,
//     for gradient rendering.
//
// Text format:
//
//	*  empty
//	X  obstacle
//	A  start (at most one)
//	B  end   (at most one)
//
// Encode additionally emits '.' visited, 'f' frontier, 'o' shortest and
// '#' bifurcation so an in-progress search can be dumped. Parse accepts
// only the four base glyphs.
//
// Complexity:
//
//   - Parse, BuildEmpty, Reset, Clone: O(W×H) time and memory.
//   - Neighborhoods, At, MarkAs:       O(1).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed shape.
//   - ErrDuplicateStart, ErrDuplicateEnd, ErrUnknownGlyph: malformed cells.
//   - ErrOutOfBounds, ErrCellOccupied: rejected edits.
package gridgraph
