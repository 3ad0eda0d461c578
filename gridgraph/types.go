// Package gridgraph defines the cell, vertex and position types of a
// rectangular pathfinding grid.
package gridgraph

import (
	"fmt"
	"math"
)

// Infinity is the distance of a vertex that has not been relaxed yet.
var Infinity = math.Inf(1)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Add returns the component-wise sum p+q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the component-wise difference p-q.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Less orders positions row-major: by Row, then by Col.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// EuclideanDistance returns the straight-line distance between two cells,
// so orthogonal steps cost 1 and diagonal steps cost √2.
func EuclideanDistance(a, b Position) float64 {
	d := a.Sub(b)
	return math.Hypot(float64(d.Row), float64(d.Col))
}

// CellType is the closed set of states a cell can be in.
type CellType uint8

const (
	// Empty is a free, unexplored cell.
	Empty CellType = iota
	// Obstacle is impassable and never appears in a neighbourhood.
	Obstacle
	// Start is the search source. Its distance is always 0.
	Start
	// End is the search target.
	End
	// Frontier marks a cell discovered for the first time by relaxation.
	Frontier
	// Visited marks a cell that was extracted or re-relaxed.
	Visited
	// Shortest marks a cell lying on at least one optimal path.
	Shortest
	// Bifurcation marks a cell where several optimal paths diverge.
	Bifurcation
)

var cellTypeNames = [...]string{
	Empty:       "empty",
	Obstacle:    "obstacle",
	Start:       "start",
	End:         "end",
	Frontier:    "frontier",
	Visited:     "visited",
	Shortest:    "shortest",
	Bifurcation: "bifurcation",
}

func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// Vertex is a single grid cell.
//
// ID is assigned once, in row-major scan order, and only serves as a
// deterministic tie-breaker between equal distances.
type Vertex struct {
	ID       int
	Type     CellType
	Pos      Position
	Distance float64
}

// IsStart reports whether v is the search source.
func (v *Vertex) IsStart() bool { return v.Type == Start }

// IsEnd reports whether v is the search target.
func (v *Vertex) IsEnd() bool { return v.Type == End }

// IsObstacle reports whether v is impassable.
func (v *Vertex) IsObstacle() bool { return v.Type == Obstacle }

// IsShortest reports whether v was painted by path marking.
func (v *Vertex) IsShortest() bool {
	return v.Type == Shortest || v.Type == Bifurcation
}

// DistanceIsInfinite reports whether v has never been relaxed.
func (v *Vertex) DistanceIsInfinite() bool { return math.IsInf(v.Distance, 1) }

// reset restores a vertex to its pre-search state. Start and End keep
// their type; everything else becomes Empty.
func (v *Vertex) reset() {
	switch v.Type {
	case Start:
		v.Distance = 0
	case End:
		v.Distance = Infinity
	default:
		v.Type = Empty
		v.Distance = Infinity
	}
}

// clearSearch drops search marks but keeps obstacles and endpoints.
func (v *Vertex) clearSearch() {
	switch v.Type {
	case Start:
		v.Distance = 0
	case Obstacle, End, Empty:
		v.Distance = Infinity
	default:
		v.Type = Empty
		v.Distance = Infinity
	}
}

// Graph is a rectangular grid of vertices addressed by Position.
// A Graph is not safe for concurrent use; callers sequence the edit,
// search and marking phases themselves.
type Graph struct {
	cells       [][]Vertex
	maxDistance float64
}

// neighborOffsets lists the eight moves clockwise from north:
// N, NE, E, SE, S, SW, W, NW. The order is fixed so that tie-breaking
// during traversal is reproducible.
var neighborOffsets = [8]Position{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
}
