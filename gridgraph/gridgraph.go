package gridgraph

// BuildEmpty allocates a rows×cols grid of Empty vertices with the start
// at (0,0) and the end at (0,1). A single-column grid puts the end at
// (1,0) instead. Returns ErrEmptyGrid if the grid cannot hold both
// endpoints.
// Complexity: O(rows×cols).
func BuildEmpty(rows, cols int) (*Graph, error) {
	if rows <= 0 || cols <= 0 || rows*cols < 2 {
		return nil, ErrEmptyGrid
	}
	g := &Graph{cells: make([][]Vertex, rows)}
	id := 0
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Vertex, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = Vertex{ID: id, Type: Empty, Pos: Position{Row: r, Col: c}, Distance: Infinity}
			id++
		}
	}
	g.cells[0][0].Type = Start
	g.cells[0][0].Distance = 0
	if cols > 1 {
		g.cells[0][1].Type = End
	} else {
		g.cells[1][0].Type = End
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Graph) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Graph) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Cells exposes the row/column matrix for read-only consumers such as
// renderers. Callers must not modify the returned vertices.
func (g *Graph) Cells() [][]Vertex { return g.cells }

// InBounds reports whether p lies inside the grid.
func (g *Graph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < len(g.cells[p.Row])
}

// At returns the vertex at p, or false if p is out of bounds.
func (g *Graph) At(p Position) (*Vertex, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[p.Row][p.Col], true
}

// Find returns the first vertex of type t in row-major order.
func (g *Graph) Find(t CellType) (*Vertex, bool) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Type == t {
				return &g.cells[r][c], true
			}
		}
	}
	return nil, false
}

// Count returns the number of vertices of type t.
func (g *Graph) Count(t CellType) int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Type == t {
				n++
			}
		}
	}
	return n
}

// Neighborhoods returns the passable neighbours of v in the fixed order
// N, NE, E, SE, S, SW, W, NW. Out-of-bounds cells and obstacles are
// skipped, as is a diagonal whose two corner cells are both obstacles.
// Complexity: O(1).
func (g *Graph) Neighborhoods(v *Vertex) []*Vertex {
	out := make([]*Vertex, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n, ok := g.At(v.Pos.Add(d))
		if !ok || n.IsObstacle() {
			continue
		}
		if d.Row != 0 && d.Col != 0 && !g.cornerOpen(v.Pos, d) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// cornerOpen reports whether the diagonal move from p by d keeps at least
// one of the two orthogonal corner cells free.
func (g *Graph) cornerOpen(p, d Position) bool {
	a, okA := g.At(Position{Row: p.Row + d.Row, Col: p.Col})
	b, okB := g.At(Position{Row: p.Row, Col: p.Col + d.Col})
	return (okA && !a.IsObstacle()) || (okB && !b.IsObstacle())
}

// MarkAs sets the type of the vertex at v's position. Distance is left
// untouched. Positions outside the grid are ignored.
func (g *Graph) MarkAs(v *Vertex, t CellType) {
	if cell, ok := g.At(v.Pos); ok {
		cell.Type = t
	}
}

// UpdateMaxDistance raises the tracked maximum to d if d is larger.
func (g *Graph) UpdateMaxDistance(d float64) {
	if d > g.maxDistance {
		g.maxDistance = d
	}
}

// MaxDistance returns the largest distance passed to UpdateMaxDistance
// since construction or the last Reset.
func (g *Graph) MaxDistance() float64 { return g.maxDistance }

// Reset restores every vertex other than start and end to Empty with
// infinite distance, including obstacles. Start keeps distance 0, end
// returns to Infinity, and MaxDistance goes back to 0.
func (g *Graph) Reset() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].reset()
		}
	}
	g.maxDistance = 0
}

// ClearSearch removes the marks left by a search and by path marking
// while keeping obstacles, start and end in place.
func (g *Graph) ClearSearch() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].clearSearch()
		}
	}
	g.maxDistance = 0
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Graph) Clone() *Graph {
	cp := &Graph{cells: make([][]Vertex, len(g.cells)), maxDistance: g.maxDistance}
	for r, row := range g.cells {
		cp.cells[r] = make([]Vertex, len(row))
		copy(cp.cells[r], row)
	}
	return cp
}
