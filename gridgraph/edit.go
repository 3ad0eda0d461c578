package gridgraph

import "fmt"

// SetObstacle turns the cell at p into an obstacle (on=true) or back into
// an empty cell. Start and end cannot be changed this way.
func (g *Graph) SetObstacle(p Position, on bool) error {
	v, ok := g.At(p)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if v.IsStart() || v.IsEnd() {
		return fmt.Errorf("%w: %s is the %s", ErrCellOccupied, p, v.Type)
	}
	if on {
		v.Type = Obstacle
	} else {
		v.Type = Empty
	}
	v.Distance = Infinity

	return nil
}

// ToggleObstacle flips the cell at p between empty and obstacle. Search
// marks are treated as empty.
func (g *Graph) ToggleObstacle(p Position) error {
	v, ok := g.At(p)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return g.SetObstacle(p, !v.IsObstacle())
}

// MoveStart relocates the start cell to p. The old cell becomes Empty.
func (g *Graph) MoveStart(p Position) error {
	return g.moveEndpoint(Start, p, 0)
}

// MoveEnd relocates the end cell to p. The old cell becomes Empty.
func (g *Graph) MoveEnd(p Position) error {
	return g.moveEndpoint(End, p, Infinity)
}

func (g *Graph) moveEndpoint(t CellType, p Position, dist float64) error {
	dst, ok := g.At(p)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if dst.Type == t {
		return nil
	}
	if dst.IsObstacle() || dst.IsStart() || dst.IsEnd() {
		return fmt.Errorf("%w: %s is the %s", ErrCellOccupied, p, dst.Type)
	}
	if old, found := g.Find(t); found {
		old.Type = Empty
		old.Distance = Infinity
	}
	dst.Type = t
	dst.Distance = dist

	return nil
}
