package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGraphNil is returned for a nil *gridgraph.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfBounds is returned when the start position is off the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position out of bounds")

	// ErrStartBlocked is returned when the start position is an obstacle.
	ErrStartBlocked = errors.New("bfs: start position is an obstacle")

	// ErrOptionViolation is returned for a malformed Option.
	ErrOptionViolation = errors.New("bfs: invalid option")
)

// Options tunes a walk. Invalid settings are remembered and reported by
// BFS as ErrOptionViolation.
type Options struct {
	// Ctx is checked once per dequeued cell.
	Ctx context.Context

	// OnVisit sees every cell in visit order together with its move
	// count. A non-nil error ends the walk.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth > 0 leaves cells farther than MaxDepth moves unexplored.
	MaxDepth int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context, no depth limit and a
// no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(gridgraph.Position, int) error { return nil },
	}
}

// WithContext cancels the walk when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to d moves; 0 means unbounded and a
// negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is what a walk discovered.
type Result struct {
	Order  []gridgraph.Position                      // cells in visit order
	Depth  map[gridgraph.Position]int                // moves from the start
	Parent map[gridgraph.Position]gridgraph.Position // BFS tree, start excluded
}

// Reached reports whether p was visited.
func (r *Result) Reached(p gridgraph.Position) bool {
	_, ok := r.Depth[p]
	return ok
}

// PathTo returns one fewest-moves route from the start to dest, both ends
// included.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %s not reached", dest)
	}
	path := make([]gridgraph.Position, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
