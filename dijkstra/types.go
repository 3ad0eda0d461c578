// Package dijkstra defines the states, hooks and options of the
// incremental grid search engine.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that Init was called with a nil *gridgraph.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNotInitialized indicates that Step or Run was called before Init.
	ErrNotInitialized = errors.New("dijkstra: engine not initialized")
)

// State is the lifecycle of an Engine.
type State int

const (
	// Uninitialized is the state before the first Init.
	Uninitialized State = iota
	// Running means Step still has work to do.
	Running
	// Reachable means the end cell was extracted and recorded.
	Reachable
	// Unreachable means the frontier ran dry without reaching the end.
	Unreachable
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	}
	return "unknown"
}

// Finished reports whether s is one of the completed states.
func (s State) Finished() bool { return s == Reachable || s == Unreachable }

// Observer receives engine events. All methods are called synchronously
// from inside Step.
type Observer interface {
	// OnExtract is called with the vertex popped from the frontier and the
	// frontier size after the pop.
	OnExtract(v *gridgraph.Vertex, frontier int)
	// OnRelax is called after v's distance dropped from old to v.Distance.
	OnRelax(v *gridgraph.Vertex, old float64)
	// OnFinish is called once per run, when the engine completes.
	OnFinish(s State, steps int)
}

// Options configures an Engine.
//
// OnExtract: called for every frontier extraction.
// OnRelax:   called for every successful relaxation.
// OnFinish:  called once when a run completes.
type Options struct {
	OnExtract func(v *gridgraph.Vertex, frontier int)
	OnRelax   func(v *gridgraph.Vertex, old float64)
	OnFinish  func(s State, steps int)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExtract: func(*gridgraph.Vertex, int) {},
		OnRelax:   func(*gridgraph.Vertex, float64) {},
		OnFinish:  func(State, int) {},
	}
}

// WithOnExtract registers a callback run on each extraction.
func WithOnExtract(fn func(v *gridgraph.Vertex, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExtract = fn
		}
	}
}

// WithOnRelax registers a callback run on each successful relaxation.
func WithOnRelax(fn func(v *gridgraph.Vertex, old float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnFinish registers a callback run when a search completes.
func WithOnFinish(fn func(s State, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithObserver wires all three hooks to obs. Hooks set by earlier options
// are chained so that both fire.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			return
		}
		prevExtract, prevRelax, prevFinish := o.OnExtract, o.OnRelax, o.OnFinish
		o.OnExtract = func(v *gridgraph.Vertex, n int) {
			prevExtract(v, n)
			obs.OnExtract(v, n)
		}
		o.OnRelax = func(v *gridgraph.Vertex, old float64) {
			prevRelax(v, old)
			obs.OnRelax(v, old)
		}
		o.OnFinish = func(s State, steps int) {
			prevFinish(s, steps)
			obs.OnFinish(s, steps)
		}
	}
}
