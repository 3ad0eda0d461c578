package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/metrics"
)

// session drives successive searches over one grid. Each start gets a
// fresh engine and a run ID that tags every log line of that run.
type session struct {
	g       *gridgraph.Graph
	reg     *metrics.Registry
	logger  *slog.Logger
	engine  *dijkstra.Engine
	runID   string
	started time.Time
	marked  int
}

func newSession(g *gridgraph.Graph, reg *metrics.Registry, logger *slog.Logger) *session {
	return &session{g: g, reg: reg, logger: logger}
}

// start wipes the previous search from the grid and seeds a new one.
func (s *session) start() error {
	s.g.ClearSearch()
	s.reg.ResetRun()
	s.runID = uuid.NewString()
	s.started = time.Now()
	s.marked = 0

	log := s.logger.With("run_id", s.runID)
	s.engine = dijkstra.New(
		dijkstra.WithOnFinish(func(st dijkstra.State, steps int) {
			log.Info("search finished",
				"outcome", st.String(),
				"steps", steps,
				"elapsed", time.Since(s.started),
			)
		}),
		dijkstra.WithObserver(s.reg),
	)
	if err := s.engine.Init(s.g); err != nil {
		return fmt.Errorf("start search: %w", err)
	}
	log.Info("search started", "rows", s.g.Rows(), "cols", s.g.Cols())

	return nil
}

// step advances the running search by one extraction and marks the
// shortest paths as soon as it completes.
func (s *session) step() (bool, error) {
	if s.engine == nil {
		return false, dijkstra.ErrNotInitialized
	}
	if s.engine.State().Finished() {
		return true, nil
	}
	done, err := s.engine.Step()
	if err != nil || !done {
		return done, err
	}
	s.mark()

	return true, nil
}

// run completes the search without pacing.
func (s *session) run(ctx context.Context) error {
	if s.engine == nil {
		return dijkstra.ErrNotInitialized
	}
	if s.engine.State().Finished() {
		return nil
	}
	if err := s.engine.Run(ctx); err != nil {
		return err
	}
	s.mark()

	return nil
}

func (s *session) mark() {
	t0 := time.Now()
	s.marked = s.engine.MarkShortestPaths()
	s.reg.RecordMark(s.marked, time.Since(t0))
	s.logger.Debug("shortest paths marked",
		"run_id", s.runID,
		"cells", s.marked,
		"bifurcations", s.g.Count(gridgraph.Bifurcation),
	)
}

// stop drops the current engine and clears its traces from the grid.
func (s *session) stop() {
	s.engine = nil
	s.marked = 0
	s.g.ClearSearch()
}

// summary is a one-line description of the current run.
func (s *session) summary() string {
	if s.engine == nil {
		if n, ok := bfs.Moves(s.g); ok {
			return fmt.Sprintf("editing: end reachable in %d moves", n)
		}
		return "editing: end walled off"
	}
	st := s.engine.State()
	switch st {
	case dijkstra.Reachable:
		dst, _ := s.engine.Destination()
		return fmt.Sprintf("%s in %d steps, distance %.3f, %d cells marked",
			st, s.engine.Steps(), dst.Distance, s.marked)
	case dijkstra.Unreachable:
		return fmt.Sprintf("%s after %d steps", st, s.engine.Steps())
	}
	return fmt.Sprintf("%s: %d steps, frontier %d", st, s.engine.Steps(), s.engine.FrontierLen())
}

// saveLayout writes the grid's editable layout (no search glyphs) to path.
func saveLayout(g *gridgraph.Graph, path string) error {
	layout := g.Clone()
	layout.ClearSearch()
	return layout.Save(path)
}

// runHeadless searches g to completion and prints the marked grid and
// outcome to w.
func runHeadless(ctx context.Context, s *session, w io.Writer) error {
	if err := s.start(); err != nil {
		return err
	}
	if err := s.run(ctx); err != nil {
		return err
	}
	if err := s.g.Encode(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, s.summary())
	return err
}
