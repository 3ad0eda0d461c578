// Command gridpath animates a step-by-step Dijkstra search over a grid
// in the terminal and marks every shortest path it finds.
//
// Usage:
//
//	gridpath [-config gridpath.yaml] [-i] [-headless] [-out grid.txt] [grid.txt]
//
// Without -i the grid comes from the positional argument or grid.path in
// the config file. With -i (or when neither names a file) an empty
// grid.rows × grid.cols grid is created for editing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/metrics"
)

var (
	configPath  = flag.String("config", "", "YAML settings file")
	interactive = flag.Bool("i", false, "start from an empty grid of grid.rows x grid.cols")
	headless    = flag.Bool("headless", false, "search without the terminal UI and print the marked grid")
	outPath     = flag.String("out", "grid.txt", "file the grid layout is saved to")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if flag.NArg() > 0 {
		cfg.Grid.Path = flag.Arg(0)
	}

	logger, closeLog, err := newLogger(cfg, *headless)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := loadGrid(cfg.Grid, *interactive)
	if err != nil {
		return err
	}
	logger.Info("grid ready", "rows", g.Rows(), "cols", g.Cols(), "obstacles", g.Count(gridgraph.Obstacle))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	if cfg.Metrics.Addr != "" {
		shutdown := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer shutdown()
	}

	sess := newSession(g, reg, logger)
	if *headless {
		if err = runHeadless(ctx, sess, os.Stdout); err != nil {
			return err
		}
		if *outPath != "" && isFlagSet("out") {
			return saveLayout(g, *outPath)
		}
		return nil
	}

	p := tea.NewProgram(newModel(sess, cfg, *outPath, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI: %w", err)
	}

	return nil
}

// loadGrid reads gc.Path, or builds an empty grid when asked to or when
// no path is configured.
func loadGrid(gc config.GridConfig, empty bool) (*gridgraph.Graph, error) {
	if empty || gc.Path == "" {
		return gridgraph.BuildEmpty(gc.Rows, gc.Cols)
	}
	return gridgraph.Load(gc.Path)
}

// newLogger returns a JSON slog logger. The UI owns the terminal, so
// without a log file the interactive mode discards logs and the headless
// mode writes them to stderr.
func newLogger(cfg config.Config, headless bool) (*slog.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	case headless:
		w = os.Stderr
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	return logger, closeFn, nil
}

// serveMetrics exposes reg on addr until the returned function is called.
func serveMetrics(addr string, reg *metrics.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
