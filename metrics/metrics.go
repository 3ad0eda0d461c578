// Package metrics exposes search progress as Prometheus collectors.
//
// Registry implements dijkstra.Observer, so wiring it into an engine is a
// single option:
//
//	reg := metrics.NewRegistry()
//	e := dijkstra.New(dijkstra.WithObserver(reg))
//	http.Handle("/metrics", reg.Handler())
package metrics

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Registry holds all metrics for the application
type Registry struct {
	// Search metrics
	StepsTotal       prometheus.Counter
	RelaxationsTotal prometheus.Counter
	FrontierSize     prometheus.Gauge
	MaxDistance      prometheus.Gauge

	// Run metrics
	RunsTotal    *prometheus.CounterVec
	RunSteps     prometheus.Histogram
	MarkedCells  prometheus.Gauge
	MarkDuration prometheus.Histogram

	registry *prometheus.Registry
	maxSeen  float64
}

var _ dijkstra.Observer = (*Registry)(nil)

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSearchMetrics()
	r.initRunMetrics()
	return r
}

func (r *Registry) initSearchMetrics() {
	r.StepsTotal = promauto.With(r.registry).NewCounter(prometheus.CounterOpts{
		Name: "gridpath_steps_total",
		Help: "Total number of frontier extractions",
	})
	r.RelaxationsTotal = promauto.With(r.registry).NewCounter(prometheus.CounterOpts{
		Name: "gridpath_relaxations_total",
		Help: "Total number of successful edge relaxations",
	})
	r.FrontierSize = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_frontier_size",
		Help: "Number of queued vertices after the last extraction",
	})
	r.MaxDistance = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_max_distance",
		Help: "Largest tentative distance handed out in the current run",
	})
}

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_runs_total",
			Help: "Completed searches by outcome",
		},
		[]string{"outcome"},
	)
	r.RunSteps = promauto.With(r.registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_run_steps",
		Help:    "Extractions per completed search",
		Buckets: prometheus.ExponentialBuckets(8, 4, 8),
	})
	r.MarkedCells = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_marked_cells",
		Help: "Cells painted by the last shortest-path marking",
	})
	r.MarkDuration = promauto.With(r.registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_mark_duration_seconds",
		Help:    "Time spent marking shortest paths",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})
}

// OnExtract implements dijkstra.Observer.
func (r *Registry) OnExtract(_ *gridgraph.Vertex, frontier int) {
	r.StepsTotal.Inc()
	r.FrontierSize.Set(float64(frontier))
}

// OnRelax implements dijkstra.Observer.
func (r *Registry) OnRelax(v *gridgraph.Vertex, _ float64) {
	r.RelaxationsTotal.Inc()
	if v.Distance > r.maxSeen && !math.IsInf(v.Distance, 1) {
		r.maxSeen = v.Distance
		r.MaxDistance.Set(v.Distance)
	}
}

// OnFinish implements dijkstra.Observer.
func (r *Registry) OnFinish(s dijkstra.State, steps int) {
	r.RunsTotal.WithLabelValues(s.String()).Inc()
	r.RunSteps.Observe(float64(steps))
	r.FrontierSize.Set(0)
}

// ResetRun clears the per-run gauges before a new search.
func (r *Registry) ResetRun() {
	r.maxSeen = 0
	r.MaxDistance.Set(0)
	r.FrontierSize.Set(0)
}

// RecordMark records one shortest-path marking pass.
func (r *Registry) RecordMark(marked int, duration time.Duration) {
	r.MarkedCells.Set(float64(marked))
	r.MarkDuration.Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
