package metrics_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/metrics"
)

func runSearch(t *testing.T, reg *metrics.Registry, grid string) *dijkstra.Engine {
	t.Helper()
	g, err := gridgraph.Parse(strings.NewReader(grid))
	require.NoError(t, err)
	e := dijkstra.New(dijkstra.WithObserver(reg))
	require.NoError(t, e.Init(g))
	require.NoError(t, e.Run(context.Background()))
	return e
}

func TestRegistry_CountsSearchEvents(t *testing.T) {
	reg := metrics.NewRegistry()
	e := runSearch(t, reg, "A**B\n")

	assert.Equal(t, float64(e.Steps()), testutil.ToFloat64(reg.StepsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(reg.RelaxationsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(reg.MaxDistance))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.FrontierSize), "cleared when the run finishes")
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RunsTotal.WithLabelValues("reachable")))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.RunsTotal.WithLabelValues("unreachable")))
}

func TestRegistry_AccumulatesAcrossRuns(t *testing.T) {
	reg := metrics.NewRegistry()
	runSearch(t, reg, "A**B\n")
	reg.ResetRun()
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.MaxDistance))

	runSearch(t, reg, "AXB\n")
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RunsTotal.WithLabelValues("reachable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RunsTotal.WithLabelValues("unreachable")))
	// Four extractions in the first run, one (the start) in the second.
	assert.Equal(t, 5.0, testutil.ToFloat64(reg.StepsTotal))
	assert.Equal(t, 2, testutil.CollectAndCount(reg.RunsTotal))
}

func TestRegistry_RecordMark(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.RecordMark(7, 3*time.Millisecond)
	assert.Equal(t, 7.0, testutil.ToFloat64(reg.MarkedCells))
	assert.Equal(t, 1, testutil.CollectAndCount(reg.MarkDuration))
}

func TestRegistry_Handler(t *testing.T) {
	reg := metrics.NewRegistry()
	runSearch(t, reg, "A*\n*B\n")

	srv := httptest.NewServer(reg.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "gridpath_steps_total")
	assert.Contains(t, string(body), `gridpath_runs_total{outcome="reachable"} 1`)
	assert.NotNil(t, reg.GetPrometheusRegistry())
}
