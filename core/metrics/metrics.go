package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SyncRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "place_manager_sync_runs_total",
		Help: "Total sync runs by outcome",
	}, []string{"status"})
	SyncActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "place_manager_sync_actions_total",
		Help: "Total reconcile actions applied by type",
	}, []string{"type"})
	SyncDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "place_manager_sync_duration_seconds",
		Help:    "Sync run duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
	})
	SnapshotFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "place_manager_snapshot_fetch_total",
		Help: "Total snapshots obtained by source",
	}, []string{"source"})
	SnapshotFetchFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "place_manager_snapshot_fetch_failures_total",
		Help: "Total failed Overpass requests",
	})
)

// Sync run outcomes.
const (
	StatusSuccess = "success"
	StatusDryRun  = "dry_run"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Snapshot sources.
const (
	SourceCache   = "cache"
	SourceNetwork = "network"
)

func init() {
	prometheus.MustRegister(SyncRunsTotal)
	prometheus.MustRegister(SyncActionsTotal)
	prometheus.MustRegister(SyncDurationSeconds)
	prometheus.MustRegister(SnapshotFetchTotal)
	prometheus.MustRegister(SnapshotFetchFailuresTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
