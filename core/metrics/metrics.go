package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requirement_monitor_runs_total",
			Help: "Total number of file reconciliation runs",
		},
		[]string{"status"},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "requirement_monitor_run_duration_seconds",
			Help:    "Duration of file reconciliation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	snapshotEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "requirement_monitor_snapshot_entries",
			Help: "Number of paths in the last saved snapshot",
		},
	)

	actionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requirement_monitor_actions_total",
			Help: "Record actions executed by reconciliation runs",
		},
		[]string{"type", "status"},
	)

	skippedEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "requirement_monitor_skipped_entries_total",
			Help: "Entries skipped because they vanished or could not be stat'ed",
		},
	)
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusDryRun  = "dry_run"
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRun records the outcome and duration of one reconciliation run.
func RecordRun(status string, duration time.Duration) {
	runsTotal.WithLabelValues(status).Inc()
	runDuration.Observe(duration.Seconds())
}

// RecordSnapshot sets the size of the last saved snapshot.
func RecordSnapshot(entries int) {
	snapshotEntries.Set(float64(entries))
}

// RecordAction counts one executed record action.
func RecordAction(actionType string, success bool) {
	status := StatusSuccess
	if !success {
		status = StatusFailure
	}
	actionsTotal.WithLabelValues(actionType, status).Inc()
}

// RecordSkipped counts entries skipped during enumeration or inode resolution.
func RecordSkipped(n int) {
	if n > 0 {
		skippedEntries.Add(float64(n))
	}
}
