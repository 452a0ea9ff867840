package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// sync jobs. Job label values: events, daily_messages, dining.
type Metrics struct {
	RunsTotal   *prometheus.CounterVec // labels: job, outcome={success,error}
	RunDuration *prometheus.HistogramVec
	SyncRunning *prometheus.GaugeVec // 1 while the labeled job has a run in flight
	LastSuccess *prometheus.GaugeVec // unix seconds of the last successful run

	EventsUpserted prometheus.Counter
	EventsDeleted  prometheus.Counter
	RecordsSkipped *prometheus.CounterVec // labels: job, reason

	DiningLocationFailures prometheus.Counter
}

// NewMetrics creates and registers all sync metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campus_sync",
			Name:      "runs_total",
			Help:      "Completed sync runs by job and outcome.",
		}, []string{"job", "outcome"}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campus_sync",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-persist run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"job"}),
		SyncRunning: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "campus_sync",
			Name:      "sync_running",
			Help:      "1 while the named job has a run in flight, 0 otherwise.",
		}, []string{"job"}),
		LastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "campus_sync",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run per job.",
		}, []string{"job"}),
		EventsUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campus_sync",
			Name:      "events_upserted_total",
			Help:      "Total event documents written to the store.",
		}),
		EventsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campus_sync",
			Name:      "events_deleted_total",
			Help:      "Total stale event documents swept from the store.",
		}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campus_sync",
			Name:      "records_skipped_total",
			Help:      "Upstream records dropped during normalization, by reason.",
		}, []string{"job", "reason"}),
		DiningLocationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campus_sync",
			Name:      "dining_location_failures_total",
			Help:      "Per-location dining fetches that failed and fell back.",
		}),
	}

	prometheus.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.SyncRunning,
		m.LastSuccess,
		m.EventsUpserted,
		m.EventsDeleted,
		m.RecordsSkipped,
		m.DiningLocationFailures,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunsTotal:              prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "campus_sync", Name: "runs_total"}, []string{"job", "outcome"}),
		RunDuration:            prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "campus_sync", Name: "run_duration_seconds"}, []string{"job"}),
		SyncRunning:            prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "campus_sync", Name: "sync_running"}, []string{"job"}),
		LastSuccess:            prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "campus_sync", Name: "last_success_timestamp_seconds"}, []string{"job"}),
		EventsUpserted:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "campus_sync", Name: "events_upserted_total"}),
		EventsDeleted:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "campus_sync", Name: "events_deleted_total"}),
		RecordsSkipped:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "campus_sync", Name: "records_skipped_total"}, []string{"job", "reason"}),
		DiningLocationFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "campus_sync", Name: "dining_location_failures_total"}),
	}
}
