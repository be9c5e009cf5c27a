package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Reconciliation metrics
	RunsTotal     *prometheus.CounterVec
	RunDuration   prometheus.Histogram
	RowsByVerdict *prometheus.CounterVec
	ParseWarnings prometheus.Counter

	// Sheet cache metrics
	SheetCacheHits   prometheus.Counter
	SheetCacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tbrecon_runs_total",
				Help: "Total reconciliation runs by outcome",
			},
			[]string{"status"},
		),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tbrecon_run_duration_seconds",
			Help:    "Duration of reconciliation runs",
			Buckets: prometheus.DefBuckets,
		}),
		RowsByVerdict: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tbrecon_rows_total",
				Help: "Total reconciliation rows by verdict",
			},
			[]string{"verdict"},
		),
		ParseWarnings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tbrecon_parse_warnings_total",
			Help: "Total skipped unparseable ledger lines",
		}),
		SheetCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tbrecon_sheet_cache_hits_total",
			Help: "Total reference sheet cache hits",
		}),
		SheetCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tbrecon_sheet_cache_misses_total",
			Help: "Total reference sheet cache misses",
		}),
	}
}
