package sync

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultWritten   = "written"
	resultUnchanged = "unchanged"
	resultDryRun    = "dry_run"
	resultError     = "error"

	skipCooldown = "cooldown"
	skipOwnWrite = "own_write"
	skipInFlight = "in_flight"
)

// Metrics holds Prometheus metrics for document sync.
//
// Metrics:
//   - taskmeta_documents_processed_total{result}
//   - taskmeta_updates_emitted_total
//   - taskmeta_process_duration_seconds
//   - taskmeta_notifications_skipped_total{reason}
type Metrics struct {
	DocumentsTotal *prometheus.CounterVec
	UpdatesTotal   prometheus.Counter
	Duration       prometheus.Histogram
	SkippedTotal   *prometheus.CounterVec
}

// NewMetrics registers the sync metrics on reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DocumentsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskmeta_documents_processed_total",
				Help: "Total number of document passes by result",
			},
			[]string{"result"},
		),
		UpdatesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "taskmeta_updates_emitted_total",
			Help: "Total number of frontmatter updates resolved",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskmeta_process_duration_seconds",
			Help:    "Duration of a document pass in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		SkippedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskmeta_notifications_skipped_total",
				Help: "Total number of change notifications ignored by reason",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) observe(result string, updates int, d time.Duration) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(result).Inc()
	m.UpdatesTotal.Add(float64(updates))
	if d > 0 {
		m.Duration.Observe(d.Seconds())
	}
}

func (m *Metrics) skip(reason string) {
	if m == nil {
		return
	}
	m.SkippedTotal.WithLabelValues(reason).Inc()
}

func resultOf(out ProcessOutput, err error, dryRun bool) string {
	switch {
	case err != nil:
		return resultError
	case out.Written:
		return resultWritten
	case out.Changed && dryRun:
		return resultDryRun
	}
	return resultUnchanged
}
