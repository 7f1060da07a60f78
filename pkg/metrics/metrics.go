package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors of the service.
type Metrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Scheduling engine
	MutationsTotal      *prometheus.CounterVec
	RejectionsTotal     *prometheus.CounterVec
	SlotsGeneratedTotal prometheus.Counter
	SnapshotFailures    prometheus.Counter
}

// New registers and returns the service collectors.
// serviceName becomes the constant "service" label.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		MutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_mutations_total",
			Help:        "Calendar mutations by action and result (accepted/rejected)",
			ConstLabels: constLabels,
		}, []string{"action", "result"}),

		RejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "validation_rejections_total",
			Help:        "Booking validation rejections by check",
			ConstLabels: constLabels,
		}, []string{"check"}),

		SlotsGeneratedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slots_generated_total",
			Help:        "Static service slots materialized from templates",
			ConstLabels: constLabels,
		}),

		SnapshotFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "state_snapshot_failures_total",
			Help:        "Failed state snapshot writes to the persistence backend",
			ConstLabels: constLabels,
		}),
	}
}

// RecordMutation implements the calendar store's metrics hook.
func (m *Metrics) RecordMutation(action, result string) {
	m.MutationsTotal.WithLabelValues(action, result).Inc()
}

// RecordRejection implements the validator's metrics hook.
func (m *Metrics) RecordRejection(check string) {
	m.RejectionsTotal.WithLabelValues(check).Inc()
}

// RecordSlotsGenerated counts freshly materialized slots.
func (m *Metrics) RecordSlotsGenerated(n int) {
	m.SlotsGeneratedTotal.Add(float64(n))
}

// RecordSnapshotFailure counts a failed fire-and-forget persist.
func (m *Metrics) RecordSnapshotFailure() {
	m.SnapshotFailures.Inc()
}
