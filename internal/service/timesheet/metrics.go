package timesheet

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks timesheet aggregation. A nil *Metrics records nothing.
type Metrics struct {
	rowsAggregated *prometheus.CounterVec
	exports        *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rowsAggregated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hris",
			Subsystem: "timesheet",
			Name:      "rows_aggregated_total",
			Help:      "Timesheet rows produced by punch aggregation.",
		}, []string{"view"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hris",
			Subsystem: "timesheet",
			Name:      "exports_total",
			Help:      "CSV timesheet exports rendered.",
		}, []string{"view"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hris",
			Subsystem: "timesheet",
			Name:      "build_duration_seconds",
			Help:      "Time spent loading and aggregating a timesheet.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.rowsAggregated, m.exports, m.duration)
	return m
}

func (m *Metrics) observeRows(view string, n int) {
	if m == nil {
		return
	}
	m.rowsAggregated.WithLabelValues(view).Add(float64(n))
}

func (m *Metrics) observeExport(view string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(view).Inc()
}

func (m *Metrics) observeDuration(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
