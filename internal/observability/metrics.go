// Package observability provides Prometheus metrics for the analyzer.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes.
const (
	OutcomeOK                 = "ok"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeMissingPrimaryInfo = "missing_primary_info"
	OutcomeTimeout            = "timeout"
	OutcomeError              = "error"
)

// Metrics holds the analyzer's Prometheus metrics. A nil *Metrics records
// nothing.
type Metrics struct {
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    prometheus.Histogram
	SectionsUnavailable *prometheus.CounterVec
	TaskPanics          prometheus.Counter
	CacheLookups        *prometheus.CounterVec
}

// NewMetrics registers the metrics on reg. A nil reg uses the default
// registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "matchstudy"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "runs_total",
			Help:      "Total number of fixture analyses by outcome",
		}, []string{"outcome"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Fixture analysis duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		SectionsUnavailable: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "sections_unavailable_total",
			Help:      "Total number of report sections degraded to unavailable",
		}, []string{"section"}),
		TaskPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "task_panics_total",
			Help:      "Total number of analysis tasks that panicked",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of report cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveAnalysis(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) SectionUnavailable(section string) {
	if m == nil {
		return
	}
	m.SectionsUnavailable.WithLabelValues(section).Inc()
}

func (m *Metrics) TaskPanicked() {
	if m == nil {
		return
	}
	m.TaskPanics.Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
