package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gr-oleg/teamtrack/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so that constructing the
// collector never fails, matching the non-blocking contract of
// types.MetricsCollector.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignedTotal   *prometheus.CounterVec
	removedTotal    *prometheus.CounterVec
	duplicatesTotal *prometheus.CounterVec
	rosterSize      *prometheus.GaugeVec
	completionRatio prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "teamtrack" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teamtrack"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "assignments_total",
			Help:      "Total successful project assignments by project.",
		}, []string{"project"})

		p.removedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "removals_total",
			Help:      "Total project removals by project.",
		}, []string{"project"})

		p.duplicatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "duplicate_assignments_total",
			Help:      "Total rejected duplicate assignment attempts by project.",
		}, []string{"project"})

		p.rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "size_current",
			Help:      "Current roster size by project.",
		}, []string{"project"})

		p.completionRatio = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "completion_ratio",
			Help:      "Observed completion ratios from status calculations.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11), // 0.0 .. 1.0
		})

		p.reg.MustRegister(
			p.assignedTotal,
			p.removedTotal,
			p.duplicatesTotal,
			p.rosterSize,
			p.completionRatio,
		)
	})
}

// RecordProjectAssigned increments the assignment counter for the project.
func (p *PrometheusCollector) RecordProjectAssigned(project string) {
	p.ensureRegistered()
	p.assignedTotal.WithLabelValues(project).Inc()
}

// RecordProjectRemoved increments the removal counter for the project.
func (p *PrometheusCollector) RecordProjectRemoved(project string) {
	p.ensureRegistered()
	p.removedTotal.WithLabelValues(project).Inc()
}

// RecordDuplicateAssignment increments the duplicate assignment counter.
func (p *PrometheusCollector) RecordDuplicateAssignment(project string) {
	p.ensureRegistered()
	p.duplicatesTotal.WithLabelValues(project).Inc()
}

// RecordRosterSize sets the roster size gauge for the project.
func (p *PrometheusCollector) RecordRosterSize(project string, size int) {
	p.ensureRegistered()
	p.rosterSize.WithLabelValues(project).Set(float64(size))
}

// RecordStatusCalculation observes a completion ratio.
func (p *PrometheusCollector) RecordStatusCalculation(completionRatio float64) {
	p.ensureRegistered()
	p.completionRatio.Observe(completionRatio)
}
