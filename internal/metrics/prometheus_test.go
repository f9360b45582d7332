package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusDefaults(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")
	require.NotNil(t, p)
	require.Equal(t, "teamtrack", p.namespace)
}

func TestPrometheusCollectorCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "teamtrack")

	p.RecordProjectAssigned("Website")
	p.RecordProjectAssigned("Website")
	p.RecordProjectRemoved("Website")
	p.RecordDuplicateAssignment("Website")
	p.RecordRosterSize("Website", 3)

	assigned := p.assignedTotal.WithLabelValues("Website")
	require.Equal(t, 2.0, testutil.ToFloat64(assigned))

	removed := p.removedTotal.WithLabelValues("Website")
	require.Equal(t, 1.0, testutil.ToFloat64(removed))

	duplicates := p.duplicatesTotal.WithLabelValues("Website")
	require.Equal(t, 1.0, testutil.ToFloat64(duplicates))

	size := p.rosterSize.WithLabelValues("Website")
	require.Equal(t, 3.0, testutil.ToFloat64(size))
}

func TestPrometheusCollectorHistogram(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "teamtrack")

	p.RecordStatusCalculation(0.5)
	p.RecordStatusCalculation(1.0)

	count := testutil.CollectAndCount(reg, "teamtrack_assignment_completion_ratio")
	require.Equal(t, 1, count)
}

func TestPrometheusCollectorRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "teamtrack")

	// Repeated use must not attempt duplicate registration.
	require.NotPanics(t, func() {
		p.RecordProjectAssigned("Website")
		p.RecordProjectAssigned("Portal")
		p.RecordStatusCalculation(0)
	})
}
