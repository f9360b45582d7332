package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	t.Parallel()

	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetricsDiscardsEverything(t *testing.T) {
	t.Parallel()

	m := NewNop()

	require.NotPanics(t, func() {
		m.RecordProjectAssigned("Website")
		m.RecordProjectRemoved("")
		m.RecordDuplicateAssignment("Website")
		m.RecordRosterSize("Website", -1)
		m.RecordStatusCalculation(0.5)
	})
}
