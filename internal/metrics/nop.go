// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/gr-oleg/teamtrack/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RosterMetrics implementation

// RecordProjectAssigned discards the assignment metric.
func (n *NopMetrics) RecordProjectAssigned(_ /* project */ string) {
	// No-op
}

// RecordProjectRemoved discards the removal metric.
func (n *NopMetrics) RecordProjectRemoved(_ /* project */ string) {
	// No-op
}

// RecordDuplicateAssignment discards the duplicate assignment metric.
func (n *NopMetrics) RecordDuplicateAssignment(_ /* project */ string) {
	// No-op
}

// RecordRosterSize discards the roster size metric.
func (n *NopMetrics) RecordRosterSize(_ /* project */ string, _ /* size */ int) {
	// No-op
}

// AssignmentMetrics implementation

// RecordStatusCalculation discards the status calculation metric.
func (n *NopMetrics) RecordStatusCalculation(_ /* completionRatio */ float64) {
	// No-op
}
