package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	RosterMetrics
	AssignmentMetrics
}

// RosterMetrics defines metrics for developer/project relationship changes.
type RosterMetrics interface {
	// RecordProjectAssigned records a successful project assignment to a developer.
	//
	// Parameters:
	//   - project: Title of the assigned project
	RecordProjectAssigned(project string)

	// RecordProjectRemoved records a project removal from a developer.
	//
	// Parameters:
	//   - project: Title of the removed project
	RecordProjectRemoved(project string)

	// RecordDuplicateAssignment records a rejected duplicate assignment attempt.
	//
	// Parameters:
	//   - project: Title of the project involved in the duplicate attempt
	RecordDuplicateAssignment(project string)

	// RecordRosterSize sets the current roster size for a project (gauge metric).
	//
	// Parameters:
	//   - project: Project title
	//   - size: Current number of roster entries
	RecordRosterSize(project string, size int)
}

// AssignmentMetrics defines metrics for assignment status calculations.
type AssignmentMetrics interface {
	// RecordStatusCalculation records a completed status calculation.
	//
	// Parameters:
	//   - completionRatio: Fraction of completed tasks (0.0-1.0)
	RecordStatusCalculation(completionRatio float64)
}
