package types

import "errors"

// Sentinel errors for the teamtrack library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap them with context using
// fmt.Errorf("...: %w", err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Team, Roster, Assignment)
//   - Use consistent messages across similar error types

// Team errors - Public API errors returned by the Team aggregate.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProjectRequired is returned when a project manager is created
	// without a project reference.
	ErrProjectRequired = errors.New("project is required")
)

// Roster errors - Errors raised by developer/project relationship management.
var (
	// ErrDuplicateAssignment is returned when a project is assigned to a
	// developer that already tracks it.
	ErrDuplicateAssignment = errors.New("project already assigned")

	// ErrDeveloperNotFound is returned when removing a developer that is
	// not present in a project's roster.
	ErrDeveloperNotFound = errors.New("developer not found in roster")

	// ErrRosterFull is returned when roster limit enforcement is enabled
	// and a project's developer roster is at capacity.
	ErrRosterFull = errors.New("project roster is full")
)

// Assignment errors - Errors raised by assignment task bookkeeping.
var (
	// ErrInvalidTaskDate is returned when a task date string does not
	// match the configured month/day/year layout.
	ErrInvalidTaskDate = errors.New("invalid task date")
)
