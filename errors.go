package teamtrack

import "github.com/gr-oleg/teamtrack/types"

// Sentinel errors returned by the library.
//
// These alias the canonical definitions in the types subpackage so that
// errors.Is works regardless of which package the caller imports.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrProjectRequired is returned when a project manager is created
	// without a project reference.
	ErrProjectRequired = types.ErrProjectRequired

	// ErrDuplicateAssignment is returned when a project is assigned to a
	// developer that already tracks it.
	ErrDuplicateAssignment = types.ErrDuplicateAssignment

	// ErrDeveloperNotFound is returned when removing a developer that is
	// not present in a project's roster.
	ErrDeveloperNotFound = types.ErrDeveloperNotFound

	// ErrRosterFull is returned when roster limit enforcement is enabled
	// and a project's developer roster is at capacity.
	ErrRosterFull = types.ErrRosterFull

	// ErrInvalidTaskDate is returned when a task date string does not
	// match the configured month/day/year layout.
	ErrInvalidTaskDate = types.ErrInvalidTaskDate
)
