package teamtrack

import "github.com/gr-oleg/teamtrack/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `teamtrack`
// package, while still providing a convenient `teamtrack.Task`,
// `teamtrack.Logger`, etc. for users.
type (
	Task  = types.Task
	Hooks = types.Hooks
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// DefaultDateLayout is the month/day/year layout used for task dates and
// project start dates.
const DefaultDateLayout = types.DefaultDateLayout
