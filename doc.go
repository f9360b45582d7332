// Package teamtrack provides an in-memory model of a small software
// organization: developers, QA engineers, project managers, projects, and
// work assignments, with relationship management and simple status
// calculations.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/gr-oleg/teamtrack"
//
//	cfg := teamtrack.DefaultConfig()
//	team, err := teamtrack.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alice := team.NewDeveloper(teamtrack.PersonInfo{
//	    FullName: "Alice Smith",
//	    Email:    "alice@example.com",
//	    Position: "Senior",
//	    Salary:   "5000",
//	})
//	website := team.NewProject("Website", 2)
//
//	if err := website.AddDeveloper(alice); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Sequential IDs: One monotonic counter per entity kind, scoped to a Team
//   - Two-sided bookkeeping: Developer project lists and project rosters are
//     maintained by explicit assign/remove operations
//   - Assignment status: Completion percentage derived from dated task records
//   - Org seeds: Whole organizations loadable from YAML files
//
// # Model Semantics
//
// The relationship operations intentionally keep both sides of the
// developer/project relation independent: Developer.Assign updates only the
// developer's list, and Project.AddDeveloper appends to the roster even when
// the developer already tracks the project. Set EnforceRosterLimit in the
// Config to cap roster growth.
//
// All operations are synchronous and the model is safe only for
// single-goroutine use; only the ID counters are atomic.
//
// # Advanced Usage
//
// Custom logger, metrics, and hooks:
//
//	hooks := &teamtrack.Hooks{
//	    OnProjectAssigned: func(developer, project string) {
//	        // React to assignment changes
//	    },
//	}
//
//	team, err := teamtrack.New(&cfg,
//	    teamtrack.WithLogger(myLogger),
//	    teamtrack.WithMetrics(myCollector),
//	    teamtrack.WithHooks(hooks),
//	)
package teamtrack
