package teamtrack

import (
	"fmt"
	"time"

	"github.com/gr-oleg/teamtrack/types"
)

// Project represents a project with a developer roster and a free-form
// task list.
type Project struct {
	// Title is the project's name, used for display and lookup.
	Title string

	// Limit is the declared roster capacity. It is only enforced when
	// EnforceRosterLimit is set in the team configuration.
	Limit int

	startDate time.Time
	tasks     []types.Task
	roster    []*Developer

	team *Team
}

// StartDate returns the date the project was created. It is fixed at
// construction and never mutated.
func (p *Project) StartDate() time.Time {
	return p.startDate
}

// AddTask appends a task record to the project's task list.
func (p *Project) AddTask(task types.Task) {
	p.tasks = append(p.tasks, task)
}

// Tasks returns the project's task records in insertion order.
func (p *Project) Tasks() []types.Task {
	return append([]types.Task(nil), p.tasks...)
}

// AddDeveloper assigns a developer to the project and appends them to the
// roster.
//
// The developer-side link is attempted first via Developer.Assign. A
// duplicate there is caught and reported, not propagated, and the roster
// is appended regardless, so repeated calls grow the roster even though
// the developer's own list stays deduplicated. Callers that want a
// capped roster set EnforceRosterLimit in the configuration.
//
// Parameters:
//   - developer: Developer to add
//
// Returns:
//   - error: ErrRosterFull when limit enforcement is on and the roster is
//     at capacity; nil otherwise
func (p *Project) AddDeveloper(developer *Developer) error {
	if p.team.cfg.EnforceRosterLimit && len(p.roster) >= p.Limit {
		return fmt.Errorf("project %q (limit %d): %w", p.Title, p.Limit, ErrRosterFull)
	}

	if err := developer.Assign(p); err != nil {
		p.team.logger.Warn("developer exists",
			"developer", developer.FullName,
			"project", p.Title,
		)
		p.team.metrics.RecordDuplicateAssignment(p.Title)
	}

	p.roster = append(p.roster, developer)
	p.team.metrics.RecordRosterSize(p.Title, len(p.roster))
	p.team.hooks.FireRosterChanged(p.Title, len(p.roster))

	return nil
}

// RemoveDeveloper removes a developer from the project.
//
// The developer-side link is cancelled first (a no-op when absent), then
// the first matching roster entry is removed. Unlike cancellation,
// removing a developer that is not on the roster is an error.
//
// Parameters:
//   - developer: Developer to remove
//
// Returns:
//   - error: ErrDeveloperNotFound when the developer is not on the roster
func (p *Project) RemoveDeveloper(developer *Developer) error {
	developer.CancelAppointment(p)

	for i, d := range p.roster {
		if d != developer {
			continue
		}

		p.roster = append(p.roster[:i], p.roster[i+1:]...)
		p.team.metrics.RecordRosterSize(p.Title, len(p.roster))
		p.team.hooks.FireRosterChanged(p.Title, len(p.roster))

		return nil
	}

	return fmt.Errorf("developer %q: %w", developer.FullName, ErrDeveloperNotFound)
}

// Roster returns the project's developer roster in insertion order.
// Duplicate entries are possible; see AddDeveloper.
func (p *Project) Roster() []*Developer {
	return append([]*Developer(nil), p.roster...)
}

// String implements fmt.Stringer.
func (p *Project) String() string {
	return "Project " + p.Title
}
