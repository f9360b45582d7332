package teamtrack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gr-oleg/teamtrack/internal/metrics"
	"github.com/gr-oleg/teamtrack/types"
)

// Assignment is a container for dated task records handed to a developer.
//
// Tasks are keyed by a month/day/year date string. Dates are parsed once
// when a task is added; adding a task under an existing date replaces that
// entry in place, preserving insertion order.
type Assignment struct {
	// Description is the general assignment description.
	Description string

	tasks      []taskEntry
	status     string
	done       bool
	dateLayout string
	metrics    types.MetricsCollector
}

// taskEntry pairs a parsed task date with its record. Entries keep the
// order in which their dates were first added.
type taskEntry struct {
	date time.Time
	task types.Task
}

// NewAssignment creates an Assignment with the default date layout.
//
// Assignments created through Team.NewAssignment use the team's configured
// layout and metrics collector instead.
func NewAssignment(description string) *Assignment {
	return &Assignment{
		Description: description,
		dateLayout:  types.DefaultDateLayout,
		metrics:     metrics.NewNop(),
	}
}

// AddTask records a task under the given date string.
//
// The date is parsed once here, at the boundary. Adding a task with a date
// already present replaces the existing record without changing its
// position.
//
// Parameters:
//   - date: Date string in month/day/year form (e.g., "09/30/2022")
//   - task: Task record to store
//
// Returns:
//   - error: ErrInvalidTaskDate when the date string does not parse
func (a *Assignment) AddTask(date string, task types.Task) error {
	parsed, err := time.Parse(a.dateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTaskDate, date)
	}

	for i := range a.tasks {
		if a.tasks[i].date.Equal(parsed) {
			a.tasks[i].task = task
			return nil
		}
	}

	a.tasks = append(a.tasks, taskEntry{date: parsed, task: task})

	return nil
}

// Tasks returns all task records in insertion order.
func (a *Assignment) Tasks() []types.Task {
	tasks := make([]types.Task, 0, len(a.tasks))
	for _, e := range a.tasks {
		tasks = append(tasks, e.task)
	}

	return tasks
}

// TasksToDate returns all tasks dated strictly earlier than the given
// cutoff, in insertion order.
//
// Parameters:
//   - date: Cutoff date string in month/day/year form (e.g., "09/30/2022")
//
// Returns:
//   - []types.Task: Tasks dated before the cutoff
//   - error: ErrInvalidTaskDate when the cutoff string does not parse
func (a *Assignment) TasksToDate(date string) ([]types.Task, error) {
	cutoff, err := time.Parse(a.dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTaskDate, date)
	}

	var tasks []types.Task
	for _, e := range a.tasks {
		if e.date.Before(cutoff) {
			tasks = append(tasks, e.task)
		}
	}

	return tasks, nil
}

// CalculateStatus recalculates the completion status from the recorded
// tasks and stores it; read it back with Status.
//
// The status is "0%" when there are no tasks or none are done, otherwise
// the percentage of done tasks using full floating-point division
// precision with a trailing "%" (e.g., "50.0%").
func (a *Assignment) CalculateStatus() {
	done := 0
	for _, e := range a.tasks {
		if e.task.Done {
			done++
		}
	}

	a.status = formatPercent(done, len(a.tasks))
	a.done = len(a.tasks) > 0 && done == len(a.tasks)

	if len(a.tasks) > 0 {
		a.metrics.RecordStatusCalculation(float64(done) / float64(len(a.tasks)))
	}
}

// Status returns the status string set by the last CalculateStatus call
// ("" before the first call).
func (a *Assignment) Status() string {
	return a.status
}

// Done reports whether the last CalculateStatus call found every task
// completed.
func (a *Assignment) Done() bool {
	return a.done
}

// formatPercent renders done/total as a percentage string. Integral values
// keep a ".0" suffix ("50.0%") and zero completion collapses to "0%",
// matching the historical status contract.
func formatPercent(done, total int) string {
	if total == 0 || done == 0 {
		return "0%"
	}

	pct := 100 * float64(done) / float64(total)
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s + "%"
}
