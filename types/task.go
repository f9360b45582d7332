package types

// DefaultDateLayout is the month/day/year layout used for task dates and
// project start dates (e.g., "09/30/2022").
const DefaultDateLayout = "01/02/2006"

// Task is a single unit of work tracked inside an Assignment or a Project
// task list.
//
// Tasks are free-form records; the completion flag is the only field the
// library interprets (status calculation).
type Task struct {
	// Title describes the task.
	Title string `yaml:"title" json:"title"`

	// Done reports whether the task has been completed.
	Done bool `yaml:"done" json:"done"`
}
