package teamtrack

import (
	"fmt"
	"strings"
)

// ProjectManager represents a project manager responsible for exactly one
// project.
type ProjectManager struct {
	Person

	// Project is the single project the manager is responsible for.
	Project *Project
}

// DiscussProgress summarizes a developer's assignments.
//
// Currently a stub: it joins the descriptions of the developer's
// assignments with spaces, in insertion order, and names the manager. A
// developer with no assignments yields a summary with an empty
// description segment, not an error.
//
// Parameters:
//   - developer: Developer whose progress is being discussed
//
// Returns:
//   - string: Summary of the developer's assignment descriptions
func (m *ProjectManager) DiscussProgress(developer *Developer) string {
	descriptions := make([]string, 0, len(developer.assignments))
	for _, a := range developer.assignments {
		descriptions = append(descriptions, a.Description)
	}

	return fmt.Sprintf("Task's progress of %s has been tested by %s",
		strings.Join(descriptions, " "), m.FullName)
}

// String implements fmt.Stringer.
func (m *ProjectManager) String() string {
	return "ProjectManager " + m.FullName
}
