package teamtrack

import "fmt"

// Developer represents a developer and the projects and assignments
// attached to them.
//
// The project list is many-to-many with Project: a developer may join
// multiple projects and a project may have multiple developers. Both sides
// of the relation are bookkept independently; see Project.AddDeveloper for
// the combined operation.
type Developer struct {
	Person

	projects    []*Project
	assignments []*Assignment

	team *Team
}

// AssignedProjects returns the titles of every project currently assigned
// to the developer, in insertion order.
func (d *Developer) AssignedProjects() []string {
	titles := make([]string, 0, len(d.projects))
	for _, p := range d.projects {
		titles = append(titles, p.Title)
	}

	return titles
}

// Projects returns the developer's project list in insertion order.
func (d *Developer) Projects() []*Project {
	return append([]*Project(nil), d.projects...)
}

// Assign adds a project to the developer's project list.
//
// This updates only the developer's side of the relation; the project's
// roster is the caller's responsibility (see Project.AddDeveloper).
//
// Parameters:
//   - project: Project to assign
//
// Returns:
//   - error: ErrDuplicateAssignment when the project is already assigned
func (d *Developer) Assign(project *Project) error {
	for _, p := range d.projects {
		if p == project {
			return fmt.Errorf("project %q: %w", project.Title, ErrDuplicateAssignment)
		}
	}

	d.projects = append(d.projects, project)

	d.team.logger.Info("project added to developer",
		"project", project.Title,
		"developer", d.FullName,
	)
	d.team.metrics.RecordProjectAssigned(project.Title)
	d.team.hooks.FireProjectAssigned(d.FullName, project.Title)

	return nil
}

// CancelAppointment removes a project from the developer's project list.
//
// Absence is not an error: when the project is not in the list the call is
// a silent no-op.
//
// Parameters:
//   - project: Project to remove
func (d *Developer) CancelAppointment(project *Project) {
	for i, p := range d.projects {
		if p != project {
			continue
		}

		d.projects = append(d.projects[:i], d.projects[i+1:]...)

		d.team.logger.Info("project removed from developer",
			"project", project.Title,
			"developer", d.FullName,
		)
		d.team.metrics.RecordProjectRemoved(project.Title)
		d.team.hooks.FireProjectRemoved(d.FullName, project.Title)

		return
	}
}

// AddAssignment appends an assignment to the developer's assignment list.
func (d *Developer) AddAssignment(assignment *Assignment) {
	d.assignments = append(d.assignments, assignment)
}

// Assignments returns the developer's assignments in insertion order.
func (d *Developer) Assignments() []*Assignment {
	return append([]*Assignment(nil), d.assignments...)
}

// String implements fmt.Stringer.
func (d *Developer) String() string {
	return "Developer " + d.FullName
}
