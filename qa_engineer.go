package teamtrack

import "fmt"

// QAEngineer represents a QA engineer.
type QAEngineer struct {
	Person

	// projects is reserved for future QA-to-project scheduling.
	projects []*Project
}

// TestFeature reports on testing an assignment.
//
// Currently a stub: it returns a formatted summary without running any
// checks. Real verification logic will replace it.
//
// Parameters:
//   - assignment: Assignment obtained from the developer
//
// Returns:
//   - string: Summary naming the assignment and the engineer
func (q *QAEngineer) TestFeature(assignment *Assignment) string {
	return fmt.Sprintf("Assignment %s has been tested by %s",
		assignment.Description, q.FullName)
}

// String implements fmt.Stringer.
func (q *QAEngineer) String() string {
	return "QAEngineer " + q.FullName
}
