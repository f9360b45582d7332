package teamtrack

// PersonInfo carries the identity and contact attributes shared by every
// person-like entity.
type PersonInfo struct {
	// FullName is the person's first + last names.
	FullName string `yaml:"fullName"`

	// Address is the registration address.
	Address string `yaml:"address"`

	// Email is the personal company e-mail.
	Email string `yaml:"email"`

	// PhoneNumber is the person's working phone number.
	PhoneNumber string `yaml:"phoneNumber"`

	// Position is the company position (e.g., "Junior").
	Position string `yaml:"position"`

	// Salary is the salary amount, kept as text for compatibility with
	// downstream consumers of the original contract.
	Salary string `yaml:"salary"`
}

// Person is the common identity core embedded by Developer, QAEngineer,
// and ProjectManager.
type Person struct {
	PersonInfo

	// id is assigned at construction from a per-kind sequence and is
	// immutable thereafter.
	id int64
}

// ID returns the entity's sequential identifier.
//
// Identifiers are assigned per entity kind within a Team, starting at 0,
// and are never reused.
func (p *Person) ID() int64 {
	return p.id
}
