package teamtrack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gr-oleg/teamtrack/types"
)

// Org is a declarative description of an organization, loadable from a
// YAML seed file and instantiated with Team.Build.
type Org struct {
	// Developers are created first so projects and managers can refer to
	// them by full name.
	Developers []PersonInfo `yaml:"developers"`

	// QAEngineers to create.
	QAEngineers []PersonInfo `yaml:"qaEngineers"`

	// Projects to create, with rosters referencing developers by name.
	Projects []ProjectSeed `yaml:"projects"`

	// Managers to create, each referencing a project by title.
	Managers []ManagerSeed `yaml:"managers"`
}

// ProjectSeed describes a project in an org seed file.
type ProjectSeed struct {
	Title string `yaml:"title"`

	// Limit is the roster capacity; zero falls back to the configured
	// default.
	Limit int `yaml:"limit"`

	// Developers lists roster members by full name.
	Developers []string `yaml:"developers"`

	// Tasks are free-form task records attached to the project.
	Tasks []types.Task `yaml:"tasks"`
}

// ManagerSeed describes a project manager in an org seed file.
type ManagerSeed struct {
	PersonInfo `yaml:",inline"`

	// Project is the title of the managed project.
	Project string `yaml:"project"`
}

// LoadOrg reads an org seed from a YAML file.
//
// Parameters:
//   - path: Path to the YAML seed file
//
// Returns:
//   - *Org: Parsed organization description
//   - error: File or parse failure
func LoadOrg(path string) (*Org, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read org seed %s: %w", path, err)
	}

	return ParseOrg(data)
}

// ParseOrg parses an org seed from YAML bytes.
func ParseOrg(data []byte) (*Org, error) {
	var org Org
	if err := yaml.Unmarshal(data, &org); err != nil {
		return nil, fmt.Errorf("parse org seed: %w", err)
	}

	return &org, nil
}

// Build instantiates an org description: developers and QA engineers
// first, then projects with their rosters, then managers.
//
// Rosters are wired through Project.AddDeveloper, so the usual
// notifications, metrics, and hooks fire for every membership.
//
// Parameters:
//   - org: Organization description to instantiate
//
// Returns:
//   - error: ErrDeveloperNotFound for an unknown roster name,
//     ErrProjectRequired for an unknown manager project, or a roster
//     capacity failure when limit enforcement is on
func (t *Team) Build(org *Org) error {
	for _, info := range org.Developers {
		t.NewDeveloper(info)
	}
	for _, info := range org.QAEngineers {
		t.NewQAEngineer(info)
	}

	for _, seed := range org.Projects {
		project := t.NewProject(seed.Title, seed.Limit)
		for _, task := range seed.Tasks {
			project.AddTask(task)
		}

		for _, name := range seed.Developers {
			dev := t.Developer(name)
			if dev == nil {
				return fmt.Errorf("project %q roster: developer %q: %w",
					seed.Title, name, ErrDeveloperNotFound)
			}
			if err := project.AddDeveloper(dev); err != nil {
				return fmt.Errorf("project %q roster: %w", seed.Title, err)
			}
		}
	}

	for _, seed := range org.Managers {
		project := t.Project(seed.Project)
		if project == nil {
			return fmt.Errorf("manager %q: project %q: %w",
				seed.FullName, seed.Project, ErrProjectRequired)
		}
		if _, err := t.NewProjectManager(seed.PersonInfo, project); err != nil {
			return fmt.Errorf("manager %q: %w", seed.FullName, err)
		}
	}

	return nil
}
