package teamtrack

import (
	"fmt"
	"time"

	"github.com/gr-oleg/teamtrack/internal/identity"
	"github.com/gr-oleg/teamtrack/internal/logging"
	"github.com/gr-oleg/teamtrack/internal/metrics"
	"github.com/gr-oleg/teamtrack/types"
)

// Team is the aggregate root of the model. It owns the configuration, the
// per-kind ID sequences, and the optional logger/metrics/hooks dependencies,
// and acts as the factory for every entity kind.
//
// A Team and the entities it creates are safe only for single-goroutine
// use; only the ID sequences are atomic.
type Team struct {
	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	now     func() time.Time

	developerIDs identity.Sequence
	qaIDs        identity.Sequence
	managerIDs   identity.Sequence

	developers  []*Developer
	qaEngineers []*QAEngineer
	managers    []*ProjectManager
	projects    []*Project
}

// New creates a Team from the given configuration and options.
//
// Parameters:
//   - cfg: Team configuration (defaults are applied to zero-valued fields)
//   - opts: Functional options (WithLogger, WithMetrics, WithHooks, WithClock)
//
// Returns:
//   - *Team: The constructed team
//   - error: ErrInvalidConfig when cfg is nil or fails validation
func New(cfg *Config, opts ...Option) (*Team, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	// Apply options
	options := &teamOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	collector := options.metrics
	if collector == nil {
		collector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	nowFunc := options.now
	if nowFunc == nil {
		nowFunc = time.Now
	}

	return &Team{
		cfg:     *cfg,
		logger:  loggerInstance,
		metrics: collector,
		hooks:   options.hooks,
		now:     nowFunc,
	}, nil
}

// NewDeveloper creates a Developer with the next developer ID and registers
// it with the team.
func (t *Team) NewDeveloper(info PersonInfo) *Developer {
	d := &Developer{
		Person: Person{PersonInfo: info, id: t.developerIDs.Next()},
		team:   t,
	}
	t.developers = append(t.developers, d)

	return d
}

// NewQAEngineer creates a QAEngineer with the next QA ID and registers it
// with the team.
func (t *Team) NewQAEngineer(info PersonInfo) *QAEngineer {
	q := &QAEngineer{
		Person: Person{PersonInfo: info, id: t.qaIDs.Next()},
	}
	t.qaEngineers = append(t.qaEngineers, q)

	return q
}

// NewProjectManager creates a ProjectManager responsible for exactly one
// project.
//
// Parameters:
//   - info: Identity attributes
//   - project: The managed project (required)
//
// Returns:
//   - *ProjectManager: The constructed manager
//   - error: ErrProjectRequired when project is nil
func (t *Team) NewProjectManager(info PersonInfo, project *Project) (*ProjectManager, error) {
	if project == nil {
		return nil, ErrProjectRequired
	}

	m := &ProjectManager{
		Person:  Person{PersonInfo: info, id: t.managerIDs.Next()},
		Project: project,
	}
	t.managers = append(t.managers, m)

	return m, nil
}

// NewProject creates a Project with its start date captured from the
// team's clock.
//
// Parameters:
//   - title: Project title, used for display and lookup
//   - limit: Roster capacity; non-positive values fall back to the
//     configured DefaultProjectLimit
func (t *Team) NewProject(title string, limit int) *Project {
	if limit <= 0 {
		limit = t.cfg.DefaultProjectLimit
	}

	p := &Project{
		Title:     title,
		Limit:     limit,
		startDate: t.now(),
		team:      t,
	}
	t.projects = append(t.projects, p)

	return p
}

// NewAssignment creates an Assignment using the team's configured date
// layout.
func (t *Team) NewAssignment(description string) *Assignment {
	a := NewAssignment(description)
	a.dateLayout = t.cfg.DateLayout
	a.metrics = t.metrics

	return a
}

// Developer returns the first registered developer with the given full
// name, or nil when none matches.
func (t *Team) Developer(fullName string) *Developer {
	for _, d := range t.developers {
		if d.FullName == fullName {
			return d
		}
	}

	return nil
}

// Project returns the first registered project with the given title, or
// nil when none matches.
func (t *Team) Project(title string) *Project {
	for _, p := range t.projects {
		if p.Title == title {
			return p
		}
	}

	return nil
}

// Developers returns the registered developers in creation order.
func (t *Team) Developers() []*Developer {
	return append([]*Developer(nil), t.developers...)
}

// QAEngineers returns the registered QA engineers in creation order.
func (t *Team) QAEngineers() []*QAEngineer {
	return append([]*QAEngineer(nil), t.qaEngineers...)
}

// Managers returns the registered project managers in creation order.
func (t *Team) Managers() []*ProjectManager {
	return append([]*ProjectManager(nil), t.managers...)
}

// Projects returns the registered projects in creation order.
func (t *Team) Projects() []*Project {
	return append([]*Project(nil), t.projects...)
}
