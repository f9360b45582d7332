package teamtrack

import (
	"time"

	"github.com/gr-oleg/teamtrack/types"
)

// Option configures a Team with optional dependencies.
type Option func(*teamOptions)

// teamOptions holds optional Team configuration.
type teamOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	now     func() time.Time
}

// WithLogger sets a logger.
//
// Notifications emitted by assign/remove operations go through this logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	team, err := teamtrack.New(&cfg, teamtrack.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *teamOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "teamtrack")
//	team, err := teamtrack.New(&cfg, teamtrack.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *teamOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets relationship lifecycle hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &teamtrack.Hooks{
//	    OnProjectAssigned: func(developer, project string) {
//	        notify(developer, project)
//	    },
//	}
//	team, err := teamtrack.New(&cfg, teamtrack.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *teamOptions) {
		o.hooks = hooks
	}
}

// WithClock sets the time source used for project start dates.
//
// Parameters:
//   - now: Function returning the current time (defaults to time.Now)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	fixed := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
//	team, err := teamtrack.New(&cfg, teamtrack.WithClock(func() time.Time { return fixed }))
func WithClock(now func() time.Time) Option {
	return func(o *teamOptions) {
		o.now = now
	}
}
