package teamtrack

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gr-oleg/teamtrack/types"
)

// Config is the configuration for a Team.
type Config struct {
	// DateLayout is the Go reference layout used for task dates and
	// project start dates. Defaults to month/day/year ("01/02/2006").
	DateLayout string `yaml:"dateLayout"`

	// DefaultProjectLimit is the roster capacity used when NewProject is
	// called with a non-positive limit.
	DefaultProjectLimit int `yaml:"defaultProjectLimit"`

	// EnforceRosterLimit makes Project.AddDeveloper reject additions past
	// the project's limit with ErrRosterFull.
	//
	// Off by default: the limit is recorded but not enforced, and
	// AddDeveloper appends even when the developer-side link was rejected
	// as a duplicate.
	EnforceRosterLimit bool `yaml:"enforceRosterLimit"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		DateLayout:          types.DefaultDateLayout,
		DefaultProjectLimit: 5,
		EnforceRosterLimit:  false,
	}
}

// ApplyDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DateLayout == "" {
		cfg.DateLayout = defaults.DateLayout
	}
	if cfg.DefaultProjectLimit == 0 {
		cfg.DefaultProjectLimit = defaults.DefaultProjectLimit
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Description of the first violated rule, nil when valid
func (cfg *Config) Validate() error {
	// Rule 1: DateLayout must round-trip a reference date.
	ref := time.Date(2022, time.September, 30, 0, 0, 0, 0, time.UTC)
	if _, err := time.Parse(cfg.DateLayout, ref.Format(cfg.DateLayout)); err != nil {
		return fmt.Errorf("DateLayout %q is not a usable date layout: %w", cfg.DateLayout, err)
	}

	// Rule 2: DefaultProjectLimit sanity
	if cfg.DefaultProjectLimit <= 0 {
		return fmt.Errorf("DefaultProjectLimit must be > 0, got %d", cfg.DefaultProjectLimit)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: File, parse, or validation failure
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes, applies defaults, and
// validates the result.
//
// Parameters:
//   - data: Raw YAML document
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Parse or validation failure
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return cfg, nil
}
