package teamtrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gr-oleg/teamtrack/types"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	require.Equal(t, types.DefaultDateLayout, cfg.DateLayout)
	require.Equal(t, 5, cfg.DefaultProjectLimit)
	require.False(t, cfg.EnforceRosterLimit)
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults to empty config", func(t *testing.T) {
		t.Parallel()

		cfg := Config{}
		ApplyDefaults(&cfg)

		require.Equal(t, types.DefaultDateLayout, cfg.DateLayout)
		require.Equal(t, 5, cfg.DefaultProjectLimit)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		t.Parallel()

		cfg := Config{
			DateLayout:          "2006-01-02",
			DefaultProjectLimit: 10,
			EnforceRosterLimit:  true,
		}
		ApplyDefaults(&cfg)

		require.Equal(t, "2006-01-02", cfg.DateLayout)
		require.Equal(t, 10, cfg.DefaultProjectLimit)
		require.True(t, cfg.EnforceRosterLimit)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "default config is valid",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "iso date layout is valid",
			cfg:     Config{DateLayout: "2006-01-02", DefaultProjectLimit: 3},
			wantErr: false,
		},
		{
			name:    "non-positive limit rejected",
			cfg:     Config{DateLayout: types.DefaultDateLayout, DefaultProjectLimit: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses yaml and applies defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := ParseConfig([]byte("defaultProjectLimit: 7\n"))
		require.NoError(t, err)
		require.Equal(t, 7, cfg.DefaultProjectLimit)
		require.Equal(t, types.DefaultDateLayout, cfg.DateLayout)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseConfig([]byte("defaultProjectLimit: [nope"))
		require.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		_, err := ParseConfig([]byte("defaultProjectLimit: -1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "teamtrack.yaml")
	data := []byte("dateLayout: \"01/02/2006\"\ndefaultProjectLimit: 4\nenforceRosterLimit: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.DefaultProjectLimit)
	require.True(t, cfg.EnforceRosterLimit)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
