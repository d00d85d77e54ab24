package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/omegaset/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "per-ballot", cfg.Mode)
	require.Equal(t, "mt19937", cfg.Source)

	opts, err := cfg.GenerateOptions()
	require.NoError(t, err)
	require.Len(t, opts, 4)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
samples: 3
steps: 5
seed: 42
mode: shared
source: salsa20
strict_ballots: true
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.Samples)
	require.Equal(t, 5, cfg.Steps)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "shared", cfg.Mode)
	require.Equal(t, "salsa20", cfg.Source)
	require.True(t, cfg.StrictBallots)
	require.Equal(t, 0, cfg.Workers)
	require.Empty(t, cfg.Output)

	lvl, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("samples: [1, 2\n"), 0o644))
	_, err = config.Load(bad)
	require.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Output = "sets.json"
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"zero samples", func(c *config.Config) { c.Samples = 0 }},
		{"negative steps", func(c *config.Config) { c.Steps = -2 }},
		{"negative workers", func(c *config.Config) { c.Workers = -1 }},
		{"unknown mode", func(c *config.Config) { c.Mode = "round-robin" }},
		{"unknown source", func(c *config.Config) { c.Source = "lcg" }},
		{"bad log level", func(c *config.Config) { c.Log.Level = "chatty" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
