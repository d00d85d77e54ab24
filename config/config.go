// Package config holds the YAML run configuration of the omegaset CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/omega"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one sampling run.
type Config struct {
	// Chain size
	Samples int `yaml:"samples"` // S, tables per ballot
	Steps   int `yaml:"steps"`   // M, swap attempts between tables

	// Randomness
	Seed   int64  `yaml:"seed"`
	Mode   string `yaml:"mode"`   // per-ballot, shared
	Source string `yaml:"source"` // mt19937, math, salsa20

	Workers       int    `yaml:"workers"` // 0 = GOMAXPROCS
	StrictBallots bool   `yaml:"strict_ballots"`
	Output        string `yaml:"output"` // empty = stdout

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Samples: 10,
		Steps:   100,
		Seed:    omega.DefaultSeed,
		Mode:    omega.DefaultMode.String(),
		Source:  draws.DefaultKind.String(),
		Workers: omega.DefaultWorkers,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over Default. Keys absent from the file keep
// their default values. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal config")
	}

	return pkgerrors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}

// Validate checks every setting and wraps the first failure in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples=%d must be > 0: %w", c.Samples, ErrInvalidConfig)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps=%d must be > 0: %w", c.Steps, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d must be >= 0: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := omega.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if _, err := draws.ParseKind(c.Source); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// GenerateOptions maps c onto omega options. c must be valid.
func (c *Config) GenerateOptions() ([]omega.Option, error) {
	mode, err := omega.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	kind, err := draws.ParseKind(c.Source)
	if err != nil {
		return nil, err
	}

	return []omega.Option{
		omega.WithSeed(c.Seed),
		omega.WithMode(mode),
		omega.WithSource(kind),
		omega.WithWorkers(c.Workers),
	}, nil
}

// ZapLevel parses Level; empty means info.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("log.level: %w", err)
	}

	return lvl, nil
}
