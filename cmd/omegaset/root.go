package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/omegaset/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFunc builds the run logger from the effective log settings.
type loggerFunc func(lc config.LogConfig, verbose bool) (*zap.Logger, error)

// app is the state shared by the command tree of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg       *config.Config
	logger    *zap.Logger
	newLogger loggerFunc
}

// newRootCmd assembles the command tree. A nil newLogger selects
// buildLogger.
func newRootCmd(newLogger loggerFunc) *cobra.Command {
	a := &app{cfg: config.Default(), newLogger: newLogger}
	if a.newLogger == nil {
		a.newLogger = buildLogger
	}

	root := &cobra.Command{
		Use:   "omegaset",
		Short: "Sample Omega sets of vote-transfer tables per ballot box",
		Long: `omegaset builds, for every ballot box, a Markov chain of integer
groups × candidates tables whose row and column sums match the ballot's
group and candidate vote totals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run configuration")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.generateCmd())

	return root
}

// init loads the configuration file, then builds the run logger.
func (a *app) init(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger, err := a.newLogger(a.cfg.Log, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)

	return nil
}

// buildLogger returns a production (JSON) or development (console) zap
// logger at the configured level; verbose forces debug.
func buildLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
