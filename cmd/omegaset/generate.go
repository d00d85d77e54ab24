package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/omegaset/jsonio"
	"github.com/katalvlaran/omegaset/margins"
	"github.com/katalvlaran/omegaset/omega"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateFlags mirror the config keys; only flags set on the command line
// override the configuration.
type generateFlags struct {
	samples int
	steps   int
	seed    int64
	mode    string
	source  string
	workers int
	strict  bool
	output  string
}

func (a *app) generateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate <input.json> [S] [M]",
		Short: "Sample S tables per ballot with M swap attempts between tables",
		Long: `Reads {"X": candidates × ballots, "W": ballots × groups} from input.json
and writes one Omega set per ballot:

  [{"b": 0, "matrices": [[[...], ...], ...]}, ...]

Positional S and M override the configuration file; --samples and --steps
override both.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyPositional(args[1:]); err != nil {
				return err
			}
			a.applyFlags(cmd, &f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runGenerate(cmd, args[0])
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.samples, "samples", "S", 0, "tables per ballot, starting point included")
	fl.IntVarP(&f.steps, "steps", "M", 0, "swap attempts between consecutive tables")
	fl.Int64Var(&f.seed, "seed", omega.DefaultSeed, "base random seed")
	fl.StringVar(&f.mode, "mode", "", "draw layout: per-ballot or shared")
	fl.StringVar(&f.source, "source", "", "random source: mt19937, math or salsa20")
	fl.IntVar(&f.workers, "workers", 0, "ballots sampled concurrently (0 = GOMAXPROCS)")
	fl.BoolVar(&f.strict, "strict", false, "fail when a ballot's group and candidate totals differ")
	fl.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// applyPositional maps the optional [S] [M] arguments onto the config.
func (a *app) applyPositional(rest []string) error {
	if len(rest) > 0 {
		s, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("S: %w", err)
		}
		a.cfg.Samples = s
	}
	if len(rest) > 1 {
		m, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("M: %w", err)
		}
		a.cfg.Steps = m
	}

	return nil
}

// applyFlags copies explicitly set flags onto the config.
func (a *app) applyFlags(cmd *cobra.Command, f *generateFlags) {
	fl := cmd.Flags()
	if fl.Changed("samples") {
		a.cfg.Samples = f.samples
	}
	if fl.Changed("steps") {
		a.cfg.Steps = f.steps
	}
	if fl.Changed("seed") {
		a.cfg.Seed = f.seed
	}
	if fl.Changed("mode") {
		a.cfg.Mode = f.mode
	}
	if fl.Changed("source") {
		a.cfg.Source = f.source
	}
	if fl.Changed("workers") {
		a.cfg.Workers = f.workers
	}
	if fl.Changed("strict") {
		a.cfg.StrictBallots = f.strict
	}
	if fl.Changed("output") {
		a.cfg.Output = f.output
	}
}

// runGenerate is the driver: read, ingest, sample, write.
func (a *app) runGenerate(cmd *cobra.Command, inputPath string) error {
	log := a.logger.With(zap.String("input", inputPath))

	x, w, err := jsonio.ReadInputFile(inputPath)
	if err != nil {
		return err
	}

	var ingestOpts []margins.Option
	if a.cfg.StrictBallots {
		ingestOpts = append(ingestOpts, margins.WithStrictBallots())
	}
	p, err := margins.Ingest(x, w, ingestOpts...)
	if err != nil {
		return err
	}
	if bad := p.Mismatched(); len(bad) > 0 {
		log.Warn("group and candidate totals differ", zap.Ints("ballots", bad))
	}

	opts, err := a.cfg.GenerateOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		omega.WithLogger(log),
		omega.WithProgress(func(done, total int) {
			log.Debug("progress", zap.Int("done", done), zap.Int("total", total))
		}),
	)

	sets, err := omega.Generate(cmd.Context(), p, a.cfg.Steps, a.cfg.Samples, opts...)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return err
	}

	if a.cfg.Output == "" {
		return jsonio.WriteSets(cmd.OutOrStdout(), sets)
	}
	if err = jsonio.WriteSetsFile(a.cfg.Output, sets); err != nil {
		return err
	}
	log.Info("sets written", zap.String("output", a.cfg.Output), zap.Int("ballots", len(sets)))

	return nil
}
