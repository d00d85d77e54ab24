// SPDX-License-Identifier: MIT

// Package omega: functional configuration for Generate.
//
// Design goals:
//   - Deterministic behavior: a fixed seed, mode and source reproduce every
//     chain bit-for-bit regardless of worker count.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); Generate itself never panics on user input.
package omega

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/omegaset/draws"
	"go.uber.org/zap"
)

// Mode selects how ballots obtain their swap draws.
type Mode int

const (
	// ModePerBallot gives ballot b its own Sampler seeded with
	// draws.DeriveSeed(seed, b). Chains never share draws.
	ModePerBallot Mode = iota

	// ModeShared pre-generates one table of M*S draws and slices it across
	// ballots with offset floor(b/B * M*S) and modulo wraparound.
	ModeShared
)

var modeNames = [...]string{
	ModePerBallot: "per-ballot",
	ModeShared:    "shared",
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps a configuration name (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range modeNames {
		if s == n {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", name, ErrUnknownMode)
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed is the base seed when none is configured.
	DefaultSeed int64 = 1

	// DefaultMode is ModePerBallot.
	DefaultMode = ModePerBallot

	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "omega: WithWorkers: workers must be >= 0"
	panicLoggerNil      = "omega: WithLogger: logger must be non-nil"
	panicModeInvalid    = "omega: WithMode: unknown mode"
	panicSourceInvalid  = "omega: WithSource: unknown source kind"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	seed     int64
	mode     Mode
	source   draws.Kind
	workers  int
	logger   *zap.Logger
	progress func(done, total int)
}

// WithSeed sets the base seed. Seed 0 maps to a fixed default inside draws.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMode selects the draw layout.
func WithMode(m Mode) Option {
	if m < 0 || int(m) >= len(modeNames) {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithSource selects the random source kind.
func WithSource(k draws.Kind) Option {
	if !k.Valid() {
		panic(panicSourceInvalid)
	}

	return func(o *Options) { o.source = k }
}

// WithWorkers bounds the number of ballots sampled concurrently.
// 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger attaches a structured logger. Generate logs run start/finish at
// Info and per-ballot summaries at Debug.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithProgress registers a callback invoked after each ballot completes.
// It may be called from several goroutines at once.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.progress = fn }
}

// gatherOptions applies setters over documented defaults and resolves the
// worker count.
func gatherOptions(opts ...Option) Options {
	o := Options{
		seed:    DefaultSeed,
		mode:    DefaultMode,
		source:  draws.DefaultKind,
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
