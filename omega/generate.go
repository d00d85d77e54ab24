// SPDX-License-Identifier: MIT
// Package: omega
//
// generate.go - one Omega set per ballot box, sampled in parallel.
//
// Contract:
//   - p comes from margins.Ingest and is only read.
//   - M > 0 (swap attempts per chain step), S > 0 (tables per ballot,
//     starting point included).
//   - Ballots are independent; each runs in one worker from start to finish.
//     Within a ballot, steps are strictly sequential.
//   - Results are stored by ballot index; completion order is irrelevant.
//   - Either every ballot succeeds or Generate returns (nil, err).
//
// Concurrency:
//   - errgroup with SetLimit(workers). Params and the shared draw table are
//     read-only; each worker owns its tables and writes only sets[b].
//   - Cancellation is checked before each ballot starts. A chain that has
//     started always runs to completion.
//
// Determinism:
//   - For fixed (seed, mode, source) the output is identical for any worker
//     count and any scheduling order.

package omega

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/margins"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const methodGenerate = "Generate"

// Generate samples S tables for every ballot in p, applying M swap
// attempts between consecutive tables.
//
// Errors:
//   - ErrNoParams when p is nil.
//   - ErrBadChainSize when M ≤ 0, S ≤ 0 or M*S overflows.
//   - ctx.Err() when the context is cancelled before all ballots started.
//   - Any error from StartingPoint, the draw sources or Chain.
func Generate(ctx context.Context, p *margins.Params, steps, samples int, opts ...Option) ([]*Set, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNoParams)
	}
	if err := checkChainSize(steps, samples); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With(
		zap.Int("ballots", p.Ballots()),
		zap.Int("candidates", p.Candidates()),
		zap.Int("groups", p.Groups()),
		zap.Int("steps", steps),
		zap.Int("samples", samples),
		zap.Stringer("mode", o.mode),
		zap.Stringer("source", o.source),
	)
	log.Info("generating omega sets", zap.Int("workers", o.workers), zap.Int64("seed", o.seed))
	began := time.Now()

	streamFor, err := o.streamFactory(p, steps, samples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	ballots := p.Ballots()
	sets := make([]*Set, ballots)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for b := 0; b < ballots; b++ {
		if gctx.Err() != nil {
			break // cancelled, or another ballot failed
		}
		b := b // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set, err := sampleBallot(p, b, steps, samples, streamFor)
			if err != nil {
				return err
			}
			sets[b] = set // disjoint slot per ballot
			log.Debug("ballot sampled",
				zap.Int("ballot", b),
				zap.Int("accepted", set.Stats.Accepted),
				zap.Int("rejected", set.Stats.Rejected),
			)
			n := int(done.Add(1))
			if o.progress != nil {
				o.progress(n, ballots)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	var total Stats
	for _, s := range sets {
		total = total.Add(s.Stats)
	}
	log.Info("omega sets generated",
		zap.Duration("elapsed", time.Since(began)),
		zap.Int("accepted", total.Accepted),
		zap.Int("rejected", total.Rejected),
	)

	return sets, nil
}

// streamFunc returns the draw stream for ballot b.
type streamFunc func(b int) (draws.Stream, error)

// streamFactory prepares the per-mode draw plumbing once per run.
func (o Options) streamFactory(p *margins.Params, steps, samples int) (streamFunc, error) {
	candidates, groups, ballots := p.Candidates(), p.Groups(), p.Ballots()

	switch o.mode {
	case ModeShared:
		src, err := draws.NewSource(o.source, o.seed)
		if err != nil {
			return nil, err
		}
		sampler, err := draws.NewSampler(src, candidates, groups)
		if err != nil {
			return nil, err
		}
		table, err := draws.Pregenerate(sampler, steps*samples)
		if err != nil {
			return nil, err
		}
		return func(b int) (draws.Stream, error) {
			return table.Shared(b, ballots, steps, samples)
		}, nil

	case ModePerBallot:
		kind, seed := o.source, o.seed
		return func(b int) (draws.Stream, error) {
			src, err := draws.NewSource(kind, draws.DeriveSeed(seed, uint64(b)))
			if err != nil {
				return nil, err
			}
			return draws.NewSampler(src, candidates, groups)
		}, nil

	default:
		return nil, fmt.Errorf("mode %d: %w", int(o.mode), ErrUnknownMode)
	}
}

// sampleBallot builds ballot b's starting point and runs its chain.
func sampleBallot(p *margins.Params, b, steps, samples int, streamFor streamFunc) (*Set, error) {
	start, err := StartingPoint(p, b)
	if err != nil {
		return nil, err
	}
	stream, err := streamFor(b)
	if err != nil {
		return nil, fmt.Errorf("ballot %d: %w", b, err)
	}
	tables, st, err := Chain(start, stream, steps, samples)
	if err != nil {
		return nil, fmt.Errorf("ballot %d: %w", b, err)
	}

	return &Set{Ballot: b, Samples: tables, Stats: st}, nil
}
