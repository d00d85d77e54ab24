// SPDX-License-Identifier: MIT
// Package: draws
//
// sampler.go - uniform swap draws with rejection for distinct pairs.
//
// Contract:
//   - C1, C2 ∈ [0, candidates); G1, G2 ∈ [0, groups).
//   - If candidates > 1 AND groups > 1: (C2, G2) is re-drawn as a pair while
//     C2 == C1 OR G2 == G1, so every emitted draw has C1≠C2 AND G1≠G2.
//   - Otherwise repeats are allowed (no distinct alternative exists in at
//     least one dimension).
//
// Determinism:
//   - Fixed draw order per call: C1, G1, then (C2, G2) pairs until accepted.

package draws

import (
	"fmt"
	"math"
)

// Draw is one swap proposal: cells (G1,C1) and (G2,C2) lose a vote,
// cells (G1,C2) and (G2,C1) gain one.
type Draw struct {
	C1, C2 int // candidate (column) indices
	G1, G2 int // group (row) indices
}

// Stream yields draws in chain order: step s=1..S-1, iteration m=0..M-1.
type Stream interface {
	Next() Draw
}

// Intn returns a uniform integer in [0, n) from src without modulo bias.
//
// Errors:
//   - ErrBadBound when n ≤ 0.
//
// Complexity: expected O(1); the rejection probability is < 1/2.
func Intn(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Intn(%d): %w", n, ErrBadBound)
	}

	return intn(src, uint64(n)), nil
}

// intn assumes n > 0.
func intn(src Source, n uint64) int {
	// n is a power of two: mask.
	if n&(n-1) == 0 {
		return int(src.Uint64() & (n - 1))
	}
	// Reject the tail [limit, MaxUint64] so every residue is equally likely.
	limit := math.MaxUint64 - math.MaxUint64%n
	v := src.Uint64()
	for v >= limit {
		v = src.Uint64()
	}

	return int(v % n)
}

// Sampler draws swap proposals over fixed dimension counts.
// A Sampler implements Stream.
type Sampler struct {
	src         Source
	candidates  uint64
	groups      uint64
	allowRepeat bool
}

// Compile-time assertion: a Sampler can drive a chain directly.
var _ Stream = (*Sampler)(nil)

// NewSampler binds src to the table dimensions.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrBadBound when candidates ≤ 0 or groups ≤ 0.
func NewSampler(src Source, candidates, groups int) (*Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if candidates <= 0 || groups <= 0 {
		return nil, fmt.Errorf("NewSampler(candidates=%d, groups=%d): %w", candidates, groups, ErrBadBound)
	}

	return &Sampler{
		src:         src,
		candidates:  uint64(candidates),
		groups:      uint64(groups),
		allowRepeat: candidates <= 1 || groups <= 1,
	}, nil
}

// AllowsRepeats reports whether the degenerate (≤1 category) rule is active.
func (s *Sampler) AllowsRepeats() bool { return s.allowRepeat }

// Next draws one proposal.
func (s *Sampler) Next() Draw {
	var d Draw
	d.C1 = intn(s.src, s.candidates)
	d.G1 = intn(s.src, s.groups)
	for {
		d.C2 = intn(s.src, s.candidates)
		d.G2 = intn(s.src, s.groups)
		if s.allowRepeat || (d.C2 != d.C1 && d.G2 != d.G1) {
			return d
		}
	}
}
