// SPDX-License-Identifier: MIT
// Package: draws
//
// table.go - pre-generated draw arrays and the streams that replay them.
//
// Layout:
//   - Four parallel arrays C1, C2, G1, G2 of equal length n.
//
// Shared partitioning (compatibility layout):
//   - One table of length M*S serves every ballot.
//   - offset(b) = floor(b/ballots * M*S).
//   - Draw for chain step s ∈ [1,S), iteration m ∈ [0,M):
//     index = (s*M + offset(b) + m) mod (M*S).
//   - Distinct ballots can read overlapping slices when M*S is small
//     relative to the ballot count; Sampler-per-ballot streams avoid that.

package draws

import (
	"fmt"
	"math"
)

// Table holds pre-generated draws as four parallel arrays.
// Read-only after Pregenerate.
type Table struct {
	C1, C2 []int
	G1, G2 []int
}

// Pregenerate fills a table with n draws from s, in order.
//
// Errors:
//   - ErrTableSize when n ≤ 0.
//
// Complexity: Time O(n) expected, Space O(4n).
func Pregenerate(s *Sampler, n int) (*Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Pregenerate(%d): %w", n, ErrTableSize)
	}
	t := &Table{
		C1: make([]int, n),
		C2: make([]int, n),
		G1: make([]int, n),
		G2: make([]int, n),
	}
	var i int
	var d Draw
	for i = 0; i < n; i++ {
		d = s.Next()
		t.C1[i], t.C2[i], t.G1[i], t.G2[i] = d.C1, d.C2, d.G1, d.G2
	}

	return t, nil
}

// NewTable wraps explicit draws, e.g. to replay a recorded stream.
//
// Errors:
//   - ErrTableSize when the slice is empty.
func NewTable(ds []Draw) (*Table, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("NewTable: %w", ErrTableSize)
	}
	n := len(ds)
	t := &Table{C1: make([]int, n), C2: make([]int, n), G1: make([]int, n), G2: make([]int, n)}
	for i, d := range ds {
		t.C1[i], t.C2[i], t.G1[i], t.G2[i] = d.C1, d.C2, d.G1, d.G2
	}

	return t, nil
}

// Len returns the number of draws.
func (t *Table) Len() int { return len(t.C1) }

// At returns draw i; i must be in [0, Len()).
func (t *Table) At(i int) Draw {
	return Draw{C1: t.C1[i], C2: t.C2[i], G1: t.G1[i], G2: t.G2[i]}
}

// ShareOffset returns floor(b/ballots * steps*samples), the first index
// ballot b reads from a shared table.
func ShareOffset(b, ballots, steps, samples int) int {
	return int(math.Floor(float64(b) / float64(ballots) * float64(steps*samples)))
}

// Shared returns the stream ballot b reads under the shared partitioning.
//
// Errors:
//   - ErrBadBound when steps, samples or ballots ≤ 0, or b ∉ [0, ballots).
//   - ErrTableSize when Len() != steps*samples.
func (t *Table) Shared(b, ballots, steps, samples int) (Stream, error) {
	if steps <= 0 || samples <= 0 || ballots <= 0 || b < 0 || b >= ballots {
		return nil, fmt.Errorf("Shared(b=%d, ballots=%d, M=%d, S=%d): %w", b, ballots, steps, samples, ErrBadBound)
	}
	if t.Len() != steps*samples {
		return nil, fmt.Errorf("Shared: len=%d want %d: %w", t.Len(), steps*samples, ErrTableSize)
	}

	return &sharedStream{
		t:      t,
		steps:  steps,
		size:   steps * samples,
		offset: ShareOffset(b, ballots, steps, samples),
	}, nil
}

// Sequential returns a stream that replays draws 0, 1, 2, ... and wraps
// around after Len().
func (t *Table) Sequential() Stream {
	return &seqStream{t: t}
}

// sharedStream maps the k-th consumed draw to s = 1 + k/M, m = k%M.
type sharedStream struct {
	t      *Table
	steps  int
	size   int
	offset int
	k      int
}

func (s *sharedStream) Next() Draw {
	step := 1 + s.k/s.steps
	m := s.k % s.steps
	s.k++

	return s.t.At((step*s.steps + s.offset + m) % s.size)
}

type seqStream struct {
	t *Table
	k int
}

func (s *seqStream) Next() Draw {
	d := s.t.At(s.k % s.t.Len())
	s.k++

	return d
}
