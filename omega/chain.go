// SPDX-License-Identifier: MIT

package omega

import (
	"fmt"
	"math"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/matrix"
)

// Chain runs one Markov chain of S tables from start.
//
// Implementation:
//   - Stage 1: sample 0 is a copy of start.
//   - Stage 2: for s = 1..S-1, copy sample s-1, apply M swap attempts with
//     the next M draws from stream, and store the result as sample s.
//
// Behavior highlights:
//   - Pure: start is never mutated, and the same start + same stream
//     reproduce the same chain exactly.
//   - Consumes exactly M*(S-1) draws.
//
// Errors:
//   - ErrBadChainSize when steps or samples ≤ 0.
//   - ErrNoStream when stream is nil and S > 1.
//   - matrix validation errors for a malformed start.
//   - matrix.ErrOutOfRange when a draw does not fit the table.
//
// Complexity:
//   - Time O(S*(M + G*C)), Space O(S*G*C).
func Chain(start *matrix.Dense, stream draws.Stream, steps, samples int) ([]*matrix.Dense, Stats, error) {
	var st Stats
	if err := checkChainSize(steps, samples); err != nil {
		return nil, st, err
	}
	if err := matrix.Validate(start); err != nil {
		return nil, st, fmt.Errorf("Chain: start: %w", err)
	}
	if stream == nil && samples > 1 {
		return nil, st, fmt.Errorf("Chain: %w", ErrNoStream)
	}

	out := make([]*matrix.Dense, samples)
	out[0] = start.Clone()

	var s, m int
	var work *matrix.Dense
	var res Outcome
	var err error
	for s = 1; s < samples; s++ {
		work = out[s-1].Clone()
		for m = 0; m < steps; m++ {
			res, err = AttemptSwap(work, stream.Next())
			if err != nil {
				return nil, st, fmt.Errorf("Chain: step %d iteration %d: %w", s, m, err)
			}
			if res == Accepted {
				st.Accepted++
			} else {
				st.Rejected++
			}
		}
		out[s] = work // never mutated again; the next step works on a clone
	}

	return out, st, nil
}

// checkChainSize enforces M > 0, S > 0 and that M*S fits in an int.
func checkChainSize(steps, samples int) error {
	if steps <= 0 || samples <= 0 {
		return fmt.Errorf("M=%d S=%d: %w", steps, samples, ErrBadChainSize)
	}
	if steps > math.MaxInt/samples {
		return fmt.Errorf("M=%d S=%d overflows: %w", steps, samples, ErrBadChainSize)
	}

	return nil
}
