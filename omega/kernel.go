// SPDX-License-Identifier: MIT
// Package: omega
//
// kernel.go - the swap-move transition kernel.
//
// Move for draw (C1, C2, G1, G2):
//
//	T[G1,C1] -= 1    T[G1,C2] += 1
//	T[G2,C2] -= 1    T[G2,C1] += 1
//
// Row G1 and row G2 each lose one vote and gain one; columns C1 and C2
// likewise. Every row sum and column sum is unchanged, cell for cell.
//
// Rejection: if T[G1,C1] ≤ 0 or T[G2,C2] ≤ 0 the move is rejected and the
// table is untouched. This is the only rejection rule and keeps every cell
// non-negative. A rejection is a normal outcome of the kernel, not an error.

package omega

import (
	"fmt"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/matrix"
)

// Outcome tags the result of one swap attempt.
type Outcome int

const (
	// Rejected means the table was left untouched.
	Rejected Outcome = iota
	// Accepted means the four-cell move was applied.
	Accepted
)

// String returns "accepted" or "rejected".
func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}

	return "rejected"
}

// AttemptSwap applies draw d to t if both source cells are positive.
// t must be a valid groups × candidates table owned by the caller.
//
// Errors:
//   - matrix.ErrOutOfRange when d indexes outside t (a draw/table shape
//     mismatch, i.e. a programmer error). t is untouched in that case.
//
// Complexity: O(1).
func AttemptSwap(t *matrix.Dense, d draws.Draw) (Outcome, error) {
	a, err := t.At(d.G1, d.C1)
	if err != nil {
		return Rejected, fmt.Errorf("AttemptSwap: %w", err)
	}
	b, err := t.At(d.G2, d.C2)
	if err != nil {
		return Rejected, fmt.Errorf("AttemptSwap: %w", err)
	}
	if a <= 0 || b <= 0 {
		return Rejected, nil
	}

	// Both corner cells were bounds-checked above, so the opposite corners
	// (G1,C2) and (G2,C1) are in range too.
	if err = t.Add(d.G1, d.C1, -1); err != nil {
		return Rejected, err
	}
	if err = t.Add(d.G2, d.C2, -1); err != nil {
		return Rejected, err
	}
	if err = t.Add(d.G1, d.C2, 1); err != nil {
		return Rejected, err
	}
	if err = t.Add(d.G2, d.C1, 1); err != nil {
		return Rejected, err
	}

	return Accepted, nil
}
