// SPDX-License-Identifier: MIT
// Package: omega
//
// start.go - the chain's first table for one ballot box.
//
// Algorithm (groups × candidates table T for ballot b):
//  1. Outer product T[g,c] = W[b,g] * X[c,b] (independence assumption).
//  2. normalizer = max(BallotVotes[b], Σ_c X[c,b], Σ_g W[b,g]).
//  3. T[g,c] = floor(T[g,c] / normalizer). Rows and columns now undershoot
//     their margins by a non-negative slack.
//  4. Single greedy pass, g outer, c inner: with the running sums, add
//     min(candidate slack of c, group slack of g) to T[g,c] when positive.
//     Margins are the ballot's W[b,g] and X[c,b] truncated to integers.
//
// Guarantees:
//   - Every cell is a non-negative integer.
//   - No row or column ever exceeds its margin.
//   - Exact margins are NOT guaranteed: the pass never revisits a cell, so
//     some slack can remain (see Residual).
//   - An empty ballot (normalizer 0) yields the all-zero table.
//
// Complexity:
//   - Time O(G*C), Space O(G*C).

package omega

import (
	"fmt"
	"math"

	"github.com/katalvlaran/omegaset/margins"
	"github.com/katalvlaran/omegaset/matrix"
)

const methodStartingPoint = "StartingPoint"

// StartingPoint builds ballot b's initial contingency table.
// The result is owned by the caller and shares nothing with p.
//
// Errors:
//   - ErrNoParams when p is nil.
//   - ErrBallotOutOfRange when b ∉ [0, p.Ballots()).
func StartingPoint(p *margins.Params, b int) (*matrix.Dense, error) {
	ballot, err := ballotOf(p, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStartingPoint, err)
	}
	groups, candidates := len(ballot.Groups), len(ballot.Candidates)

	var totalC, totalG float64
	var g, c int
	for c = 0; c < candidates; c++ {
		totalC += ballot.Candidates[c]
	}
	for g = 0; g < groups; g++ {
		totalG += ballot.Groups[g]
	}
	normalizer := math.Max(float64(ballot.Votes), math.Max(totalC, totalG))

	cells := make([]float64, groups*candidates) // row-major g*candidates + c
	if normalizer > 0 {
		for g = 0; g < groups; g++ {
			for c = 0; c < candidates; c++ {
				cells[g*candidates+c] = math.Floor(ballot.Groups[g] * ballot.Candidates[c] / normalizer)
			}
		}
		redistributeSlack(cells, ballot.Groups, ballot.Candidates)
	}

	return matrix.NewDenseFrom(groups, candidates, cells)
}

// redistributeSlack runs the greedy pass of step 4 in place.
// Running row/column sums are kept incrementally; each addition updates both.
func redistributeSlack(cells, groupMargin, candMargin []float64) {
	groups, candidates := len(groupMargin), len(candMargin)
	rowSum := make([]float64, groups)
	colSum := make([]float64, candidates)

	var g, c int
	var v float64
	for g = 0; g < groups; g++ {
		for c = 0; c < candidates; c++ {
			v = cells[g*candidates+c]
			rowSum[g] += v
			colSum[c] += v
		}
	}

	var slack float64
	for g = 0; g < groups; g++ {
		for c = 0; c < candidates; c++ {
			slack = math.Min(
				math.Trunc(candMargin[c])-colSum[c],
				math.Trunc(groupMargin[g])-rowSum[g],
			)
			if slack > 0 {
				cells[g*candidates+c] += slack
				rowSum[g] += slack
				colSum[c] += slack
			}
		}
	}
}

// Residual measures how far table misses ballot b's margins:
// rowGap = Σ_g |W[b,g] - rowsum_g|, colGap = Σ_c |X[c,b] - colsum_c|,
// with margins truncated to integers. Both are 0 when the table recovers
// the margins exactly.
//
// Errors:
//   - ErrNoParams, ErrBallotOutOfRange, ErrShapeMismatch, matrix validation errors.
func Residual(table *matrix.Dense, p *margins.Params, b int) (rowGap, colGap float64, err error) {
	if err = matrix.Validate(table); err != nil {
		return 0, 0, fmt.Errorf("Residual: %w", err)
	}
	ballot, err := ballotOf(p, b)
	if err != nil {
		return 0, 0, fmt.Errorf("Residual: %w", err)
	}
	if rows, cols := table.Shape(); rows != len(ballot.Groups) || cols != len(ballot.Candidates) {
		return 0, 0, fmt.Errorf("Residual: table %dx%d, want %dx%d: %w",
			rows, cols, len(ballot.Groups), len(ballot.Candidates), ErrShapeMismatch)
	}

	for g, s := range table.RowSums() {
		rowGap += math.Abs(math.Trunc(ballot.Groups[g]) - s)
	}
	for c, s := range table.ColSums() {
		colGap += math.Abs(math.Trunc(ballot.Candidates[c]) - s)
	}

	return rowGap, colGap, nil
}

// ballotOf resolves b against p with the package's sentinels.
func ballotOf(p *margins.Params, b int) (margins.Ballot, error) {
	if p == nil {
		return margins.Ballot{}, ErrNoParams
	}
	if b < 0 || b >= p.Ballots() {
		return margins.Ballot{}, fmt.Errorf("ballot %d of %d: %w", b, p.Ballots(), ErrBallotOutOfRange)
	}

	return p.Ballot(b)
}
