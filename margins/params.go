// SPDX-License-Identifier: MIT
// Package: margins
//
// params.go - Ingest(X, W) and the immutable Params context.
//
// Contract:
//   - X is candidates × ballots, W is ballots × groups; X.Cols() == W.Rows().
//   - Both inputs are deep-copied; the caller may reuse or discard them.
//   - Cells must be finite, ≥ 0 and below MaxCount. Fractional counts are
//     truncated toward zero when accumulated into the integer totals.
//   - Every derived total must fit in an int.
//   - Params never changes after Ingest returns, so any number of goroutines
//     may read it without locking.
//
// Complexity:
//   - Time O(B*(C+G)), Space O(B*(C+G)) for the copies.

package margins

import (
	"fmt"
	"math"

	"github.com/katalvlaran/omegaset/matrix"
)

const methodIngest = "Ingest"

// MaxCount is the exclusive upper bound for a single cell: 2^53, the
// limit of exactly representable integers in a float64, further capped
// by the platform int.
var MaxCount = math.Min(1<<53, float64(math.MaxInt))

// Params holds the aggregate margins derived from one (X, W) pair.
type Params struct {
	x *matrix.Dense // candidates × ballots (owned copy)
	w *matrix.Dense // ballots × groups (owned copy)

	candidates int
	groups     int
	ballots    int
	totalVotes int

	candidateVotes []int     // Σ_b X[c,b]
	groupVotes     []int     // Σ_b W[b,g]
	ballotVotes    []int     // Σ_c X[c,b]
	groupTotals    []int     // Σ_g W[b,g]
	invBallotVotes []float64 // 1 / ballotVotes[b]; +Inf for an empty ballot
	mismatched     []int     // ballots with ballotVotes[b] != groupTotals[b]
}

// Ballot is a read-only snapshot of one ballot box's margins.
// Slices are fresh copies owned by the caller.
type Ballot struct {
	Index      int
	Votes      int       // Σ_c X[c,b]
	GroupTotal int       // Σ_g W[b,g]
	Inv        float64   // 1/Votes
	Groups     []float64 // W[b,:], length = groups
	Candidates []float64 // X[:,b], length = candidates
}

// Ingest validates X and W, copies them, and derives every margin.
// MAIN DESCRIPTION:
//   - The single synchronization point before sampling: everything
//     downstream reads the returned Params only.
//
// Implementation:
//   - Stage 1: matrix.Validate both inputs; check X.Cols() == W.Rows().
//   - Stage 2: reject non-finite or negative cells.
//   - Stage 3: deep-copy; derive dimension counts.
//   - Stage 4: per ballot, accumulate candidate, ballot, total and group
//     votes, group-side total and the inverse ballot count.
//   - Stage 5: record (or, under WithStrictBallots, reject) ballots whose
//     two totals disagree.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrInvalidDimensions (malformed input).
//   - ErrDimensionMismatch, ErrInvalidCount, ErrBallotMismatch.
func Ingest(x, w *matrix.Dense, opts ...Option) (*Params, error) {
	o := gatherOptions(opts...)

	if err := matrix.Validate(x); err != nil {
		return nil, fmt.Errorf("%s: X: %w", methodIngest, err)
	}
	if err := matrix.Validate(w); err != nil {
		return nil, fmt.Errorf("%s: W: %w", methodIngest, err)
	}
	if x.Cols() != w.Rows() {
		return nil, fmt.Errorf("%s: X is %dx%d, W is %dx%d: %w",
			methodIngest, x.Rows(), x.Cols(), w.Rows(), w.Cols(), ErrDimensionMismatch)
	}
	if err := checkCounts("X", x); err != nil {
		return nil, err
	}
	if err := checkCounts("W", w); err != nil {
		return nil, err
	}

	p := &Params{
		x:          x.Clone(),
		w:          w.Clone(),
		candidates: x.Rows(),
		groups:     w.Cols(),
		ballots:    w.Rows(),
	}
	p.candidateVotes = make([]int, p.candidates)
	p.groupVotes = make([]int, p.groups)
	p.ballotVotes = make([]int, p.ballots)
	p.groupTotals = make([]int, p.ballots)
	p.invBallotVotes = make([]float64, p.ballots)

	var b, c, g, n int
	var col, row []float64
	var err error
	for b = 0; b < p.ballots; b++ {
		if col, err = p.x.Col(b); err != nil {
			return nil, fmt.Errorf("%s: X: %w", methodIngest, err)
		}
		if row, err = p.w.Row(b); err != nil {
			return nil, fmt.Errorf("%s: W: %w", methodIngest, err)
		}
		for c = 0; c < p.candidates; c++ {
			n = int(col[c]) // truncation toward zero; bounded by checkCounts
			if err = accumulate(n, &p.candidateVotes[c], &p.totalVotes, &p.ballotVotes[b]); err != nil {
				return nil, fmt.Errorf("%s: X[%d,%d]: %w", methodIngest, c, b, err)
			}
		}
		for g = 0; g < p.groups; g++ {
			n = int(row[g])
			if err = accumulate(n, &p.groupVotes[g], &p.groupTotals[b]); err != nil {
				return nil, fmt.Errorf("%s: W[%d,%d]: %w", methodIngest, b, g, err)
			}
		}
		if p.ballotVotes[b] == 0 {
			p.invBallotVotes[b] = math.Inf(1)
		} else {
			p.invBallotVotes[b] = 1.0 / float64(p.ballotVotes[b])
		}
		if p.ballotVotes[b] != p.groupTotals[b] {
			if o.strictBallots {
				return nil, fmt.Errorf("%s: ballot %d: candidates=%d groups=%d: %w",
					methodIngest, b, p.ballotVotes[b], p.groupTotals[b], ErrBallotMismatch)
			}
			p.mismatched = append(p.mismatched, b)
		}
	}

	return p, nil
}

// accumulate adds n (≥ 0) to every total, failing before any of them
// would overflow.
func accumulate(n int, totals ...*int) error {
	for _, t := range totals {
		if *t > math.MaxInt-n {
			return fmt.Errorf("total overflows int: %w", ErrInvalidCount)
		}
	}
	for _, t := range totals {
		*t += n
	}

	return nil
}

// checkCounts rejects cells that cannot be vote counts.
func checkCounts(name string, m *matrix.Dense) error {
	var bad error
	m.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= MaxCount {
			bad = fmt.Errorf("%s: %s[%d,%d]=%g: %w", methodIngest, name, i, j, v, ErrInvalidCount)
			return false
		}
		return true
	})

	return bad
}

// Candidates returns the number of candidates (rows of X).
func (p *Params) Candidates() int { return p.candidates }

// Groups returns the number of voter groups (columns of W).
func (p *Params) Groups() int { return p.groups }

// Ballots returns the number of ballot boxes.
func (p *Params) Ballots() int { return p.ballots }

// TotalVotes returns Σ_{c,b} X[c,b].
func (p *Params) TotalVotes() int { return p.totalVotes }

// CandidateVotes returns a copy of the per-candidate totals.
func (p *Params) CandidateVotes() []int { return append([]int(nil), p.candidateVotes...) }

// GroupVotes returns a copy of the per-group totals.
func (p *Params) GroupVotes() []int { return append([]int(nil), p.groupVotes...) }

// BallotVotes returns a copy of the per-ballot totals (candidate side).
func (p *Params) BallotVotes() []int { return append([]int(nil), p.ballotVotes...) }

// InvBallotVotes returns a copy of 1/BallotVotes[b].
func (p *Params) InvBallotVotes() []float64 { return append([]float64(nil), p.invBallotVotes...) }

// Mismatched lists ballots whose candidate and group totals disagree, in
// ascending order. Always empty when ingested WithStrictBallots.
func (p *Params) Mismatched() []int { return append([]int(nil), p.mismatched...) }

// Ballot returns the margins of ballot b.
//
// Errors:
//   - ErrIndexOutOfRange when b ∉ [0, Ballots()).
//
// Complexity: O(C+G).
func (p *Params) Ballot(b int) (Ballot, error) {
	if b < 0 || b >= p.ballots {
		return Ballot{}, fmt.Errorf("Ballot(%d): %w", b, ErrIndexOutOfRange)
	}
	groups, err := p.w.Row(b)
	if err != nil {
		return Ballot{}, err
	}
	candidates, err := p.x.Col(b)
	if err != nil {
		return Ballot{}, err
	}

	return Ballot{
		Index:      b,
		Votes:      p.ballotVotes[b],
		GroupTotal: p.groupTotals[b],
		Inv:        p.invBallotVotes[b],
		Groups:     groups,
		Candidates: candidates,
	}, nil
}
