// Package omega generates, per ballot box, a chain of integer contingency
// tables (groups × candidates) that respect the ballot's vote margins.
//
// The pipeline for one ballot b:
//
//  1. StartingPoint: the independence table W[b,g]*X[c,b], normalized,
//     floored and corrected by a greedy slack pass.
//  2. Chain: S-1 transitions of M swap attempts each. A swap moves one vote
//     between two cells of a row and back in another row, so every row sum
//     and column sum of the starting point is preserved exactly.
//  3. The S tables form the ballot's Omega Set.
//
// Generate runs step 1-3 for every ballot on a bounded worker pool and
// returns []*Set indexed by ballot. Draws come from the draws package,
// either one seeded Sampler per ballot (ModePerBallot, default) or a single
// pre-generated table sliced across ballots (ModeShared).
//
// Tables store counts as float64 inside *matrix.Dense; every value is a
// non-negative integer.
package omega
