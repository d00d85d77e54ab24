package omega_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/omegaset/margins"
	"github.com/katalvlaran/omegaset/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a row-major matrix or fails the test.
func mustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)
	return m
}

// mustIngest ingests X and W or fails the test.
func mustIngest(t testing.TB, x, w *matrix.Dense) *margins.Params {
	t.Helper()
	p, err := margins.Ingest(x, w)
	require.NoError(t, err)
	return p
}

// scenarioParams is the 2-candidate, 2-group, single-ballot fixture:
// X = [6; 4], W = [5, 5].
func scenarioParams(t testing.TB) *margins.Params {
	return mustIngest(t, mustDense(t, 2, 1, 6, 4), mustDense(t, 1, 2, 5, 5))
}

// randomParams builds a consistent input: every ballot's candidate votes and
// group votes are two random splits of the same total.
func randomParams(t testing.TB, rng *rand.Rand, candidates, groups, ballots int) *margins.Params {
	t.Helper()
	x, err := matrix.NewDense(candidates, ballots)
	require.NoError(t, err)
	w, err := matrix.NewDense(ballots, groups)
	require.NoError(t, err)

	for b := 0; b < ballots; b++ {
		total := 1 + rng.Intn(200)
		for c, v := range split(rng, total, candidates) {
			require.NoError(t, x.Set(c, b, float64(v)))
		}
		for g, v := range split(rng, total, groups) {
			require.NoError(t, w.Set(b, g, float64(v)))
		}
	}

	return mustIngest(t, x, w)
}

// split distributes total into n non-negative integer parts.
func split(rng *rand.Rand, total, n int) []int {
	parts := make([]int, n)
	for i := 0; i < total; i++ {
		parts[rng.Intn(n)]++
	}
	return parts
}

// rows copies a table into nested slices for cmp.Diff.
func rows(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}
	return out
}
