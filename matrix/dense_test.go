// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/katalvlaran/omegaset/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseOversized rejects shapes whose storage cannot be obtained,
// including products that wrap around int.
func TestNewDenseOversized(t *testing.T) {
	wraps := 1 << (bits.UintSize / 2)    // wraps*wraps == 0 in int
	tooBig := 1 << (bits.UintSize/2 - 1) // tooBig*tooBig fits in int, its bytes do not
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"product wraps to zero", wraps, wraps},
		{"byte size overflows", tooBig, tooBig},
		{"max int rows", math.MaxInt, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
			require.Nil(t, m)
			require.ErrorIs(t, matrix.Validate(m), matrix.ErrNilMatrix)
		})
	}
}

// TestNewDenseZeroFilled verifies a fresh matrix holds only zeros.
func TestNewDenseZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 0.0, m.Sum())
	require.Equal(t, 0.0, m.Min())
}

// TestNewDenseFrom checks row-major ingestion and its guards.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v) // row-major: second row starts at index 3

	_, err = matrix.NewDenseFrom(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Caller slice is copied, not aliased.
	src := []float64{7, 8}
	m, err = matrix.NewDenseFrom(1, 2, src)
	require.NoError(t, err)
	src[0] = 100
	v, _ = m.At(0, 0)
	require.Equal(t, 7.0, v)
}

// TestAtSetOutOfBounds ensures accessors return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite-only numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.Inf(-1)), matrix.ErrNaNInf)
}

// TestSetAddGet validates Set/Add followed by At.
func TestSetAddGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	require.NoError(t, m.Add(1, 2, -2))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	require.True(t, clone.Equal(m))

	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
	require.False(t, clone.Equal(m))
}

// TestRowCol verifies extraction returns fresh slices with bounds checks.
func TestRowCol(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	row[0] = 99 // mutation must not leak back
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFillAndSums covers Fill and the margin reductions.
func TestFillAndSums(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Fill(2))

	require.Equal(t, []float64{6, 6}, m.RowSums())
	require.Equal(t, []float64{4, 4, 4}, m.ColSums())
	require.Equal(t, 12.0, m.Sum())

	_ = m.Set(1, 1, -1)
	require.Equal(t, -1.0, m.Min())
}

// TestEqual covers shape and nil handling.
func TestEqual(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 2)
	c, _ := matrix.NewDense(1, 4)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	var n *matrix.Dense
	require.True(t, n.Equal(nil))
}

// TestDoEarlyStop ensures the visitor order is row-major and stops on false.
func TestDoEarlyStop(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []float64{1, 2}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
