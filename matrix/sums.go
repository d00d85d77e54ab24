// SPDX-License-Identifier: MIT
// Package: matrix
//
// Row/column/total reductions over *Dense. These are the margin views of a
// contingency table: row sums are group totals, column sums candidate totals.
//
// Determinism:
//   - Fixed i→j traversal; floating-point summation order never changes.

package matrix

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: Time O(r*c), Space O(r).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[i] += m.data[base+j]
		}
	}

	return out
}

// ColSums returns Σ_i m[i,j] for every column j.
// Complexity: Time O(r*c), Space O(c).
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out
}

// Sum returns the total of all cells.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var s float64
	var k int
	for k = range m.data {
		s += m.data[k]
	}

	return s
}

// Min returns the smallest cell value.
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	lo := m.data[0]
	var k int
	for k = 1; k < len(m.data); k++ {
		if m.data[k] < lo {
			lo = m.data[k]
		}
	}

	return lo
}
