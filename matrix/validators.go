// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks.
//  - Keep callers (margins, omega) minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Storage → Shape).

package matrix

// Validate is the contract checkpoint every consumer calls before reading or
// writing a matrix it did not build itself.
//
// Checks, in order:
//   - m != nil and m.data != nil            (ErrNilMatrix)
//   - m.Rows() > 0 and m.Cols() > 0         (ErrInvalidDimensions)
//   - len(m.data) == rows*cols              (ErrDimensionMismatch, checked
//     by division so a wrapped product cannot pass)
//
// A zero-value Dense{} fails the first check.
// Complexity: O(1).
func Validate(m *Dense) error {
	if m == nil || m.data == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if m.r <= 0 || m.c <= 0 {
		return validatorErrorf("Validate", ErrInvalidDimensions)
	}
	if len(m.data)%m.c != 0 || len(m.data)/m.c != m.r {
		return validatorErrorf("Validate", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure); Dense.Equal relies on it.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
