// Package matrix provides the dense numeric container used by the sampler.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors
//     (At, Set, Add), deep copies (Clone), row/column extraction (Row, Col),
//     Fill, and margin reductions (RowSums, ColSums, Sum).
//   - Validate, the structural checkpoint consumers call before touching a
//     matrix they did not construct.
//   - A sentinel error set matched with errors.Is.
//
// Every value built by this package has rows > 0 and cols > 0; zero-area
// matrices are never constructed. Contingency tables store integral counts
// as float64 so the same container serves inputs and samples.
package matrix
