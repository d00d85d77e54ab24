// SPDX-License-Identifier: MIT

package margins

import "errors"

var (
	// ErrDimensionMismatch is returned when X.Cols() != W.Rows(): the two
	// inputs do not describe the same set of ballot boxes.
	ErrDimensionMismatch = errors.New("margins: X columns and W rows disagree")

	// ErrInvalidCount is returned when an input cell is negative, NaN or ±Inf.
	ErrInvalidCount = errors.New("margins: vote count must be finite, non-negative and below MaxCount")

	// ErrBallotMismatch is returned under WithStrictBallots when a ballot's
	// candidate-side total differs from its group-side total.
	ErrBallotMismatch = errors.New("margins: ballot candidate and group totals disagree")

	// ErrIndexOutOfRange is returned by accessors for indices outside the
	// derived dimension counts.
	ErrIndexOutOfRange = errors.New("margins: index out of range")
)
