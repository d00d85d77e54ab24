// SPDX-License-Identifier: MIT

package omega

import "errors"

var (
	// ErrNoParams is returned when Generate or StartingPoint receives nil Params
	// (ingestion has not happened).
	ErrNoParams = errors.New("omega: nil params; run margins.Ingest first")

	// ErrBadChainSize is returned when steps (M) or samples (S) is ≤ 0, or
	// M*S overflows int.
	ErrBadChainSize = errors.New("omega: steps and samples must be > 0")

	// ErrBallotOutOfRange is returned for a ballot index outside [0, Ballots).
	ErrBallotOutOfRange = errors.New("omega: ballot index out of range")

	// ErrShapeMismatch is returned when a table does not have
	// groups × candidates shape for the Params it is checked against.
	ErrShapeMismatch = errors.New("omega: table shape does not match margins")

	// ErrNoStream is returned when a chain longer than one sample has no draws.
	ErrNoStream = errors.New("omega: nil draw stream")

	// ErrUnknownMode is returned by ParseMode for an unrecognised name.
	ErrUnknownMode = errors.New("omega: unknown draw mode")
)
