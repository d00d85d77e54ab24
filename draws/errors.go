// SPDX-License-Identifier: MIT

package draws

import "errors"

var (
	// ErrUnknownKind is returned for a source name or Kind outside the known set.
	ErrUnknownKind = errors.New("draws: unknown source kind")

	// ErrBadBound is returned when a draw range or dimension count is ≤ 0.
	ErrBadBound = errors.New("draws: bound must be > 0")

	// ErrNilSource is returned when a Sampler is built without a Source.
	ErrNilSource = errors.New("draws: nil source")

	// ErrTableSize is returned when a table length is ≤ 0 or does not match
	// the steps × samples layout requested from it.
	ErrTableSize = errors.New("draws: invalid table size")
)
