// SPDX-License-Identifier: MIT

package omega

import (
	"fmt"

	"github.com/katalvlaran/omegaset/matrix"
)

// Stats counts swap outcomes over a chain.
type Stats struct {
	Accepted int
	Rejected int
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{Accepted: s.Accepted + o.Accepted, Rejected: s.Rejected + o.Rejected}
}

// Set is the Omega set of one ballot box: the ordered chain of sampled
// groups × candidates tables, starting point first.
// A Set is fully built before Generate returns it and must be treated as
// read-only afterwards.
type Set struct {
	Ballot  int             // originating ballot index
	Samples []*matrix.Dense // len == S
	Stats   Stats           // swap outcomes over the whole chain
}

// Len returns the number of samples in the chain.
func (s *Set) Len() int { return len(s.Samples) }

// At returns sample i.
//
// Errors:
//   - matrix.ErrOutOfRange when i ∉ [0, Len()).
func (s *Set) At(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(s.Samples) {
		return nil, fmt.Errorf("Set.At(%d): %w", i, matrix.ErrOutOfRange)
	}

	return s.Samples[i], nil
}
