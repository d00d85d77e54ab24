// SPDX-License-Identifier: MIT

package margins

// DefaultStrictBallots keeps the lenient policy: ballots whose candidate and
// group totals disagree are recorded in Params.Mismatched and ingestion proceeds.
const DefaultStrictBallots = false

// Option mutates internal ingestion options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strictBallots bool // DefaultStrictBallots
}

// WithStrictBallots rejects any ballot where Σ_c X[c,b] != Σ_g W[b,g]
// with ErrBallotMismatch.
func WithStrictBallots() Option {
	return func(o *Options) { o.strictBallots = true }
}

// gatherOptions applies setters over documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{strictBallots: DefaultStrictBallots}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
