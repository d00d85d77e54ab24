// Package margins derives the aggregate vote totals of an ecological-inference
// input.
//
// Ingest takes X (candidates × ballots) and W (ballots × groups), copies
// both, and computes per-candidate, per-group and per-ballot totals plus
// the inverse ballot totals. The resulting Params is immutable and is the
// only state the sampler reads, so independent Ingest/Generate cycles never
// interfere with one another.
package margins
