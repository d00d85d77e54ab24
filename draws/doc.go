// Package draws produces the index quadruples that drive swap moves.
//
// A swap draw is two candidate indices (C1, C2) and two group indices
// (G1, G2), each uniform over its dimension. When both dimensions have more
// than one category the second pair is re-drawn until C2 != C1 and G2 != G1.
//
// Randomness comes from a Source selected by Kind:
//
//   - KindMT19937: gonum's Mersenne Twister (default).
//   - KindMath:    math/rand with a fixed seed.
//   - KindSalsa20: a salsa20 keystream keyed by SHA3-256 of the seed.
//
// Every source is deterministic for a given seed. Per-stream seeds are
// obtained with DeriveSeed, so parallel chains never share generator state.
//
// Draws reach the sampler through the Stream interface. Two layouts exist:
//
//   - A Sampler is itself a Stream: each ballot owns one, seeded from
//     DeriveSeed(seed, ballot).
//   - A pre-generated Table replays draws either sequentially or with the
//     shared, ballot-offset partitioning (Table.Shared) that slices one
//     global table across all ballots.
//
// Concurrency: Sources and Samplers are NOT goroutine-safe. A Table is
// read-only after Pregenerate and may back any number of streams.
package draws
