// SPDX-License-Identifier: MIT

package draws

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultSeed policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Used to give every ballot its own generator: DeriveSeed(seed, uint64(b)).
// The SplitMix64 finalizer gives strong bit diffusion, so neighbouring
// stream ids yield unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
