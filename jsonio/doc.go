// Package jsonio reads sampler input and writes Omega sets as JSON.
//
// Input is a single object with two row-major matrices:
//
//	{"X": [[...], ...],   // candidates × ballots
//	 "W": [[...], ...]}   // ballots × groups
//
// Output is an array with one entry per ballot:
//
//	[{"b": 0, "matrices": [[[3, 2], [3, 2]], ...]}, ...]
//
// where every matrix is a groups × candidates table given as rows of groups.
package jsonio
