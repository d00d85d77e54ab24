// Package omegaset samples Omega sets for ecological inference on
// ballot-box data.
//
// Given, per ballot box, the votes of every candidate (X, candidates ×
// ballots) and the voters of every demographic group (W, ballots × groups),
// omegaset builds for each ballot a Markov chain of integer groups ×
// candidates tables. Every table in a ballot's chain has the same row sums
// (votes per group) and column sums (votes per candidate).
//
// Layout:
//
//	matrix/        row-major Dense container, validators, margin sums
//	margins/       Ingest: copy-on-ingest Params with derived vote totals
//	draws/         seeded sources (MT19937, math/rand, salsa20), swap draws
//	omega/         StartingPoint, AttemptSwap, Chain, Generate
//	jsonio/        {"X","W"} input and Omega set output
//	config/        YAML run configuration
//	cmd/omegaset/  cobra CLI
//
// Quick start:
//
//	x, w, _ := jsonio.ReadInputFile("district.json")
//	p, _ := margins.Ingest(x, w)
//	sets, _ := omega.Generate(ctx, p, 100, 10, omega.WithSeed(42))
//	_ = jsonio.WriteSetsFile("sets.json", sets)
package omegaset
