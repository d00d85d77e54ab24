package omega_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/omega"
)

// sinks to defeat dead-code elimination
var (
	sinkSets  []*omega.Set
	sinkStats omega.Stats
)

func BenchmarkChain(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			p := randomParams(b, rng, n, n, 1)
			start, err := omega.StartingPoint(p, 0)
			if err != nil {
				b.Fatal(err)
			}
			src, _ := draws.NewSource(draws.KindMT19937, 1)
			sampler, err := draws.NewSampler(src, n, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, st, err := omega.Chain(start, sampler, 100, 10)
				if err != nil {
					b.Fatal(err)
				}
				sinkStats = st
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(4242))
	p := randomParams(b, rng, 8, 6, 64)
	for _, mode := range []omega.Mode{omega.ModePerBallot, omega.ModeShared} {
		b.Run(mode.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sets, err := omega.Generate(context.Background(), p, 50, 20, omega.WithMode(mode))
				if err != nil {
					b.Fatal(err)
				}
				sinkSets = sets
			}
		})
	}
}
