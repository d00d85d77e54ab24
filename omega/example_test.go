package omega_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/omegaset/draws"
	"github.com/katalvlaran/omegaset/margins"
	"github.com/katalvlaran/omegaset/matrix"
	"github.com/katalvlaran/omegaset/omega"
)

// ExampleGenerate samples three tables for a single ballot box with two
// candidates (6 and 4 votes) and two equally sized groups.
func ExampleGenerate() {
	x, _ := matrix.NewDenseFrom(2, 1, []float64{6, 4})
	w, _ := matrix.NewDenseFrom(1, 2, []float64{5, 5})
	p, _ := margins.Ingest(x, w)

	sets, err := omega.Generate(context.Background(), p, 5, 3, omega.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, tab := range sets[0].Samples {
		fmt.Println(tab.Sum(), tab.RowSums(), tab.ColSums())
	}
	// Output:
	// 10 [5 5] [6 4]
	// 10 [5 5] [6 4]
	// 10 [5 5] [6 4]
}

// ExampleStartingPoint prints the rounded independence table.
func ExampleStartingPoint() {
	x, _ := matrix.NewDenseFrom(3, 1, []float64{3, 3, 1})
	w, _ := matrix.NewDenseFrom(1, 2, []float64{4, 3})
	p, _ := margins.Ingest(x, w)

	start, _ := omega.StartingPoint(p, 0)
	fmt.Print(start)
	// Output:
	// [2, 2, 0]
	// [1, 1, 1]
}

// ExampleAttemptSwap moves one vote between two groups and two candidates.
func ExampleAttemptSwap() {
	tab, _ := matrix.NewDenseFrom(2, 2, []float64{3, 2, 3, 2})

	res, _ := omega.AttemptSwap(tab, draws.Draw{C1: 0, C2: 1, G1: 0, G2: 1})
	fmt.Println(res)
	fmt.Print(tab)
	// Output:
	// accepted
	// [2, 3]
	// [4, 1]
}
