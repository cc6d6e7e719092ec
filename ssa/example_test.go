package ssa_test

import (
	"fmt"
	"log"
	"math"

	"github.com/sartorproj/gossa/ssa"
	"github.com/sartorproj/gossa/timeseries"
)

// ExampleEmbed shows the Hankel structure of the trajectory matrix.
func ExampleEmbed() {
	series := timeseries.New([]float64{1, 2, 3, 4, 5})

	tm, err := ssa.Embed(series, 2)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := tm.Dims()
	fmt.Printf("%dx%d\n", rows, cols)
	fmt.Println(tm.At(0, 0), tm.At(0, 1), tm.At(0, 2), tm.At(0, 3))
	fmt.Println(tm.At(1, 0), tm.At(1, 1), tm.At(1, 2), tm.At(1, 3))
	// Output:
	// 2x4
	// 1 2 3 4
	// 2 3 4 5
}

// ExampleDecompose runs the full pipeline and reconstructs the input from
// all components.
func ExampleDecompose() {
	series := timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	decomp, err := ssa.Decompose(series, 5, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("components:", decomp.Len())

	comps, err := decomp.Reconstruct(map[string][]int{"all": {1, 2, 3, 4, 5}})
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range comps["all"].Values {
		fmt.Printf("%.0f ", v)
	}
	// Output:
	// components: 5
	// 1 2 3 4 5 6 7 8 9 10
}

// ExampleWCorrelation checks how separable two groupings are; identical
// groups correlate perfectly.
func ExampleWCorrelation() {
	values := make([]float64, 60)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 10)
	}

	decomp, err := ssa.Decompose(timeseries.New(values), 12, nil)
	if err != nil {
		log.Fatal(err)
	}

	wc, err := ssa.WCorrelation(decomp, map[string][]int{
		"a": {1, 2},
		"b": {1, 2},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s-%s: %.2f\n", wc.Names[0], wc.Names[1], wc.Matrix[0][1])
	// Output:
	// a-b: 1.00
}
