package ssa_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sartorproj/gossa/ssa"
	"github.com/sartorproj/gossa/timeseries"
)

// benchSeries builds a trend + seasonality + noise series with a fixed seed
// so runs are comparable.
func benchSeries(n int) *timeseries.Series {
	r := rand.New(rand.NewSource(7))
	values := make([]float64, n)
	for i := range values {
		ti := float64(i)
		values[i] = 0.05*ti + math.Sin(2*math.Pi*ti/12) + 0.25*r.NormFloat64()
	}
	return timeseries.New(values)
}

func BenchmarkDecompose(b *testing.B) {
	series := benchSeries(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ssa.Decompose(series, 50, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReconstruct(b *testing.B) {
	decomp, err := ssa.Decompose(benchSeries(500), 50, nil)
	if err != nil {
		b.Fatal(err)
	}
	groups := map[string][]int{
		"trend":    {1},
		"seasonal": {2, 3},
		"noise":    {4, 5, 6, 7, 8, 9, 10},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decomp.Reconstruct(groups); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWCorrelation(b *testing.B) {
	decomp, err := ssa.Decompose(benchSeries(500), 50, nil)
	if err != nil {
		b.Fatal(err)
	}
	groups := map[string][]int{
		"trend":    {1},
		"seasonal": {2, 3},
		"noise":    {4, 5, 6, 7, 8, 9, 10},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ssa.WCorrelation(decomp, groups); err != nil {
			b.Fatal(err)
		}
	}
}
