package ssa

import (
	"math"
	"sort"
)

// WCorrelationResult holds the weighted correlation matrix between
// reconstructed groups. Matrix[i][j] is the w-correlation between the i-th
// and j-th entries of Names.
type WCorrelationResult struct {
	Names  []string
	Matrix [][]float64
}

// WCorrelation reconstructs the given groups and computes their pairwise
// weighted correlations under the diagonal-averaging inner product: position
// t carries weight w_t = min(t+1, L, K, N-t), the number of trajectory
// matrix entries averaged onto it. Well-separated components have
// w-correlation near zero; values near one signal that the grouping splits a
// single component.
//
// Names are sorted lexicographically. A group that reconstructs to zero
// energy has zero correlation with every group, itself included.
func WCorrelation(d *Decomposition, groups map[string][]int) (*WCorrelationResult, error) {
	reconstructed, err := d.Reconstruct(groups)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(reconstructed))
	for name := range reconstructed {
		names = append(names, name)
	}
	sort.Strings(names)

	n := d.seriesLen
	weights := make([]float64, n)
	for t := 0; t < n; t++ {
		weights[t] = float64(min(t+1, d.windowLen, d.cols, n-t))
	}

	vecs := make([][]float64, len(names))
	norms := make([]float64, len(names))
	for i, name := range names {
		vecs[i] = reconstructed[name].Values
		norms[i] = math.Sqrt(wdot(weights, vecs[i], vecs[i]))
	}

	matrix := make([][]float64, len(names))
	for i := range matrix {
		matrix[i] = make([]float64, len(names))
	}
	for i := range names {
		for j := 0; j <= i; j++ {
			var c float64
			if norms[i] > 0 && norms[j] > 0 {
				c = wdot(weights, vecs[i], vecs[j]) / (norms[i] * norms[j])
			}
			matrix[i][j] = c
			matrix[j][i] = c
		}
	}

	return &WCorrelationResult{Names: names, Matrix: matrix}, nil
}

func wdot(weights, a, b []float64) float64 {
	sum := 0.0
	for t := range weights {
		sum += weights[t] * a[t] * b[t]
	}
	return sum
}
