// Package ssa implements Singular Spectrum Analysis for univariate time
// series.
//
// SSA decomposes a series into additive components (trend, oscillatory
// modes, noise) without assuming a parametric model. The pipeline has four
// stages: embedding the series into a Hankel trajectory matrix, singular
// value decomposition of that matrix, grouping of the resulting
// eigentriples, and reconstruction of each group back into a series by
// diagonal averaging.
//
// # Decomposing a Series
//
// Decompose with an explicit window length L (2 <= L <= N-1):
//
//	series := timeseries.New(values)
//	decomp, err := ssa.Decompose(series, 24, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Pass options to truncate the decomposition to the leading components:
//
//	opts := &ssa.Options{MaxComponents: 10}
//	decomp, err := ssa.Decompose(series, 24, opts)
//
// Long factorizations can be abandoned through a context:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//	decomp, err := ssa.DecomposeContext(ctx, series, 24, nil)
//
// The embedding stage is also available on its own:
//
//	tm, err := ssa.Embed(series, 24)
//	decomp, err := ssa.DecomposeMatrix(tm, nil)
//
// # Inspecting the Spectrum
//
// The singular spectrum guides the choice of groups:
//
//	sigmas := decomp.SingularValues() // descending
//	shares := decomp.Contributions()  // sigma_i^2 / sum(sigma^2)
//	triples := decomp.EigenTriples()
//
// # Grouping and Reconstruction
//
// Groups are named sets of 1-based eigentriple indices:
//
//	components, err := decomp.Reconstruct(map[string][]int{
//	    "trend":    {1},
//	    "seasonal": {2, 3},
//	    "noise":    {4, 5, 6},
//	})
//	// components["trend"], components["seasonal"], components["noise"]
//
// Each reconstructed series has the length and timestamps of the input.
// Reconstruction is linear, so disjoint groups covering every component sum
// back to the original series.
//
// # Judging a Grouping
//
// The w-correlation matrix measures how separable reconstructed groups are:
//
//	wc, err := ssa.WCorrelation(decomp, groups)
//	// wc.Matrix[i][j] near 0: well separated
//	// wc.Matrix[i][j] near 1: the grouping splits one component
//
// # Errors
//
// Failures are reported against sentinel errors (ErrEmptySeries,
// ErrInvalidWindowLength, ErrIndexOutOfRange, ErrNumericFailure,
// ErrShapeMismatch) and can be tested with errors.Is.
package ssa
