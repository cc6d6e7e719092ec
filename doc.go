// Package gossa provides Singular Spectrum Analysis for time series.
//
// GoSSA decomposes a univariate time series into additive components (trend,
// oscillatory modes, noise) without assuming a parametric model, and
// reconstructs chosen component groups back into time-domain series. The
// method embeds the series into a Hankel trajectory matrix, factorizes it
// with a singular value decomposition, and recovers components by grouping
// eigentriples and diagonal averaging.
//
// # Features
//
//   - Trajectory matrix embedding with an explicit window length
//   - Dense SVD decomposition into ordered eigentriples
//   - Named grouping of eigentriples with validation
//   - Reconstruction by diagonal averaging, with linearity guarantees
//   - Singular spectrum and component contribution diagnostics
//   - W-correlation matrices for judging group separability
//   - Classical moving-average decomposition as a comparison baseline
//   - Residual whiteness diagnostics (ACF, Ljung-Box)
//   - Synthetic signal generation with reproducible seeds
//   - CSV import/export and plot rendering of results
//
// # Quick Start
//
// Decompose a series and split it into trend, seasonal, and noise parts:
//
//	series := timeseries.New(values)
//	decomp, _ := ssa.Decompose(series, 24, nil)
//	comps, _ := decomp.Reconstruct(map[string][]int{
//	    "trend":    {1, 2},
//	    "seasonal": {3, 4},
//	    "noise":    {5, 6, 7, 8},
//	})
//
// Inspect the spectrum before choosing groups:
//
//	sigmas := decomp.SingularValues()
//	shares := decomp.Contributions()
//
// # Packages
//
// The library is organized into the following packages:
//
//   - ssa: Embedding, decomposition, grouping, and reconstruction
//   - timeseries: Time series data structures and CSV utilities
//   - classical: Moving-average decomposition baseline
//   - stats: Autocorrelation and residual whiteness diagnostics
//   - signal: Synthetic signal generation for experiments
//   - render: Plot rendering of decomposition results
//
// # References
//
//   - Golyandina, N., Nekrutkin, V., & Zhigljavsky, A. (2001). Analysis of
//     Time Series Structure: SSA and Related Techniques
//   - Golyandina, N., & Zhigljavsky, A. (2013). Singular Spectrum Analysis
//     for Time Series
package gossa
