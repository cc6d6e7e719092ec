// Package stats provides statistical diagnostics for time series.
//
// The package focuses on residual checking: once a series has been
// decomposed and a noise group reconstructed, the autocorrelation function
// and the Ljung-Box test judge whether that group is consistent with white
// noise. Leftover autocorrelation in the residual means the grouping left
// structure behind.
//
// # Autocorrelation
//
// Sample autocorrelation for lags 0 through maxLag:
//
//	acf, err := stats.ACF(residual, 20)
//	// acf[0] == 1; acf[k] is the correlation at lag k
//
// # Whiteness Testing
//
// The Ljung-Box test aggregates the autocorrelations into a single verdict:
//
//	lb, err := stats.LjungBox(residual, 20)
//	if lb.PValue > 0.05 {
//	    // no evidence of leftover structure
//	}
package stats
