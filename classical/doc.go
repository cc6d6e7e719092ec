// Package classical implements classical seasonal decomposition by moving
// averages.
//
// It splits a series with a known period into additive trend, seasonal, and
// residual components. The method is simple and fast, and serves as a
// baseline against which a singular spectrum grouping can be judged: when an
// SSA grouping is sound, its trend and seasonal reconstructions should stay
// close to the classical ones over the interior of the series.
//
// # Usage
//
//	decomp, err := classical.Decompose(series, 12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
//
// The trend is a centered moving average, so it is undefined (NaN) within
// half a period of either end; the residual inherits those gaps. Components()
// returns the three series keyed by name for CSV export or plotting.
package classical
