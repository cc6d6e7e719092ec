// Package stats provides statistical diagnostics for time series.
package stats

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gossa/timeseries"
)

var (
	// ErrInvalidLag indicates a non-positive lag count.
	ErrInvalidLag = errors.New("stats: lag count must be positive")

	// ErrTooFewObservations indicates the series is too short for the
	// requested diagnostic.
	ErrTooFewObservations = errors.New("stats: series is too short for the requested diagnostic")

	// ErrZeroVariance indicates a constant series, for which autocorrelation
	// is undefined.
	ErrZeroVariance = errors.New("stats: series has zero variance")
)

// ACF returns the sample autocorrelation of the series for lags 0 through
// maxLag. The lag-0 value is always 1.
func ACF(series *timeseries.Series, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, fmt.Errorf("acf: max lag %d: %w", maxLag, ErrInvalidLag)
	}
	n := series.Len()
	if maxLag >= n {
		return nil, fmt.Errorf("acf: max lag %d with %d observations: %w", maxLag, n, ErrTooFewObservations)
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil, fmt.Errorf("acf: %w", ErrZeroVariance)
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf, nil
}
