package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gossa/timeseries"
)

// LjungBoxResult reports a Ljung-Box portmanteau test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
}

// LjungBox tests the series for autocorrelation up to the given lag. The
// null hypothesis is that the series is white noise; small p-values reject
// it. The residual of a sound decomposition should not reject. Degrees of
// freedom equal the lag count, since nothing here estimates model
// parameters.
func LjungBox(series *timeseries.Series, lags int) (*LjungBoxResult, error) {
	n := series.Len()
	if n < 10 {
		return nil, fmt.Errorf("ljung-box: %d observations: %w", n, ErrTooFewObservations)
	}

	acf, err := ACF(series, lags)
	if err != nil {
		return nil, fmt.Errorf("ljung-box: %w", err)
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k] / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	chi := distuv.ChiSquared{K: float64(lags)}
	return &LjungBoxResult{
		Statistic: q,
		PValue:    chi.Survival(q),
		Lags:      lags,
	}, nil
}
