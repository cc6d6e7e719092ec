package classical

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/gossa/timeseries"
)

var (
	// ErrInvalidPeriod indicates a period below two; a period of one has no
	// seasonal structure to estimate.
	ErrInvalidPeriod = errors.New("classical: period must be at least 2")

	// ErrShortSeries indicates the series does not cover two full periods,
	// the minimum for a seasonal average.
	ErrShortSeries = errors.New("classical: series must cover at least two full periods")
)

// Decomposition holds the additive components of a classical decomposition:
// series = Trend + Seasonal + Residual. Trend and Residual are NaN within
// half a period of either end, where the centered moving average has no
// support.
type Decomposition struct {
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
}

// Decompose splits a series into trend, seasonal, and residual components.
// The trend is a centered moving average of the given period (a 2xMA for
// even periods), the seasonal component is the period-wise average of the
// detrended series centered to zero mean, and the residual is what remains.
func Decompose(series *timeseries.Series, period int) (*Decomposition, error) {
	if period < 2 {
		return nil, fmt.Errorf("decompose: period %d: %w", period, ErrInvalidPeriod)
	}
	if series == nil || series.Len() < 2*period {
		n := 0
		if series != nil {
			n = series.Len()
		}
		return nil, fmt.Errorf("decompose: %d observations with period %d: %w", n, period, ErrShortSeries)
	}

	n := series.Len()
	trend := movingAverageTrend(series.Values, period)

	detrended := make([]float64, n)
	for i, v := range series.Values {
		detrended[i] = v - trend[i]
	}

	pattern := seasonalPattern(detrended, period)

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i, v := range series.Values {
		seasonal[i] = pattern[i%period]
		residual[i] = v - trend[i] - seasonal[i]
	}

	return &Decomposition{
		Trend:    component(series, trend, "trend"),
		Seasonal: component(series, seasonal, "seasonal"),
		Residual: component(series, residual, "residual"),
		Period:   period,
	}, nil
}

// Components returns the three components keyed by name, in the shape
// consumed by CSV export and plotting.
func (d *Decomposition) Components() map[string]*timeseries.Series {
	return map[string]*timeseries.Series{
		"trend":    d.Trend,
		"seasonal": d.Seasonal,
		"residual": d.Residual,
	}
}

func component(src *timeseries.Series, values []float64, name string) *timeseries.Series {
	timestamps := make([]time.Time, len(src.Timestamps))
	copy(timestamps, src.Timestamps)
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}
}

// movingAverageTrend computes the centered moving average of the given
// period. Positions without full support are NaN. Even periods use the
// standard 2xMA with half weights at both window ends.
func movingAverageTrend(values []float64, period int) []float64 {
	n := len(values)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2
	if period%2 == 0 {
		for i := half; i < n-half; i++ {
			sum := 0.5*values[i-half] + 0.5*values[i+half]
			for j := i - half + 1; j < i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
		return trend
	}
	for i := half; i < n-half; i++ {
		sum := 0.0
		for j := i - half; j <= i+half; j++ {
			sum += values[j]
		}
		trend[i] = sum / float64(period)
	}
	return trend
}

// seasonalPattern averages the detrended values by position within the
// period, skipping the NaN edges, and centers the result so the seasonal
// component carries no level.
func seasonalPattern(detrended []float64, period int) []float64 {
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i, v := range detrended {
		if math.IsNaN(v) {
			continue
		}
		pattern[i%period] += v
		counts[i%period]++
	}
	for i := range pattern {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
	}

	mean := 0.0
	for _, v := range pattern {
		mean += v
	}
	mean /= float64(period)
	for i := range pattern {
		pattern[i] -= mean
	}
	return pattern
}
