// Package signal generates synthetic time series for experiments and demos.
package signal

import (
	"errors"
	"math"
	"math/rand"

	"github.com/sartorproj/gossa/timeseries"
)

// Generator produces random signal components from a deterministic source.
// The same seed yields the same signals. A Generator is not safe for
// concurrent use; create one per goroutine.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Noise returns n samples of centered Gaussian noise with the given standard
// deviation.
func (g *Generator) Noise(n int, std float64) *timeseries.Series {
	if n <= 0 {
		return &timeseries.Series{Values: []float64{}}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = std * g.rng.NormFloat64()
	}

	s := timeseries.New(values)
	s.Name = "noise"
	return s
}

// RandomWalk returns a random walk of length n, the cumulative sum of unit
// Gaussian increments.
func (g *Generator) RandomWalk(n int) *timeseries.Series {
	if n <= 0 {
		return &timeseries.Series{Values: []float64{}}
	}

	values := make([]float64, n)
	sum := 0.0
	for i := range values {
		sum += g.rng.NormFloat64()
		values[i] = sum
	}

	s := timeseries.New(values)
	s.Name = "random_walk"
	return s
}

// Sine returns n samples of amplitude * sin(2*pi*t/period + phase), with t
// in sample units. A non-positive n or period yields an empty series.
func Sine(n int, amplitude, period, phase float64) *timeseries.Series {
	if n <= 0 || period <= 0 {
		return &timeseries.Series{Values: []float64{}}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = amplitude * math.Sin(2*math.Pi*float64(i)/period+phase)
	}

	s := timeseries.New(values)
	s.Name = "sine"
	return s
}

// LinearTrend returns n samples of intercept + slope*t, with t in sample
// units.
func LinearTrend(n int, intercept, slope float64) *timeseries.Series {
	if n <= 0 {
		return &timeseries.Series{Values: []float64{}}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = intercept + slope*float64(i)
	}

	s := timeseries.New(values)
	s.Name = "trend"
	return s
}

// Sum returns the elementwise sum of the given series, which must all have
// the same length. Timestamps are taken from the first series.
func Sum(series ...*timeseries.Series) (*timeseries.Series, error) {
	if len(series) == 0 {
		return nil, errors.New("at least one series is required")
	}

	total := series[0].Copy()
	for _, s := range series[1:] {
		summed, err := total.Add(s)
		if err != nil {
			return nil, err
		}
		total = summed
	}
	total.Name = "signal"
	return total, nil
}
