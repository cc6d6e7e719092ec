package ssa_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gossa/ssa"
	"github.com/sartorproj/gossa/timeseries"
)

// TestReconstruct_FullIdentity verifies the group of all components
// reproduces the input series.
func TestReconstruct_FullIdentity(t *testing.T) {
	series := rangeSeries(10)
	decomp, err := ssa.Decompose(series, 5, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"all": {1, 2, 3, 4, 5}})
	require.NoError(t, err)

	all := comps["all"]
	require.Equal(t, 10, all.Len())
	for i, v := range series.Values {
		assert.InDelta(t, v, all.Values[i], 1e-9, "position %d", i)
	}
}

// TestReconstruct_BoundaryIdentity repeats the identity check at the
// smallest legal window.
func TestReconstruct_BoundaryIdentity(t *testing.T) {
	series := rangeSeries(5)
	decomp, err := ssa.Decompose(series, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, decomp.Len())

	comps, err := decomp.Reconstruct(map[string][]int{"all": {1, 2}})
	require.NoError(t, err)

	for i, v := range series.Values {
		assert.InDelta(t, v, comps["all"].Values[i], 1e-9, "position %d", i)
	}
}

// TestReconstruct_Additivity verifies reconstruction is linear: two disjoint
// groups covering every component sum to the original series.
func TestReconstruct_Additivity(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 0.5*float64(i) + 3*math.Sin(2*math.Pi*float64(i)/8)
	}
	series := timeseries.New(values)

	decomp, err := ssa.Decompose(series, 8, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{
		"leading": {1, 2, 3},
		"rest":    {4, 5, 6, 7, 8},
	})
	require.NoError(t, err)

	total, err := comps["leading"].Add(comps["rest"])
	require.NoError(t, err)

	for i, v := range series.Values {
		assert.InDelta(t, v, total.Values[i], 1e-9, "position %d", i)
	}
}

// TestReconstruct_SinusoidPair verifies the leading pair of a noiseless
// sinusoid reconstructs the signal.
func TestReconstruct_SinusoidPair(t *testing.T) {
	series := sineSeries(100, 10)
	decomp, err := ssa.Decompose(series, 20, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"cycle": {1, 2}})
	require.NoError(t, err)

	for i, v := range series.Values {
		assert.InDelta(t, v, comps["cycle"].Values[i], 1e-6, "position %d", i)
	}
}

// TestReconstruct_EmptyGroup verifies an empty index list reconstructs to
// the zero series of full length.
func TestReconstruct_EmptyGroup(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(12), 4, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"nothing": {}})
	require.NoError(t, err)

	nothing := comps["nothing"]
	require.Equal(t, 12, nothing.Len())
	assert.Equal(t, "nothing", nothing.Name)
	for i, v := range nothing.Values {
		assert.Zero(t, v, "position %d", i)
	}
}

// TestReconstruct_Metadata verifies each reconstructed series carries its
// group name and the timestamps of the input.
func TestReconstruct_Metadata(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, 10)
	for i := range timestamps {
		timestamps[i] = base.AddDate(0, 0, i)
	}
	series, err := timeseries.NewWithTimestamps(timestamps, rangeSeries(10).Values)
	require.NoError(t, err)

	decomp, err := ssa.Decompose(series, 4, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"trend": {1}, "rest": {2, 3, 4}})
	require.NoError(t, err)

	require.Len(t, comps, 2, "no residual group is synthesized")
	for name, comp := range comps {
		assert.Equal(t, name, comp.Name)
		assert.Equal(t, timestamps, comp.Timestamps)
	}
}

// TestReconstruct_DuplicateIndices verifies a repeated index contributes
// once per occurrence.
func TestReconstruct_DuplicateIndices(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(15), 5, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{
		"single": {1},
		"double": {1, 1},
	})
	require.NoError(t, err)

	for i := range comps["single"].Values {
		assert.InDelta(t, 2*comps["single"].Values[i], comps["double"].Values[i], 1e-12, "position %d", i)
	}
}

// TestReconstruct_BadIndex verifies the grouping failure propagates through
// the convenience entry point with no partial result.
func TestReconstruct_BadIndex(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"ok": {1}, "bad": {6}})
	assert.Nil(t, comps)
	assert.ErrorIs(t, err, ssa.ErrIndexOutOfRange)
}

// TestReconstruct_ZeroSeries verifies a zero series reconstructs to zero.
func TestReconstruct_ZeroSeries(t *testing.T) {
	decomp, err := ssa.Decompose(timeseries.New(make([]float64, 9)), 3, nil)
	require.NoError(t, err)

	comps, err := decomp.Reconstruct(map[string][]int{"all": {1, 2, 3}})
	require.NoError(t, err)
	for i, v := range comps["all"].Values {
		assert.Zero(t, v, "position %d", i)
	}
}
