package ssa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gossa/ssa"
)

// TestGroup_Valid verifies a well-formed grouping is accepted and exposed in
// name order.
func TestGroup_Valid(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	g, err := decomp.Group(map[string][]int{
		"trend":    {1},
		"seasonal": {2, 3},
		"noise":    {4, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"noise", "seasonal", "trend"}, g.Names())
	assert.Equal(t, []int{2, 3}, g.Indices("seasonal"))
	assert.Nil(t, g.Indices("unknown"))
}

// TestGroup_IndexOutOfRange verifies every index must lie in [1, d] and the
// failure names the offending group and index.
func TestGroup_IndexOutOfRange(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	for _, bad := range []int{-1, 0, 6, 100} {
		_, err := decomp.Group(map[string][]int{"noise": {1, bad}})
		assert.ErrorIs(t, err, ssa.ErrIndexOutOfRange, "index %d", bad)
		assert.ErrorContains(t, err, `group "noise"`)
	}

	_, err = decomp.Group(map[string][]int{"trend": {7}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "index 7")
	assert.ErrorContains(t, err, "[1, 5]")
}

// TestGroup_RangeReflectsTruncation verifies validation runs against the
// retained component count, not min(L, K).
func TestGroup_RangeReflectsTruncation(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, &ssa.Options{MaxComponents: 3})
	require.NoError(t, err)

	_, err = decomp.Group(map[string][]int{"a": {1, 2, 3}})
	assert.NoError(t, err)

	_, err = decomp.Group(map[string][]int{"a": {4}})
	assert.ErrorIs(t, err, ssa.ErrIndexOutOfRange)
}

// TestGroup_OverlapAndDuplicates verifies groups may share and repeat
// indices; the grouper only checks range.
func TestGroup_OverlapAndDuplicates(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	g, err := decomp.Group(map[string][]int{
		"a": {1, 2},
		"b": {2, 3},
		"c": {1, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, g.Indices("c"))
}

// TestGroup_Empty verifies an empty grouping and an empty index list are
// both legal.
func TestGroup_Empty(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	g, err := decomp.Group(map[string][]int{})
	require.NoError(t, err)
	assert.Empty(t, g.Names())

	g, err = decomp.Group(map[string][]int{"nothing": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"nothing"}, g.Names())
	assert.Empty(t, g.Indices("nothing"))
}

// TestGroup_CopiesInput verifies the grouping is detached from the caller's
// map and slices.
func TestGroup_CopiesInput(t *testing.T) {
	decomp, err := ssa.Decompose(rangeSeries(10), 5, nil)
	require.NoError(t, err)

	indices := []int{1, 2}
	g, err := decomp.Group(map[string][]int{"a": indices})
	require.NoError(t, err)

	indices[0] = 99
	assert.Equal(t, []int{1, 2}, g.Indices("a"))

	got := g.Indices("a")
	got[0] = 42
	assert.Equal(t, []int{1, 2}, g.Indices("a"))
}
