package ssa

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gossa/timeseries"
)

// TrajectoryMatrix is the L x K Hankel matrix built by embedding a series of
// length N with window length L, where K = N - L + 1. Column j holds the
// lagged window series[j : j+L], so entry (i, j) is series[i+j] and every
// anti-diagonal i+j = const is constant.
//
// The matrix is a read-only view over the backing series: it implements
// gonum's mat.Matrix without materializing L*K storage, and the SVD consumes
// it through that interface.
type TrajectoryMatrix struct {
	values     []float64
	timestamps []time.Time
	windowLen  int
	cols       int
}

// Embed builds the trajectory matrix for a series with the given window
// length. The series must contain at least two observations and the window
// length must satisfy 2 <= windowLength <= N-1; the series length check runs
// first, so a too-short series reports ErrEmptySeries regardless of the
// window length supplied.
func Embed(series *timeseries.Series, windowLength int) (*TrajectoryMatrix, error) {
	n := series.Len()
	if n < 2 {
		return nil, fmt.Errorf("embed: series has %d observations: %w", n, ErrEmptySeries)
	}
	if windowLength < 2 || windowLength > n-1 {
		return nil, fmt.Errorf("embed: window length %d with series length %d: %w", windowLength, n, ErrInvalidWindowLength)
	}

	return &TrajectoryMatrix{
		values:     series.Values,
		timestamps: series.Timestamps,
		windowLen:  windowLength,
		cols:       n - windowLength + 1,
	}, nil
}

// Dims returns the matrix dimensions L (rows) and K (columns).
func (t *TrajectoryMatrix) Dims() (r, c int) {
	return t.windowLen, t.cols
}

// At returns the entry at row i, column j, which is series[i+j].
func (t *TrajectoryMatrix) At(i, j int) float64 {
	if i < 0 || i >= t.windowLen {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= t.cols {
		panic(mat.ErrColAccess)
	}
	return t.values[i+j]
}

// T returns the transpose of the matrix.
func (t *TrajectoryMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: t}
}

// WindowLength returns the embedding window length L.
func (t *TrajectoryMatrix) WindowLength() int {
	return t.windowLen
}

// SeriesLength returns the length N of the embedded series.
func (t *TrajectoryMatrix) SeriesLength() int {
	return len(t.values)
}
