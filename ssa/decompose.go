package ssa

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gossa/timeseries"
)

// Options holds options for the decomposition stage.
type Options struct {
	// MaxComponents truncates the decomposition to the leading components
	// after ordering by singular value. Zero keeps all min(L, K)
	// eigentriples; larger values are capped at that count.
	MaxComponents int
}

// DefaultOptions returns default options for decomposition.
func DefaultOptions() *Options {
	return &Options{}
}

// EigenTriple is one term of the singular value decomposition of the
// trajectory matrix: a singular value together with its left and right
// singular vectors.
type EigenTriple struct {
	Index int       // 1-based rank after ordering by singular value, descending
	Sigma float64   // singular value, non-negative
	U     []float64 // left singular vector, length L
	V     []float64 // right singular vector, length K
}

// Decomposition holds the ordered eigentriples of a decomposed series along
// with the embedding geometry needed for reconstruction. It is immutable
// after construction; accessors return copies.
type Decomposition struct {
	seriesLen  int
	windowLen  int
	cols       int
	triples    []EigenTriple
	timestamps []time.Time
}

// Decompose embeds the series with the given window length and factorizes
// the trajectory matrix. A nil opts selects defaults.
func Decompose(series *timeseries.Series, windowLength int, opts *Options) (*Decomposition, error) {
	tm, err := Embed(series, windowLength)
	if err != nil {
		return nil, err
	}
	return decomposeMatrix(context.Background(), tm, opts)
}

// DecomposeContext is Decompose with a cancellation hook. If the context is
// canceled before the factorization completes, ctx.Err() is returned and no
// partial decomposition is retained.
func DecomposeContext(ctx context.Context, series *timeseries.Series, windowLength int, opts *Options) (*Decomposition, error) {
	tm, err := Embed(series, windowLength)
	if err != nil {
		return nil, err
	}
	return decomposeMatrix(ctx, tm, opts)
}

// DecomposeMatrix factorizes an already embedded trajectory matrix. A nil
// opts selects defaults.
func DecomposeMatrix(tm *TrajectoryMatrix, opts *Options) (*Decomposition, error) {
	return decomposeMatrix(context.Background(), tm, opts)
}

func decomposeMatrix(ctx context.Context, tm *TrajectoryMatrix, opts *Options) (*Decomposition, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	rows, cols := tm.Dims()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("decompose: trajectory matrix is %dx%d: %w", rows, cols, ErrInvalidWindowLength)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var svd mat.SVD
	var ok bool
	if ctx.Done() == nil {
		ok = svd.Factorize(tm, mat.SVDThin)
	} else {
		done := make(chan bool, 1)
		go func() {
			done <- svd.Factorize(tm, mat.SVDThin)
		}()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ok = <-done:
		}
	}
	if !ok {
		return nil, fmt.Errorf("decompose: factorization did not converge: %w", ErrNumericFailure)
	}

	sigmas := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	triples := make([]EigenTriple, len(sigmas))
	for i, sigma := range sigmas {
		if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
			return nil, fmt.Errorf("decompose: singular value %v at rank %d: %w", sigma, i+1, ErrNumericFailure)
		}
		uCol := mat.Col(nil, i, &u)
		vCol := mat.Col(nil, i, &v)
		if !finite(uCol) || !finite(vCol) {
			return nil, fmt.Errorf("decompose: non-finite singular vector at rank %d: %w", i+1, ErrNumericFailure)
		}
		triples[i] = EigenTriple{Sigma: sigma, U: uCol, V: vCol}
	}

	// The factorization already orders by singular value, but the ordering
	// contract belongs to this stage, so enforce it. Stable sort keeps tied
	// values in factorization order.
	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].Sigma > triples[j].Sigma
	})
	for i := range triples {
		triples[i].Index = i + 1
	}

	if opts.MaxComponents > 0 && opts.MaxComponents < len(triples) {
		triples = triples[:opts.MaxComponents]
	}

	timestamps := make([]time.Time, len(tm.timestamps))
	copy(timestamps, tm.timestamps)

	return &Decomposition{
		seriesLen:  tm.SeriesLength(),
		windowLen:  rows,
		cols:       cols,
		triples:    triples,
		timestamps: timestamps,
	}, nil
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Len returns the number of retained eigentriples.
func (d *Decomposition) Len() int {
	return len(d.triples)
}

// SeriesLength returns the length N of the decomposed series.
func (d *Decomposition) SeriesLength() int {
	return d.seriesLen
}

// WindowLength returns the embedding window length L.
func (d *Decomposition) WindowLength() int {
	return d.windowLen
}

// EigenTriples returns a copy of the eigentriples, ordered by singular value
// descending.
func (d *Decomposition) EigenTriples() []EigenTriple {
	out := make([]EigenTriple, len(d.triples))
	for i, et := range d.triples {
		u := make([]float64, len(et.U))
		copy(u, et.U)
		v := make([]float64, len(et.V))
		copy(v, et.V)
		out[i] = EigenTriple{Index: et.Index, Sigma: et.Sigma, U: u, V: v}
	}
	return out
}

// SingularValues returns the singular values in descending order.
func (d *Decomposition) SingularValues() []float64 {
	out := make([]float64, len(d.triples))
	for i, et := range d.triples {
		out[i] = et.Sigma
	}
	return out
}

// Contributions returns the relative contribution sigma_i^2 / sum(sigma^2)
// of each retained eigentriple to the total retained energy. The values sum
// to 1 unless the series is identically zero.
func (d *Decomposition) Contributions() []float64 {
	total := 0.0
	for _, et := range d.triples {
		total += et.Sigma * et.Sigma
	}

	out := make([]float64, len(d.triples))
	if total == 0 {
		return out
	}
	for i, et := range d.triples {
		out[i] = et.Sigma * et.Sigma / total
	}
	return out
}
