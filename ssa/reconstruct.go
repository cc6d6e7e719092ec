package ssa

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gossa/timeseries"
)

// Reconstruct maps each group back to a time-domain series: the selected
// rank-1 terms sigma * u * v' are summed and the sum is projected to a
// series of length N by diagonal averaging. The result holds one series per
// group, each named after its group and carrying the timestamps of the
// decomposed series. An empty group yields the zero series of length N.
//
// Reconstruction is linear: disjoint groups covering all components sum to
// the original series up to floating-point error.
func (g *Grouping) Reconstruct() (map[string]*timeseries.Series, error) {
	out := make(map[string]*timeseries.Series, len(g.names))
	for _, name := range g.names {
		series, err := g.d.reconstructGroup(name, g.groups[name])
		if err != nil {
			return nil, err
		}
		out[name] = series
	}
	return out, nil
}

// Reconstruct groups the decomposition and reconstructs the groups in one
// call.
func (d *Decomposition) Reconstruct(groups map[string][]int) (map[string]*timeseries.Series, error) {
	g, err := d.Group(groups)
	if err != nil {
		return nil, err
	}
	return g.Reconstruct()
}

func (d *Decomposition) reconstructGroup(name string, indices []int) (*timeseries.Series, error) {
	values := make([]float64, d.seriesLen)

	if len(indices) > 0 {
		rows, cols := d.windowLen, d.cols

		// Sum of sigma_i * u_i * v_i' for the selected triples, formed as
		// a single product of the sigma-scaled U columns with V'.
		us := mat.NewDense(rows, len(indices), nil)
		vs := mat.NewDense(cols, len(indices), nil)
		scaled := make([]float64, rows)
		for c, idx := range indices {
			et := d.triples[idx-1]
			for i, x := range et.U {
				scaled[i] = et.Sigma * x
			}
			us.SetCol(c, scaled)
			vs.SetCol(c, et.V)
		}

		var sum mat.Dense
		sum.Mul(us, vs.T())

		averaged, err := hankelize(&sum, d.seriesLen)
		if err != nil {
			return nil, fmt.Errorf("reconstruct group %q: %w", name, err)
		}
		values = averaged
	}

	timestamps := make([]time.Time, len(d.timestamps))
	copy(timestamps, d.timestamps)

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}, nil
}

// hankelize projects an L x K matrix back onto a series of length n by
// averaging each anti-diagonal i+j = t.
func hankelize(m mat.Matrix, n int) ([]float64, error) {
	rows, cols := m.Dims()
	if rows+cols-1 != n {
		return nil, fmt.Errorf("%dx%d matrix against series length %d: %w", rows, cols, n, ErrShapeMismatch)
	}

	values := make([]float64, n)
	for t := 0; t < n; t++ {
		lo := max(0, t-cols+1)
		hi := min(t, rows-1)
		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += m.At(i, t-i)
		}
		values[t] = sum / float64(hi-lo+1)
	}
	return values, nil
}
