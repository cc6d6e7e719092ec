// Package render draws decomposition results to image files.
package render

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/gossa/ssa"
	"github.com/sartorproj/gossa/timeseries"
)

// Components draws the original series overlaid with its reconstructed
// components and saves the plot to path. The output format follows the file
// extension (.png, .svg, .pdf, ...). Component lines are added in name order
// so colors are stable across runs.
func Components(original *timeseries.Series, components map[string]*timeseries.Series, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	label := original.Name
	if label == "" {
		label = "original"
	}
	if err := addLine(p, label, original.Values, 0); err != nil {
		return err
	}

	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if err := addLine(p, name, components[name].Values, i+1); err != nil {
			return err
		}
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// SingularSpectrum draws the singular values of a decomposition against
// their rank (a scree plot) and saves it to path. The vertical scale is
// linear since trailing singular values may be exactly zero.
func SingularSpectrum(d *ssa.Decomposition, title, path string) error {
	sigmas := d.SingularValues()
	xys := make(plotter.XYs, len(sigmas))
	for i, s := range sigmas {
		xys[i].X = float64(i + 1)
		xys[i].Y = s
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "component"
	p.Y.Label.Text = "singular value"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// WCorrelationMatrix draws a w-correlation matrix as a heat map over a
// diverging palette fixed to [-1, 1] and saves it to path.
func WCorrelationMatrix(wc *ssa.WCorrelationResult, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(wcorrGrid{wc}, pal)
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	p.NominalX(wc.Names...)
	p.NominalY(wc.Names...)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func addLine(p *plot.Plot, label string, values []float64, colorIdx int) error {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(colorIdx)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// wcorrGrid adapts a WCorrelationResult to the plotter.GridXYZ interface.
type wcorrGrid struct {
	wc *ssa.WCorrelationResult
}

func (g wcorrGrid) Dims() (c, r int) {
	n := len(g.wc.Names)
	return n, n
}

func (g wcorrGrid) Z(c, r int) float64 { return g.wc.Matrix[r][c] }

func (g wcorrGrid) X(c int) float64 { return float64(c) }

func (g wcorrGrid) Y(r int) float64 { return float64(r) }
