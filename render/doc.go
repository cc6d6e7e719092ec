// Package render draws decomposition results with gonum/plot.
//
// Three views cover the usual workflow:
//
//	// Reconstructed components over the original series
//	err := render.Components(series, comps, "Decomposition", "decomposition.png")
//
//	// Scree plot of the singular spectrum
//	err = render.SingularSpectrum(decomp, "Singular spectrum", "spectrum.png")
//
//	// W-correlation heat map for judging a grouping
//	err = render.WCorrelationMatrix(wc, "W-correlation", "wcorrelation.png")
//
// The output format follows the file extension; .png, .svg and .pdf are all
// supported.
package render
