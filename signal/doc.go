// Package signal generates synthetic time series with known structure,
// useful for exercising and demonstrating decomposition.
//
// Deterministic components are plain functions:
//
//	trend := signal.LinearTrend(240, 10, 0.05)
//	cycle := signal.Sine(240, 2, 12, 0)
//
// Random components come from a seeded Generator, so experiments reproduce
// exactly:
//
//	gen := signal.New(42)
//	noise := gen.Noise(240, 0.5)
//	walk := gen.RandomWalk(240)
//
// Components compose elementwise:
//
//	series, err := signal.Sum(trend, cycle, noise)
package signal
