// Package mathutil provides numerical helper functions for FIR filter design.
package mathutil

import "math"

// Sinc computes the normalized sinc function sin(πx)/(πx).
//
// Sinc(0) returns exactly 1 (the removable singularity). The zero check is
// an exact comparison: callers pass arguments of the form fraction*m where
// m is an integer offset from the filter center, so the singular point is
// hit exactly, not approximately.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// GainAt evaluates the gain of a linear-phase (symmetric) coefficient
// sequence at a frequency expressed as a fraction of Nyquist (0 = DC,
// 1 = Nyquist).
//
// For a sequence symmetric about alpha = (len-1)/2 the frequency response
// magnitude reduces to the real cosine sum Σ h[n]·cos(π·(n-alpha)·freq).
func GainAt(coeffs []float64, freq float64) float64 {
	alpha := float64(len(coeffs)-1) / 2

	var gain float64
	for n, h := range coeffs {
		gain += h * math.Cos(math.Pi*(float64(n)-alpha)*freq)
	}

	return gain
}
