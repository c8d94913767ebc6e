package firwin

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-firwin/internal/mathutil"
	"github.com/tphakala/go-firwin/window"
)

const (
	// degenerateScaleThreshold is the magnitude below which the gain at the
	// reference frequency is treated as unusable. The threshold and the
	// fallback to 1 are a compatibility heuristic: filters whose response
	// vanishes at their own reference frequency are returned unnormalized
	// rather than rejected or divided toward infinity.
	degenerateScaleThreshold = 1e-10

	// fallbackScale replaces a degenerate scale factor.
	fallbackScale = 1.0

	// Reference frequencies as fractions of Nyquist.
	dcReference      = 0.0
	nyquistReference = 1.0
)

// Design synthesizes the coefficients of a windowed-sinc FIR filter and
// returns them as a fresh slice of length spec.NumTaps.
//
// The pipeline is: validate → ideal multiband response (summed sinc
// kernels) → tapering window → gain normalization at a reference frequency
// (see [FilterSpec] for the passband conventions). The result is symmetric
// about its center (linear phase) and has unity gain at the reference
// frequency.
//
// Design is a pure function: it retains nothing, shares nothing between
// calls, and is safe for concurrent use. Any invalid spec yields an error
// wrapping [ErrInvalidSpec] and no output.
func Design(spec FilterSpec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, spec.NumTaps)
	designInto(out, &spec)

	return out, nil
}

// DesignInto is the caller-buffer form of [Design]: it writes the
// coefficients into dst[0:spec.NumTaps], which must have at least
// spec.NumTaps elements.
//
// On any failure dst is left completely untouched; synthesis runs in an
// internal working buffer that never aliases dst, so a half-designed
// filter can never leak into caller memory.
func DesignInto(dst []float64, spec FilterSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	if len(dst) < spec.NumTaps {
		return fmt.Errorf("%w: need %d taps of space, have %d", ErrShortBuffer, spec.NumTaps, len(dst))
	}

	designInto(dst, &spec)

	return nil
}

// designInto runs the synthesis pipeline for a validated spec. Only the
// final normalization writes to dst.
func designInto(dst []float64, spec *FilterSpec) {
	h := idealResponse(spec)

	// Validate guarantees a known window type, so Apply cannot fail here.
	_ = window.Apply(spec.Window, h)

	normalize(dst[:spec.NumTaps], h, spec)
}

// idealResponse computes the unwindowed coefficients of the ideal
// piecewise-constant multiband response. Each passband pair (lo, hi),
// normalized to fractions of Nyquist, contributes the difference of two
// ideal lowpass responses:
//
//	h[n] += hi·sinc(hi·m) - lo·sinc(lo·m),  m = n - (numtaps-1)/2
//
// Passbands accumulate independently; disjointness is the caller's
// responsibility beyond the strictly-increasing cutoff check. The result
// is symmetric about the filter center by construction.
func idealResponse(spec *FilterSpec) []float64 {
	h := make([]float64, spec.NumTaps)
	nyquist := spec.Nyquist()
	alpha := float64(spec.NumTaps-1) / 2

	for k := 0; k+1 < len(spec.Cutoffs); k += 2 {
		left := spec.Cutoffs[k] / nyquist
		right := spec.Cutoffs[k+1] / nyquist

		for n := range h {
			m := float64(n) - alpha
			h[n] += right*mathutil.Sinc(right*m) - left*mathutil.Sinc(left*m)
		}
	}

	return h
}

// referenceFreq picks the normalization frequency as a fraction of
// Nyquist: DC when the first passband starts at 0, Nyquist when the first
// passband ends there, otherwise the midpoint of the first passband.
func referenceFreq(spec *FilterSpec) float64 {
	nyquist := spec.Nyquist()

	switch {
	case spec.Cutoffs[0] == 0:
		return dcReference
	case spec.Cutoffs[1] == nyquist:
		return nyquistReference
	default:
		return (spec.Cutoffs[0] + spec.Cutoffs[1]) / 2 / nyquist
	}
}

// normalize rescales the windowed coefficients h to unity gain at the
// reference frequency and writes the result to dst.
func normalize(dst, h []float64, spec *FilterSpec) {
	freq := referenceFreq(spec)

	var scale float64
	if freq == dcReference {
		// Gain at DC is the plain coefficient sum.
		scale = f64.Sum(h)
	} else {
		scale = mathutil.GainAt(h, freq)
	}

	if math.Abs(scale) < degenerateScaleThreshold {
		scale = fallbackScale
	}

	f64.Scale(dst, h, 1/scale)
}
