// Package firwin designs FIR filter coefficients using the windowed-sinc
// method in pure Go.
//
// Given a tap count, one or more passbands, a sampling rate and a tapering
// window, [Design] produces a linear-phase coefficient sequence
// approximating the ideal multiband frequency response. The library covers
// coefficient synthesis only: applying the filter, IIR design and
// frequency-response analysis are out of scope.
//
// # Quick Start
//
// Design a 51-tap bandpass filter passing 200-300 Hz at a 1 kHz sampling
// rate with a Hann window:
//
//	coeffs, err := firwin.Design(firwin.FilterSpec{
//	    NumTaps:    51,
//	    Cutoffs:    []float64{200, 300},
//	    SampleRate: 1000,
//	    Window:     window.Hann,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or use a convenience constructor for the common shapes:
//
//	coeffs, err := firwin.LowPass(101, 100, 1000, window.Hamming)
//	coeffs, err := firwin.HighPass(101, 300, 1000, window.Blackman)
//	coeffs, err := firwin.BandPass(51, 200, 300, 1000, window.Hann)
//	coeffs, err := firwin.BandStop(101, 200, 300, 1000, window.Nuttall)
//
// # Passband Conventions
//
// Cutoffs are passband edges in Hz, taken in pairs: (Cutoffs[0],
// Cutoffs[1]) is the first passband, (Cutoffs[2], Cutoffs[3]) the second,
// and so on. A first cutoff of 0 anchors the filter at DC (lowpass); a
// last cutoff of SampleRate/2 extends it to Nyquist (highpass, odd tap
// counts only).
//
// # Normalization
//
// Coefficients are rescaled to unity gain at a reference frequency: DC for
// filters whose first band starts at 0, Nyquist for filters whose first
// band ends there, and otherwise the midpoint of the first passband. When
// the gain at the reference frequency is degenerate (magnitude below
// 1e-10) the coefficients are returned unnormalized instead of being
// divided toward infinity.
//
// # Windows
//
// The [github.com/tphakala/go-firwin/window] package provides the twelve
// supported tapering windows, from Rectangular through Flat-top. Note that
// the Parzen and Cosine definitions intentionally differ from the common
// reference forms; see that package's documentation.
//
// # Errors
//
// All validation failures wrap the single sentinel [ErrInvalidSpec]; use
// errors.Is to detect them. No panics are raised for invalid input, and a
// failed call never writes to caller memory.
package firwin
