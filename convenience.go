package firwin

import (
	"github.com/tphakala/go-firwin/window"
)

// LowPass designs a lowpass filter passing frequencies from DC up to
// cutoff Hz. The result has unity gain at DC.
func LowPass(numTaps int, cutoff, sampleRate float64, w window.Type) ([]float64, error) {
	return Design(FilterSpec{
		NumTaps:    numTaps,
		Cutoffs:    []float64{0, cutoff},
		SampleRate: sampleRate,
		Window:     w,
	})
}

// HighPass designs a highpass filter passing frequencies from cutoff Hz up
// to Nyquist. The passband ends at Nyquist, so numTaps must be odd. The
// result has unity gain at Nyquist.
func HighPass(numTaps int, cutoff, sampleRate float64, w window.Type) ([]float64, error) {
	return Design(FilterSpec{
		NumTaps:    numTaps,
		Cutoffs:    []float64{cutoff, sampleRate / 2},
		SampleRate: sampleRate,
		Window:     w,
	})
}

// BandPass designs a bandpass filter passing frequencies between low and
// high Hz. The result has unity gain at the band midpoint.
func BandPass(numTaps int, low, high, sampleRate float64, w window.Type) ([]float64, error) {
	return Design(FilterSpec{
		NumTaps:    numTaps,
		Cutoffs:    []float64{low, high},
		SampleRate: sampleRate,
		Window:     w,
	})
}

// BandStop designs a bandstop filter rejecting frequencies between low and
// high Hz, built as two passbands [0, low] and [high, Nyquist]. The upper
// passband ends at Nyquist, so numTaps must be odd. The result has unity
// gain at DC.
func BandStop(numTaps int, low, high, sampleRate float64, w window.Type) ([]float64, error) {
	return Design(FilterSpec{
		NumTaps:    numTaps,
		Cutoffs:    []float64{0, low, high, sampleRate / 2},
		SampleRate: sampleRate,
		Window:     w,
	})
}
