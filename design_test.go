package firwin

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-firwin/internal/mathutil"
	"github.com/tphakala/go-firwin/internal/testutil"
	"github.com/tphakala/go-firwin/window"
)

const (
	// Test filter parameters
	testTaps21   = 21
	testTaps31   = 31
	testTaps51   = 51
	testTaps101  = 101
	testRate1000 = 1000.0
	testBandLow  = 200.0
	testBandHigh = 300.0
	testMidpoint = 0.5 // (200+300)/2 of Nyquist 500

	// Spectral test parameters
	fftSize           = 1024
	passbandEdgeHz    = 60.0
	stopbandEdgeHz    = 160.0
	passbandTolerance = 0.02
	stopbandCeiling   = 0.01

	// Degenerate-scale configuration: a passband so narrow that the gain
	// at its own midpoint falls below the 1e-10 fallback threshold.
	degenerateHalfWidth = 1e-9
	degenerateCenterHz  = 250.0
)

func TestDesign_SymmetryAllWindows(t *testing.T) {
	for _, typ := range window.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			coeffs, err := Design(FilterSpec{
				NumTaps:    testTaps21,
				Cutoffs:    []float64{testBandLow, testBandHigh},
				SampleRate: testRate1000,
				Window:     typ,
			})
			require.NoError(t, err)

			testutil.AssertSymmetric(t, coeffs, testutil.CoeffTolerance)
			testutil.AssertNoNaNOrInf(t, coeffs)
		})
	}
}

// TestDesign_UnityGainAtReference checks all three reference-frequency
// policies: DC for bands anchored at 0, Nyquist for bands ending there,
// and the first-band midpoint otherwise.
func TestDesign_UnityGainAtReference(t *testing.T) {
	tests := []struct {
		name    string
		spec    FilterSpec
		refFreq float64 // fraction of Nyquist
	}{
		{
			name: "dc_for_lowpass",
			spec: FilterSpec{
				NumTaps: testTaps101, Cutoffs: []float64{0, 100},
				SampleRate: testRate1000, Window: window.Hamming,
			},
			refFreq: 0,
		},
		{
			name: "nyquist_for_highpass",
			spec: FilterSpec{
				NumTaps: testTaps31, Cutoffs: []float64{150, 500},
				SampleRate: testRate1000, Window: window.Blackman,
			},
			refFreq: 1,
		},
		{
			name: "midpoint_for_bandpass",
			spec: FilterSpec{
				NumTaps: testTaps51, Cutoffs: []float64{testBandLow, testBandHigh},
				SampleRate: testRate1000, Window: window.Hann,
			},
			refFreq: testMidpoint,
		},
		{
			name: "midpoint_of_first_band_for_multiband",
			spec: FilterSpec{
				NumTaps: testTaps51, Cutoffs: []float64{100, 200, 300, 400},
				SampleRate: testRate1000, Window: window.BlackmanHarris,
			},
			refFreq: 0.3, // (100+200)/2 of Nyquist 500
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := Design(tt.spec)
			require.NoError(t, err)
			testutil.AssertGainAt(t, coeffs, tt.refFreq, 1.0, testutil.GainTolerance)
		})
	}
}

// TestDesign_RectangularMatchesUnwindowed verifies that the rectangular
// window is a true identity: the output equals the normalized ideal
// response with no taper applied.
func TestDesign_RectangularMatchesUnwindowed(t *testing.T) {
	spec := FilterSpec{
		NumTaps:    testTaps21,
		Cutoffs:    []float64{testBandLow, testBandHigh},
		SampleRate: testRate1000,
		Window:     window.Rectangular,
	}

	got, err := Design(spec)
	require.NoError(t, err)

	raw := idealResponse(&spec)
	scale := mathutil.GainAt(raw, referenceFreq(&spec))
	for n := range raw {
		raw[n] /= scale
	}

	testutil.AssertMatches(t, raw, got, testutil.CoeffTolerance)
}

// TestDesign_DegenerateScaleFallback drives the computed scale below the
// 1e-10 threshold with a vanishingly narrow passband. The coefficients
// must come back unnormalized (scale treated as 1) and finite, never
// NaN/Inf from a near-zero division.
func TestDesign_DegenerateScaleFallback(t *testing.T) {
	spec := FilterSpec{
		NumTaps: testTaps21,
		Cutoffs: []float64{
			degenerateCenterHz - degenerateHalfWidth,
			degenerateCenterHz + degenerateHalfWidth,
		},
		SampleRate: testRate1000,
		Window:     window.Rectangular,
	}

	coeffs, err := Design(spec)
	require.NoError(t, err)

	testutil.AssertNoNaNOrInf(t, coeffs)

	// The fallback returns the raw response untouched.
	testutil.AssertMatches(t, idealResponse(&spec), coeffs, 0)

	for i, c := range coeffs {
		assert.Less(t, math.Abs(c), degenerateScaleThreshold,
			"coefficient %d should stay tiny without normalization blowup", i)
	}
}

// TestDesign_BandpassScenario is the 51-tap Hann end-to-end case: success,
// symmetry, unity gain at the band midpoint, and edge taps smaller in
// magnitude than center taps (tapering effect).
func TestDesign_BandpassScenario(t *testing.T) {
	coeffs, err := Design(FilterSpec{
		NumTaps:    testTaps51,
		Cutoffs:    []float64{testBandLow, testBandHigh},
		SampleRate: testRate1000,
		Window:     window.Hann,
	})
	require.NoError(t, err)
	require.Len(t, coeffs, testTaps51)

	testutil.AssertSymmetric(t, coeffs, testutil.CoeffTolerance)
	testutil.AssertGainAt(t, coeffs, testMidpoint, 1.0, testutil.GainTolerance)

	var edgePeak, centerPeak float64
	for _, c := range coeffs[:5] {
		edgePeak = math.Max(edgePeak, math.Abs(c))
	}
	for _, c := range coeffs[testTaps51/2-2 : testTaps51/2+3] {
		centerPeak = math.Max(centerPeak, math.Abs(c))
	}
	assert.Less(t, edgePeak, centerPeak, "Hann taper should suppress edge taps")
}

func TestDesignInto(t *testing.T) {
	const sentinel = 12345.0

	spec := FilterSpec{
		NumTaps:    testTaps21,
		Cutoffs:    []float64{testBandLow, testBandHigh},
		SampleRate: testRate1000,
		Window:     window.Hamming,
	}

	t.Run("matches_design", func(t *testing.T) {
		want, err := Design(spec)
		require.NoError(t, err)

		dst := make([]float64, testTaps21)
		require.NoError(t, DesignInto(dst, spec))
		assert.Equal(t, want, dst)
	})

	t.Run("extra_capacity_untouched", func(t *testing.T) {
		dst := make([]float64, testTaps21+4)
		for i := range dst {
			dst[i] = sentinel
		}

		require.NoError(t, DesignInto(dst, spec))
		for i := testTaps21; i < len(dst); i++ {
			assert.Equal(t, sentinel, dst[i], "tail beyond NumTaps must not be written")
		}
	})

	t.Run("short_buffer", func(t *testing.T) {
		dst := make([]float64, testTaps21-1)
		for i := range dst {
			dst[i] = sentinel
		}

		err := DesignInto(dst, spec)
		require.ErrorIs(t, err, ErrShortBuffer)
		for i, v := range dst {
			assert.Equal(t, sentinel, v, "dst[%d] written despite failure", i)
		}
	})

	t.Run("invalid_spec_leaves_dst_untouched", func(t *testing.T) {
		bad := spec
		bad.Cutoffs = []float64{testBandHigh, testBandLow} // decreasing

		dst := make([]float64, testTaps21)
		for i := range dst {
			dst[i] = sentinel
		}

		err := DesignInto(dst, bad)
		require.ErrorIs(t, err, ErrInvalidSpec)
		for i, v := range dst {
			assert.Equal(t, sentinel, v, "dst[%d] written despite failure", i)
		}
	})
}

// TestDesign_SpectralResponse verifies the designed lowpass against its
// FFT magnitude: near-unity through the passband, strongly attenuated in
// the stopband. Uses gonum's real FFT over the zero-padded coefficients.
func TestDesign_SpectralResponse(t *testing.T) {
	coeffs, err := Design(FilterSpec{
		NumTaps:    testTaps101,
		Cutoffs:    []float64{0, 100},
		SampleRate: testRate1000,
		Window:     window.Hamming,
	})
	require.NoError(t, err)

	padded := make([]float64, fftSize)
	copy(padded, coeffs)

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, padded)

	for k, coeff := range spectrum {
		freqHz := float64(k) * testRate1000 / fftSize
		mag := cmplx.Abs(coeff)

		switch {
		case freqHz <= passbandEdgeHz:
			assert.InDelta(t, 1.0, mag, passbandTolerance,
				"passband magnitude at %.1f Hz", freqHz)
		case freqHz >= stopbandEdgeHz:
			assert.Less(t, mag, stopbandCeiling,
				"stopband magnitude at %.1f Hz", freqHz)
		}
	}
}

// TestDesign_MultibandSuperposition verifies that passbands accumulate
// additively: a two-band design equals the sum of the two single-band
// ideal responses, windowed and normalized together.
func TestDesign_MultibandSuperposition(t *testing.T) {
	two := FilterSpec{
		NumTaps:    testTaps31,
		Cutoffs:    []float64{50, 100, 300, 400},
		SampleRate: testRate1000,
		Window:     window.Rectangular,
	}
	a := FilterSpec{NumTaps: testTaps31, Cutoffs: []float64{50, 100}, SampleRate: testRate1000}
	b := FilterSpec{NumTaps: testTaps31, Cutoffs: []float64{300, 400}, SampleRate: testRate1000}

	combined := idealResponse(&two)
	ha := idealResponse(&a)
	hb := idealResponse(&b)

	for n := range combined {
		assert.InDelta(t, ha[n]+hb[n], combined[n], testutil.CoeffTolerance,
			"superposition mismatch at tap %d", n)
	}
}

func TestDesign_InvalidSpecNoOutput(t *testing.T) {
	coeffs, err := Design(FilterSpec{
		NumTaps:    testTaps21,
		Cutoffs:    []float64{testBandLow}, // odd count
		SampleRate: testRate1000,
		Window:     window.Hann,
	})
	require.ErrorIs(t, err, ErrInvalidSpec)
	assert.Nil(t, coeffs)
}
