// Package window provides the tapering window functions used in
// windowed-sinc FIR filter design.
//
// Twelve window types are supported, identified by [Type]. All windows are
// generated in symmetric form (denominator n-1 for the cosine-sum family),
// which is the correct form for filter design as opposed to periodic FFT
// framing. A window of length 0 or 1 applies no taper.
//
// Two definitions deliberately differ from the forms used by common
// signal-processing references such as scipy.signal.windows:
//
//   - Parzen uses the piecewise cubic in x = |i - N/2|/(N/2) with N = n-1,
//     which spreads the taper over a wider support than the canonical
//     Parzen window.
//   - Cosine uses sin(π(i+0.5)/n), the half-sample-offset (periodic-style)
//     form, rather than the symmetric sin(πi/(n-1)).
//
// Both are kept as-is for compatibility with existing consumers of the
// designed coefficients; see the tests for the pinned values.
package window

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type identifies a window function.
type Type int

// Window types in stable numeric order. The integer values 0 through 11
// are part of the external contract: they are accepted as numeric
// selectors by [Parse] and must not be reordered.
const (
	Rectangular Type = iota
	Hamming
	Blackman
	Triangular
	Parzen
	Bohman
	Nuttall
	BlackmanHarris
	FlatTop
	Bartlett
	Hann
	Cosine

	numTypes
)

// ErrUnknownType reports a window selector outside the supported set.
var ErrUnknownType = errors.New("unknown window type")

// Cosine-sum coefficient tables. Signs alternate starting positive:
// w(x) = a0 - a1·cos(x) + a2·cos(2x) - ...
var (
	hammingCoeffs        = []float64{0.54, 0.46}
	blackmanCoeffs       = []float64{0.42, 0.5, 0.08}
	nuttallCoeffs        = []float64{0.3635819, 0.4891775, 0.1365995, 0.0106411}
	blackmanHarrisCoeffs = []float64{0.35875, 0.48829, 0.14128, 0.01168}
	flatTopCoeffs        = []float64{0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368}
)

// weightFunc returns the taper weight at index i of an n-point window.
// Callers guarantee n > 1.
type weightFunc func(i, n int) float64

// definition couples a window tag with its name and weight function,
// keeping each formula co-located with its coefficient table.
type definition struct {
	name   string
	weight weightFunc
}

var definitions = [numTypes]definition{
	Rectangular:    {"rectangular", rectangularWeight},
	Hamming:        {"hamming", cosineSum(hammingCoeffs)},
	Blackman:       {"blackman", cosineSum(blackmanCoeffs)},
	Triangular:     {"triangular", triangularWeight},
	Parzen:         {"parzen", parzenWeight},
	Bohman:         {"bohman", bohmanWeight},
	Nuttall:        {"nuttall", cosineSum(nuttallCoeffs)},
	BlackmanHarris: {"blackman-harris", cosineSum(blackmanHarrisCoeffs)},
	FlatTop:        {"flattop", cosineSum(flatTopCoeffs)},
	Bartlett:       {"bartlett", bartlettWeight},
	Hann:           {"hann", hannWeight},
	Cosine:         {"cosine", cosineWeight},
}

// cosineSum builds a weight function for the generalized cosine window
// family: w[i] = Σ (-1)^k · a[k] · cos(2πki/(n-1)).
func cosineSum(coeffs []float64) weightFunc {
	return func(i, n int) float64 {
		x := 2 * math.Pi * float64(i) / float64(n-1)

		var w float64
		sign := 1.0
		for k, a := range coeffs {
			w += sign * a * math.Cos(float64(k)*x)
			sign = -sign
		}

		return w
	}
}

func rectangularWeight(_, _ int) float64 {
	return 1
}

func triangularWeight(i, n int) float64 {
	return 1 - math.Abs((float64(i)-float64(n-1)/2)/(float64(n)/2))
}

// parzenWeight is the piecewise cubic over x = |i - N/2|/(N/2), N = n-1.
// Not the canonical Parzen support; see the package comment.
func parzenWeight(i, n int) float64 {
	half := float64(n-1) / 2
	x := math.Abs((float64(i) - half) / half)

	if x <= 0.5 {
		return 1 - 6*x*x*(1-x)
	}

	t := 1 - x
	return 2 * t * t * t
}

func bohmanWeight(i, n int) float64 {
	x := math.Abs(2*float64(i)/float64(n-1) - 1)
	return (1-x)*math.Cos(math.Pi*x) + math.Sin(math.Pi*x)/math.Pi
}

func bartlettWeight(i, n int) float64 {
	return 1 - math.Abs(2*float64(i)/float64(n-1)-1)
}

func hannWeight(i, n int) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

// cosineWeight is the half-sample-offset sine form; see the package comment.
func cosineWeight(i, n int) float64 {
	return math.Sin(math.Pi * (float64(i) + 0.5) / float64(n))
}

// Valid reports whether t is one of the supported window types.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// String returns the canonical lowercase name of the window type.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("window(%d)", int(t))
	}
	return definitions[t].name
}

// Types returns all supported window types in numeric order.
func Types() []Type {
	types := make([]Type, numTypes)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// Parse resolves a window selector from its name or numeric index.
// Matching is case-insensitive and ignores hyphens and underscores, so
// "Blackman-Harris", "blackmanharris" and "7" all resolve to
// [BlackmanHarris]. "boxcar" is accepted as an alias for [Rectangular].
func Parse(s string) (Type, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	// Numeric selectors are resolved before separator stripping so a sign
	// is never mistaken for a hyphen: "-1" is an invalid index, not "1".
	if idx, err := strconv.Atoi(trimmed); err == nil {
		t := Type(idx)
		if !t.Valid() {
			return 0, fmt.Errorf("%w: index %d", ErrUnknownType, idx)
		}
		return t, nil
	}

	norm := strings.ReplaceAll(trimmed, "-", "")
	norm = strings.ReplaceAll(norm, "_", "")

	if norm == "boxcar" {
		return Rectangular, nil
	}

	for t, def := range definitions {
		if norm == strings.ReplaceAll(def.name, "-", "") {
			return Type(t), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Generate returns the window coefficients for the given type and length.
// Lengths of 0 or 1 yield no taper (all weights 1); a non-positive length
// yields an empty slice.
func Generate(t Type, length int) ([]float64, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	if length < 1 {
		return []float64{}, nil
	}

	w := make([]float64, length)
	for i := range w {
		w[i] = 1
	}

	if length == 1 || t == Rectangular {
		return w, nil
	}

	weight := definitions[t].weight
	for i := range w {
		w[i] = weight(i, length)
	}

	return w, nil
}

// Apply multiplies data in place by the window of matching length.
// Rectangular and lengths of at most 1 leave data untouched.
func Apply(t Type, data []float64) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	n := len(data)
	if n <= 1 || t == Rectangular {
		return nil
	}

	weight := definitions[t].weight
	for i := range data {
		data[i] *= weight(i, n)
	}

	return nil
}
