package firwin

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-firwin/window"
)

var (
	// ErrInvalidSpec reports a structurally or numerically invalid filter
	// specification. Every validation failure wraps this single sentinel;
	// errors.Is(err, ErrInvalidSpec) is the only discrimination offered at
	// the public boundary. The wrapped message carries human-readable
	// detail but is not part of the API.
	ErrInvalidSpec = errors.New("invalid filter specification")

	// ErrShortBuffer reports a destination buffer with fewer than NumTaps
	// elements passed to DesignInto.
	ErrShortBuffer = errors.New("destination buffer too short")
)

// FilterSpec describes a windowed-sinc FIR design request.
//
// Consecutive cutoff pairs (Cutoffs[2k], Cutoffs[2k+1]) define disjoint
// passbands in Hz. A first cutoff of 0 makes the filter a lowpass; a last
// cutoff of SampleRate/2 makes it a highpass. The spec is read-only to the
// designer and never retained after a call returns.
type FilterSpec struct {
	// NumTaps is the filter length. Odd lengths have a well-defined
	// response at Nyquist; even lengths cannot host a passband that ends
	// exactly at Nyquist.
	NumTaps int

	// Cutoffs lists the passband edges in Hz: even count, strictly
	// increasing, each within [0, Nyquist].
	Cutoffs []float64

	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// Window selects the tapering window applied to the ideal response.
	Window window.Type
}

// Nyquist returns half the sampling rate.
func (s *FilterSpec) Nyquist() float64 {
	return s.SampleRate / 2
}

// Validate checks the spec for structural and numeric validity, in order,
// short-circuiting on the first failure. Every returned error wraps
// [ErrInvalidSpec]. Validate has no side effects.
func (s *FilterSpec) Validate() error {
	if s.NumTaps <= 0 {
		return fmt.Errorf("%w: tap count must be positive, got %d", ErrInvalidSpec, s.NumTaps)
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %g Hz", ErrInvalidSpec, s.SampleRate)
	}

	if len(s.Cutoffs) == 0 || len(s.Cutoffs)%2 != 0 {
		return fmt.Errorf("%w: cutoff count must be even and non-zero, got %d", ErrInvalidSpec, len(s.Cutoffs))
	}

	for i := 1; i < len(s.Cutoffs); i++ {
		if s.Cutoffs[i] <= s.Cutoffs[i-1] {
			return fmt.Errorf("%w: cutoffs must be strictly increasing, cutoff %d (%g Hz) <= cutoff %d (%g Hz)",
				ErrInvalidSpec, i, s.Cutoffs[i], i-1, s.Cutoffs[i-1])
		}
	}

	nyquist := s.Nyquist()
	for i, c := range s.Cutoffs {
		if c < 0 || c > nyquist {
			return fmt.Errorf("%w: cutoff %d (%g Hz) outside [0, %g] Hz", ErrInvalidSpec, i, c, nyquist)
		}
	}

	// An even-length filter has a zero at Nyquist, so a passband may not
	// terminate there.
	if s.Cutoffs[len(s.Cutoffs)-1] == nyquist && s.NumTaps%2 == 0 {
		return fmt.Errorf("%w: a passband ending at Nyquist requires an odd tap count, got %d taps",
			ErrInvalidSpec, s.NumTaps)
	}

	if !s.Window.Valid() {
		return fmt.Errorf("%w: %d is not a window type", ErrInvalidSpec, int(s.Window))
	}

	return nil
}
