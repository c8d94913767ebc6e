// Command firwin designs a windowed-sinc FIR filter and prints its
// coefficients, one per line, followed by their sum as a diagnostic.
//
// Usage:
//
//	firwin [flags] <numtaps> <fs> <window> <cutoff>...
//
//	firwin 51 1000 hann 200 300
//	firwin 101 44100 blackman-harris 500 1000 3000 4000
//	firwin -wav impulse.wav 101 48000 7 0 8000
//
// The window may be given by name (case-insensitive, "boxcar" is an alias
// for rectangular) or by index 0-11. Cutoffs are passband edges in Hz,
// taken in pairs. With -wav the impulse response is also written as a
// 16-bit mono WAV file at the design sample rate, peak-normalized for
// inspection in audio tools.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-firwin"
	"github.com/tphakala/go-firwin/window"
)

const (
	// Positional arguments: numtaps, fs, window, and at least one cutoff pair.
	minPositionalArgs = 5

	// WAV export parameters
	wavBitDepth   = 16
	wavChannels   = 1
	wavPCMFormat  = 1
	maxInt16      = 32767.0
	wavPeakTarget = 0.9 // headroom below full scale
)

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	wavPath := flag.String("wav", "", "write the impulse response to this WAV file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < minPositionalArgs {
		usage()
		return fmt.Errorf("expected at least %d arguments, got %d", minPositionalArgs, len(args))
	}

	numTaps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid tap count %q: %w", args[0], err)
	}

	sampleRate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid sample rate %q: %w", args[1], err)
	}

	win, err := window.Parse(args[2])
	if err != nil {
		return err
	}

	cutoffs := make([]float64, 0, len(args)-3)
	for _, arg := range args[3:] {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid cutoff %q: %w", arg, err)
		}
		cutoffs = append(cutoffs, c)
	}

	coeffs, err := firwin.Design(firwin.FilterSpec{
		NumTaps:    numTaps,
		Cutoffs:    cutoffs,
		SampleRate: sampleRate,
		Window:     win,
	})
	if err != nil {
		return err
	}

	fmt.Printf("# FIR filter: %d taps, %g Hz, %s window, cutoffs %v Hz\n",
		numTaps, sampleRate, win, cutoffs)

	var sum float64
	for _, c := range coeffs {
		fmt.Printf("%.15g\n", c)
		sum += c
	}
	fmt.Printf("\n# Sum of coefficients: %.15g\n", sum)

	if *wavPath != "" {
		if err := writeImpulseWAV(*wavPath, coeffs, int(sampleRate)); err != nil {
			return fmt.Errorf("writing %s: %w", *wavPath, err)
		}
		fmt.Printf("# Impulse response written to %s\n", *wavPath)
	}

	return nil
}

// writeImpulseWAV writes the coefficient sequence as a peak-normalized
// 16-bit mono WAV file.
func writeImpulseWAV(path string, coeffs []float64, sampleRate int) error {
	var peak float64
	for _, c := range coeffs {
		if a := math.Abs(c); a > peak {
			peak = a
		}
	}
	gain := 1.0
	if peak > 0 {
		gain = wavPeakTarget / peak
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, wavChannels, wavPCMFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: wavChannels, SampleRate: sampleRate},
		SourceBitDepth: wavBitDepth,
		Data:           make([]int, len(coeffs)),
	}
	for i, c := range coeffs {
		buf.Data[i] = int(math.Round(c * gain * maxInt16))
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <numtaps> <fs> <window> <cutoff>...\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  numtaps  filter length (odd for passbands ending at Nyquist)")
	fmt.Fprintln(os.Stderr, "  fs       sampling frequency in Hz")
	fmt.Fprintln(os.Stderr, "  window   window name or index:")
	for _, t := range window.Types() {
		fmt.Fprintf(os.Stderr, "             %2d  %s\n", int(t), t)
	}
	fmt.Fprintln(os.Stderr, "  cutoffs  passband edges in Hz, in pairs (even count)")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample: %s 51 1000 hann 200 300\n", os.Args[0])
}
