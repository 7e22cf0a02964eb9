// Command sine-tone renders a mono test tone with the Chebyshev sine
// approximation and writes it as a PCM WAV file.
//
// Usage:
//
//	sine-tone tone.wav
//	sine-tone -freq 1000 -rate 44100 -duration 2.5 -bits 24 tone.wav
//	sine-tone -terms 8 -v low_order.wav   # audible distortion from a short expansion
//	sine-tone -log-json tone.wav 2> tone.log
package main

import (
	"flag"
	"fmt"
	"os"

	chebyshev "github.com/tphakala/go-chebyshev-sine"
	"github.com/tphakala/go-chebyshev-sine/internal/logging"
	"go.uber.org/zap"
)

func main() {
	var spec toneSpec
	flag.Float64Var(&spec.frequency, "freq", defaultFrequency, "Tone frequency in Hz")
	flag.IntVar(&spec.sampleRate, "rate", defaultSampleRate, "Sample rate in Hz")
	flag.Float64Var(&spec.duration, "duration", defaultDuration, "Duration in seconds")
	flag.Float64Var(&spec.amplitude, "amplitude", defaultAmplitude, "Peak amplitude in (0, 1]")
	flag.IntVar(&spec.bitDepth, "bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	terms := flag.Int("terms", chebyshev.DefaultTerms, "Chebyshev expansion order")
	verbose := flag.Bool("v", false, "Verbose output")
	logJSON := flag.Bool("log-json", false, "Write diagnostics to stderr as JSON lines")
	flag.Parse()

	logger := logging.NewCommand(*verbose, *logJSON)
	defer func() { _ = logger.Sync() }()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		_ = logger.Sync()
		os.Exit(exitFailure)
	}

	if err := run(&spec, *terms, args[0], logger); err != nil {
		logger.Error("tone rendering failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(exitFailure)
	}
}

func run(spec *toneSpec, terms int, outputPath string, logger *zap.Logger) error {
	if err := spec.validate(); err != nil {
		return err
	}

	approx, err := chebyshev.New(terms)
	if err != nil {
		return fmt.Errorf("failed to create approximator: %w", err)
	}

	samples := renderTone(approx, spec)
	logger.Debug("tone rendered",
		zap.Int("samples", len(samples)),
		zap.Int("terms", approx.Terms()),
		zap.Float64("dc_offset", dcOffset(samples)))

	pcm, err := quantize(samples, spec.bitDepth)
	if err != nil {
		return err
	}

	if err := writeWAV(outputPath, spec.sampleRate, spec.bitDepth, pcm); err != nil {
		return err
	}

	logger.Info("wrote tone",
		zap.String("path", outputPath),
		zap.Float64("frequency_hz", spec.frequency),
		zap.Int("sample_rate", spec.sampleRate),
		zap.Int("bit_depth", spec.bitDepth),
		zap.Int("samples", len(pcm)))
	return nil
}
