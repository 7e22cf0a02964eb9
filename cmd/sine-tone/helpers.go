package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-chebyshev-sine/internal/bench"
	"github.com/tphakala/simd/f64"
)

var (
	// ErrInvalidTone indicates tone parameters that cannot be rendered.
	ErrInvalidTone = errors.New("invalid tone parameters")

	// ErrUnsupportedBitDepth indicates a PCM bit depth other than 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// toneSpec describes a mono test tone.
type toneSpec struct {
	frequency  float64
	sampleRate int
	duration   float64
	amplitude  float64
	bitDepth   int
}

// validate checks that the tone is representable at the sample rate.
func (s *toneSpec) validate() error {
	if s.sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidTone)
	}
	if s.frequency <= 0 || s.frequency >= float64(s.sampleRate)/nyquistDivisor {
		return fmt.Errorf("%w: frequency must be in (0, %g) Hz", ErrInvalidTone, float64(s.sampleRate)/nyquistDivisor)
	}
	if s.duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidTone)
	}
	if s.amplitude <= 0 || s.amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in (0, 1]", ErrInvalidTone)
	}
	if _, err := maxSampleValue(s.bitDepth); err != nil {
		return err
	}
	return nil
}

// numSamples returns the number of samples covering the duration.
func (s *toneSpec) numSamples() int {
	return int(math.Round(s.duration * float64(s.sampleRate)))
}

// renderTone samples amplitude·sin(2πf·n/rate) using the given evaluator.
func renderTone(ev bench.Evaluator, spec *toneSpec) []float64 {
	omega := 2 * math.Pi * spec.frequency / float64(spec.sampleRate)
	samples := make([]float64, spec.numSamples())
	for i := range samples {
		samples[i] = spec.amplitude * ev.Sin(omega*float64(i))
	}
	return samples
}

// dcOffset returns the mean sample value.
func dcOffset(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return f64.Sum(samples) / float64(len(samples))
}

// maxSampleValue returns the full-scale integer for a PCM bit depth.
func maxSampleValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// quantize converts samples in [-1, 1] to integer PCM, clamping out-of-range values.
func quantize(samples []float64, bitDepth int) ([]int, error) {
	maxVal, err := maxSampleValue(bitDepth)
	if err != nil {
		return nil, err
	}

	pcm := make([]int, len(samples))
	for i, s := range samples {
		s = max(-1, min(1, s))
		pcm[i] = int(math.Round(s * maxVal))
	}
	return pcm, nil
}

// writeWAV writes mono integer PCM to path.
func writeWAV(path string, sampleRate, bitDepth int, pcm []int) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           pcm,
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		discardFile(outputFile, path)
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		discardFile(outputFile, path)
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return outputFile.Close()
}

// discardFile closes and removes a partially written output file.
func discardFile(f *os.File, path string) {
	_ = f.Close()
	_ = os.Remove(path)
}
