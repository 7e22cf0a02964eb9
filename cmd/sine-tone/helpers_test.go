package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chebyshev "github.com/tphakala/go-chebyshev-sine"
	"github.com/tphakala/go-chebyshev-sine/internal/logging"
	"go.uber.org/zap"
)

func defaultSpec() *toneSpec {
	return &toneSpec{
		frequency:  1000,
		sampleRate: 48000,
		duration:   0.01,
		amplitude:  defaultAmplitude,
		bitDepth:   defaultBitDepth,
	}
}

func TestToneSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*toneSpec)
		wantErr error
	}{
		{"Valid", func(*toneSpec) {}, nil},
		{"Zero rate", func(s *toneSpec) { s.sampleRate = 0 }, ErrInvalidTone},
		{"Zero frequency", func(s *toneSpec) { s.frequency = 0 }, ErrInvalidTone},
		{"Above Nyquist", func(s *toneSpec) { s.frequency = 24000 }, ErrInvalidTone},
		{"Zero duration", func(s *toneSpec) { s.duration = 0 }, ErrInvalidTone},
		{"Amplitude too large", func(s *toneSpec) { s.amplitude = 1.5 }, ErrInvalidTone},
		{"8-bit", func(s *toneSpec) { s.bitDepth = 8 }, ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := defaultSpec()
			tt.modify(spec)
			err := spec.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRenderTone_MatchesMathSin(t *testing.T) {
	spec := defaultSpec()
	samples := renderTone(chebyshev.NewDefault(), spec)
	require.Len(t, samples, 480)

	omega := 2 * math.Pi * spec.frequency / float64(spec.sampleRate)
	for i, s := range samples {
		assert.InDelta(t, spec.amplitude*math.Sin(omega*float64(i)), s, 1e-9, "sample %d", i)
	}
}

func TestDCOffset(t *testing.T) {
	assert.Zero(t, dcOffset(nil))
	assert.InDelta(t, 0.5, dcOffset([]float64{0, 1, 0.5, 0.5}), 1e-15)

	// Ten full cycles have no DC component
	samples := renderTone(chebyshev.NewDefault(), defaultSpec())
	assert.InDelta(t, 0.0, dcOffset(samples), 1e-9)
}

func TestQuantize(t *testing.T) {
	pcm, err := quantize([]float64{0, 1, -1, 0.5, 2, -3}, 16)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 32767, -32767, 16384, 32767, -32767}, pcm)

	pcm, err = quantize([]float64{1}, 24)
	require.NoError(t, err)
	assert.Equal(t, []int{8388607}, pcm)

	_, err = quantize([]float64{0}, 12)
	require.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	err := writeWAV("/nonexistent/dir/tone.wav", 48000, 16, []int{0, 1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteWAV_EncoderFailureRemovesFile(t *testing.T) {
	// The encoder writes the header, then rejects sample frames of this width
	path := filepath.Join(t.TempDir(), "tone.wav")
	err := writeWAV(path, 48000, 12, []int{0, 1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write samples")
	assert.NoFileExists(t, path)
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	for _, bits := range []int{16, 24} {
		path := filepath.Join(t.TempDir(), "tone.wav")
		spec := defaultSpec()
		spec.bitDepth = bits

		pcm, err := quantize(renderTone(chebyshev.NewDefault(), spec), bits)
		require.NoError(t, err)
		require.NoError(t, writeWAV(path, spec.sampleRate, bits, pcm))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		decoder := wav.NewDecoder(f)
		require.True(t, decoder.IsValidFile(), "bits=%d", bits)

		buf, err := decoder.FullPCMBuffer()
		require.NoError(t, err)
		assert.Equal(t, spec.sampleRate, buf.Format.SampleRate)
		assert.Equal(t, monoChannels, buf.Format.NumChannels)
		assert.Equal(t, bits, int(decoder.BitDepth))
		assert.Equal(t, pcm, buf.Data)
	}
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, run(defaultSpec(), chebyshev.DefaultTerms, path, zap.NewNop()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(480*2))
}

func TestRun_InvalidTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	err := run(defaultSpec(), 0, path, zap.NewNop())
	require.ErrorIs(t, err, chebyshev.ErrInvalidTermsCount)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_JSONLogs(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tone.log")

	cfg := logging.CommandConfig(false, true)
	cfg.OutputPaths = []string{logPath}
	logger, err := logging.New(cfg)
	require.NoError(t, err)

	spec := defaultSpec()
	require.NoError(t, run(spec, chebyshev.DefaultTerms, filepath.Join(dir, "out.wav"), logger))
	_ = logger.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(data, &entry))
	assert.Equal(t, "wrote tone", entry["msg"])
	assert.Equal(t, float64(spec.sampleRate), entry["sample_rate"])
	assert.Equal(t, float64(spec.numSamples()), entry["samples"])
}
