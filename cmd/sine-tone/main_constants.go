package main

// Default command-line flag values
const (
	defaultFrequency  = 440.0 // A4
	defaultSampleRate = 48000
	defaultDuration   = 1.0 // seconds
	defaultBitDepth   = 16
	defaultAmplitude  = 0.8
)

// WAV format constants
const (
	wavFormatPCM = 1 // WAVE_FORMAT_PCM
	monoChannels = 1

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// CLI constants
const (
	minRequiredArgs = 1
	nyquistDivisor  = 2.0
	exitFailure     = 1
)
