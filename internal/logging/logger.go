// Package logging builds the zap loggers used by the commands.
//
// Command results go to stdout; everything logged here goes to stderr by
// default so it never mixes with machine-readable output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// DefaultConfig returns the configuration for structured (JSON) logs.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Development: false,
		OutputPaths: []string{"stderr"},
	}
}

// CLIConfig returns the configuration for human-readable command diagnostics.
// verbose lowers the level to debug.
func CLIConfig(verbose bool) Config {
	return Config{
		Level:       levelFor(verbose),
		Development: true,
		OutputPaths: []string{"stderr"},
	}
}

// CommandConfig returns the configuration for a command: console output by
// default, or [DefaultConfig] JSON lines when jsonLogs is set.
func CommandConfig(verbose, jsonLogs bool) Config {
	if !jsonLogs {
		return CLIConfig(verbose)
	}
	cfg := DefaultConfig()
	cfg.Level = levelFor(verbose)
	return cfg
}

func levelFor(verbose bool) string {
	if verbose {
		return "debug"
	}
	return "info"
}

// New creates a logger with the provided configuration.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encodingFormat(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     cfg.Development,
		DisableStacktrace: true,
	}

	return zapCfg.Build()
}

// NewCLI creates a console logger for a command, falling back to a no-op
// logger if construction fails.
func NewCLI(verbose bool) *zap.Logger {
	return NewCommand(verbose, false)
}

// NewCommand creates the logger selected by a command's -v and -log-json
// flags, falling back to a no-op logger if construction fails.
func NewCommand(verbose, jsonLogs bool) *zap.Logger {
	logger, err := New(CommandConfig(verbose, jsonLogs))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

// encodingFormat returns encoding format based on environment.
func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

// encoderConfig returns encoder configuration based on environment.
// Console output omits timestamps and callers; commands are short-lived.
func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		return zapcore.EncoderConfig{
			LevelKey:       "L",
			MessageKey:     "M",
			TimeKey:        zapcore.OmitKey,
			CallerKey:      zapcore.OmitKey,
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  zapcore.OmitKey,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
