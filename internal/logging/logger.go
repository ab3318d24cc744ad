// Package logging builds the diagnostic logger used by the CLI.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides the log level (debug, info, warn, error).
const EnvLogLevel = "TIEMPOS_LOG_LEVEL"

// Config defines logger configuration.
type Config struct {
	Level       string
	OutputPaths []string
}

// DefaultConfig logs warnings and errors to stderr.
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		OutputPaths: []string{"stderr"},
	}
}

// VerboseConfig logs everything down to debug to stderr.
func VerboseConfig() Config {
	return Config{
		Level:       "debug",
		OutputPaths: []string{"stderr"},
	}
}

// New creates a console logger. The level from EnvLogLevel, when set,
// takes precedence over cfg.Level.
func New(cfg Config) (*zap.Logger, error) {
	levelName := cfg.Level
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		levelName = env
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          "console",
		EncoderConfig:     encoderConfig(),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	return zapCfg.Build()
}

// NewOrNop creates a logger and falls back to a no-op logger on error.
func NewOrNop(verbose bool) *zap.Logger {
	cfg := DefaultConfig()
	if verbose {
		cfg = VerboseConfig()
	}
	logger, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
