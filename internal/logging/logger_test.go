package logging

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		env       string
		wantDebug bool
		wantWarn  bool
	}{
		{"default", DefaultConfig(), "", false, true},
		{"verbose", VerboseConfig(), "", true, true},
		{"env overrides", DefaultConfig(), "debug", true, true},
		{"env error only", VerboseConfig(), "error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.env)

			logger, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer func() { _ = logger.Sync() }()

			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Core().Enabled(zapcore.WarnLevel); got != tt.wantWarn {
				t.Errorf("warn enabled = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	if _, err := New(DefaultConfig()); err == nil {
		t.Error("New() expected error for invalid level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "log.txt")

	logger, err := New(Config{Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}

func TestNewOrNop_FallsBack(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	logger := NewOrNop(true)
	if logger == nil {
		t.Fatal("NewOrNop() returned nil")
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("fallback logger should be a no-op")
	}
}
