package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.log")

	logger, closer := newLogger(path, "debug")
	logger.Debug("marquee start", slog.Int("speed", 3))
	assertNoError(t, closer.Close())

	b, err := os.ReadFile(path)
	assertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	var entry map[string]any
	assertNoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	assertEqual(t, entry["msg"], "marquee start", "msg")
	assertEqual(t, entry["level"], "DEBUG", "level")
	assertEqual(t, entry["app"], "marquee", "app attribute")
	assertEqual(t, entry["speed"], float64(3), "speed attribute")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.log")

	logger, closer := newLogger(path, "warn")
	logger.Info("dropped")
	logger.Warn("kept")
	assertNoError(t, closer.Close())

	b, err := os.ReadFile(path)
	assertNoError(t, err)
	if strings.Contains(string(b), "dropped") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(b), "kept") {
		t.Error("warn entry missing")
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, closer := newLogger("  ", "debug")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger without a file should discard everything")
	}
	assertNoError(t, closer.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assertEqual(t, parseLevel(tt.in), tt.want, tt.in)
	}
}
