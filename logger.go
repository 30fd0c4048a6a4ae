package main

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the application logger. The TUI owns the terminal, so
// logs only go to a rotating file and are discarded when no file is set.
func newLogger(file, level string) (*slog.Logger, io.Closer) {
	if strings.TrimSpace(file) == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}

	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(h).With(slog.String("app", "marquee")), w
}

// parseLevel converts a config level name to slog.Level
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
