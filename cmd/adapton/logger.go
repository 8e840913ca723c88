package main

import (
	"io"
	"log/slog"
)

// newLogger creates a text slog.Logger at the requested level for the
// engine's tracing output.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
