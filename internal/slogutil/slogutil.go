// Package slogutil provides slog helpers shared by the fossil CLI.
package slogutil

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a logger writing human-readable lines to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, level))
}

// NewDiscardLogger creates a logger that drops everything.
// Used by tests and by library callers that pass no logger.
func NewDiscardLogger() *slog.Logger {
	return slog.New(NewHandler(io.Discard, slog.Level(100)))
}

// LevelFromString converts a string to a slog.Level.
// Unrecognized strings fall back to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity maps CLI -v flags to a level: 0 -> warn (CLI
// default), 1 -> info, 2+ -> debug.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
