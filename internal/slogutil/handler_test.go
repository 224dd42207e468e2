package slogutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug)

	logger.Info("scan complete", "root", "/repo", "markers", 42)

	line := buf.String()
	if !strings.Contains(line, "[info] scan complete") {
		t.Errorf("missing level and message: %q", line)
	}
	if !strings.Contains(line, "| root=/repo markers=42") {
		t.Errorf("missing attrs: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("missing trailing newline: %q", line)
	}
}

func TestHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug)

	logger.Warn("odd path", "path", "has space/file.go", "empty", "")

	line := buf.String()
	if !strings.Contains(line, `path="has space/file.go"`) {
		t.Errorf("value with space not quoted: %q", line)
	}
	if !strings.Contains(line, `empty=""`) {
		t.Errorf("empty value not quoted: %q", line)
	}
}

func TestHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-threshold records written: %q", out)
	}
	if !strings.Contains(out, "[error] visible") {
		t.Errorf("error record dropped: %q", out)
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug).With("component", "scan")

	logger.Info("started")

	if !strings.Contains(buf.String(), "component=scan") {
		t.Errorf("inherited attr missing: %q", buf.String())
	}
}

func TestDiscardLogger(t *testing.T) {
	// Must be safe at every level without output or panic.
	logger := NewDiscardLogger()
	logger.Debug("a")
	logger.Error("b", "k", "v")
}

func TestLevelFromString(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range testCases {
		if got := LevelFromString(tc.in); got != tc.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	testCases := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, tc := range testCases {
		if got := LevelFromVerbosity(tc.verbosity); got != tc.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tc.verbosity, got, tc.want)
		}
	}
}
