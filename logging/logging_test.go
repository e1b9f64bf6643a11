package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_ErrorHasStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "info"})

	logger.Info("hello")
	logger.Error("broken")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var info, errLine map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &info); err != nil {
		t.Fatalf("decode info line: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &errLine); err != nil {
		t.Fatalf("decode error line: %v", err)
	}
	if _, ok := info["stacktrace"]; ok {
		t.Error("info line should not carry a stacktrace")
	}
	if _, ok := errLine["stacktrace"]; !ok {
		t.Error("error line should carry a stacktrace")
	}
	if errLine["service"] != "portfolio-api" {
		t.Errorf("expected service attribute, got %v", errLine["service"])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "warn", Format: "text"})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should have been filtered")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line missing")
	}
}
