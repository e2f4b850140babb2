package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"simulation started", "run_id=run_1"}},
		{"TEXT", []string{"simulation started", "run_id=run_1"}},
		{"json", []string{`"msg":"simulation started"`, `"run_id":"run_1"`}},
		{"JSON", []string{`"msg":"simulation started"`, `"run_id":"run_1"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			NewLoggerWithWriter(slog.LevelInfo, tt.format, &buf).Info("simulation started", "run_id", "run_1")
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("missing %q in %s", w, buf.String())
				}
			}
		})
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("step applied")
	logger.Warn("simulation aborted")

	if strings.Contains(buf.String(), "step applied") {
		t.Errorf("INFO record passed WARN filter: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "simulation aborted") {
		t.Errorf("WARN record missing: %s", buf.String())
	}
}

func TestNewLoggerWithWriter_ChildLogger(t *testing.T) {
	var buf bytes.Buffer
	child := NewLoggerWithWriter(slog.LevelDebug, "text", &buf).With("component", "simulation")
	child.Debug("step applied", "index", 3)

	if !strings.Contains(buf.String(), "component=simulation") || !strings.Contains(buf.String(), "index=3") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
