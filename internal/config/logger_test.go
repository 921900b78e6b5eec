package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		logger := NewLogger(LogConfig{Level: tt.level}, &bytes.Buffer{})
		if !logger.Enabled(context.Background(), tt.enabled) {
			t.Errorf("%s: expected %v to be enabled", tt.level, tt.enabled)
		}
		if logger.Enabled(context.Background(), tt.muted) {
			t.Errorf("%s: expected %v to be muted", tt.level, tt.muted)
		}
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LogConfig{Format: "json"}, &buf).Info("saved", "file", "a.mp4")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected JSON output, got %q", buf.String())
	}
	if line["file"] != "a.mp4" {
		t.Errorf("Expected file attribute, got %v", line)
	}

	buf.Reset()
	NewLogger(LogConfig{Format: "text"}, &buf).Info("saved", "file", "a.mp4")
	if !strings.Contains(buf.String(), "file=a.mp4") {
		t.Errorf("Expected text output, got %q", buf.String())
	}
}
