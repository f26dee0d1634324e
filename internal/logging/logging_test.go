package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

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
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitSetsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	Init(true, slog.LevelWarn)

	if slog.Default() == prev {
		t.Fatal("Init did not replace the default logger")
	}
	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be suppressed at warn level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestJSONOutputShape(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("pipeline saved", "task", "department")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON, got %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "pipeline saved" {
		t.Errorf("msg = %q, want 'pipeline saved'", m["msg"])
	}
	if m["task"] != "department" {
		t.Errorf("task = %q, want 'department'", m["task"])
	}
}

func TestTextOutputShape(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("dataset written", "rows", 360)

	out := buf.String()
	if !strings.Contains(out, "msg=\"dataset written\"") {
		t.Errorf("missing msg in text output: %s", out)
	}
	if !strings.Contains(out, "rows=360") {
		t.Errorf("missing attribute in text output: %s", out)
	}
}
