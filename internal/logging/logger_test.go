package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, "info", "json")).Info("loaded", "rows", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["msg"] != "loaded" || rec["rows"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
}

func TestNewHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "warn", "text"))
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("level filter not applied:\n%s", out)
	}
}

func TestFanout(t *testing.T) {
	var debug, warn bytes.Buffer
	h := Fanout(NewHandler(&debug, "debug", "text"), NewHandler(&warn, "warn", "text"))
	logger := slog.New(h).With("session_id", "abc")

	logger.Debug("parsing")
	logger.Warn("slow parse")

	if !strings.Contains(debug.String(), "parsing") || !strings.Contains(debug.String(), "slow parse") {
		t.Errorf("debug sink missing records:\n%s", debug.String())
	}
	if strings.Contains(warn.String(), "parsing") || !strings.Contains(warn.String(), "slow parse") {
		t.Errorf("warn sink got wrong records:\n%s", warn.String())
	}
	if !strings.Contains(warn.String(), "session_id=abc") {
		t.Errorf("attrs not forwarded:\n%s", warn.String())
	}
}

func TestFromContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(NewHandler(&buf, "info", "text")))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	WithFields(ctx, "view", "dtypes").Info("rendered")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-42") || !strings.Contains(out, "view=dtypes") {
		t.Errorf("missing context fields:\n%s", out)
	}
}

func TestSetup_WithoutSeq(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closeFn := Setup("debug", "json", "")
	if closeFn == nil {
		t.Fatal("Setup() returned a nil close func")
	}
	closeFn()
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not applied to the default logger")
	}
}
