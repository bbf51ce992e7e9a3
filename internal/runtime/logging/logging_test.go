package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestSlogServiceLoggerEmitsFields(t *testing.T) {
	base, buf := newCaptureLogger()
	logger := NewSlogServiceLogger(base)

	logger.Info("bus registered", LogFields{"bus": "fusion", "keys": 3})

	out := buf.String()
	if !strings.Contains(out, `"bus":"fusion"`) {
		t.Fatalf("expected bus field in output, got %s", out)
	}
	if !strings.Contains(out, "bus registered") {
		t.Fatalf("expected message in output, got %s", out)
	}
}

func TestSlogServiceLoggerWithPersistsFields(t *testing.T) {
	base, buf := newCaptureLogger()
	logger := NewSlogServiceLogger(base).With(LogFields{"session_id": "01ABC"})

	logger.Debug("sweep", nil)

	if !strings.Contains(buf.String(), `"session_id":"01ABC"`) {
		t.Fatalf("expected session_id from With, got %s", buf.String())
	}
}

func TestSlogServiceLoggerErrorIncludesError(t *testing.T) {
	base, buf := newCaptureLogger()
	logger := NewSlogServiceLogger(base)

	logger.Error("sweep failed", errors.New("boom"), LogFields{"bus": "fusion"})

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error in output, got %s", out)
	}
}

func TestNewSlogServiceLoggerPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil slog logger")
		}
	}()
	NewSlogServiceLogger(nil)
}

func TestNopLoggerIsSilentAndChainable(t *testing.T) {
	logger := NewNopLogger().With(LogFields{"k": "v"})
	logger.Info("ignored", nil)
	logger.Error("ignored", errors.New("x"), nil)
}
