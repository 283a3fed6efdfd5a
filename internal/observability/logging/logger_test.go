package logging

import (
	"context"
	"log/slog"
	"testing"

	"newsroom/internal/handler/http/requestid"
)

func TestNewLoggerDefaultLevel(t *testing.T) {
	logger := NewLogger()
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info level should be enabled by default")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be disabled by default")
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled when LOG_LEVEL=debug")
	}
}

func TestNewLoggerErrorLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	logger := NewLogger()
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn level should be disabled when LOG_LEVEL=error")
	}
}

func TestWithRequestID(t *testing.T) {
	base := slog.Default()

	if got := WithRequestID(context.Background(), base); got != base {
		t.Error("context without request ID should return the logger unchanged")
	}

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	if got := WithRequestID(ctx, base); got == base {
		t.Error("context with request ID should return a derived logger")
	}
}
