package logger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func resetLogger(t *testing.T) {
	t.Helper()
	log = nil
	once = sync.Once{}
	t.Cleanup(func() {
		log = nil
		once = sync.Once{}
	})
}

func TestInitAndLevelHelpers(t *testing.T) {
	resetLogger(t)
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), requestIDContextKey, "req-1")
	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/health", 200, 10*time.Millisecond, "127.0.0.1")
}

func TestInitIsIdempotent(t *testing.T) {
	resetLogger(t)
	Init("development")
	first := GetLogger()
	Init("production")
	if GetLogger() != first {
		t.Fatal("expected second Init call to keep the first logger")
	}
}

func TestWithContextRequestID(t *testing.T) {
	resetLogger(t)
	Init("development")

	base := GetLogger()
	ctx := context.WithValue(context.Background(), requestIDContextKey, "abc-123")
	if WithContext(ctx) == base {
		t.Fatal("expected annotated logger for context carrying a request id")
	}
	if WithContext(context.Background()) != base {
		t.Fatal("expected base logger when no request id is present")
	}
	if WithContext(nil) != base {
		t.Fatal("expected base logger for nil context")
	}
}

func TestInitProduction(t *testing.T) {
	resetLogger(t)
	Init("production")
	if GetLogger() == nil {
		t.Fatal("expected production logger initialized")
	}
}

func TestInitPanicsWhenBuildFails(t *testing.T) {
	resetLogger(t)
	origBuild := buildLogger
	t.Cleanup(func() { buildLogger = origBuild })

	buildLogger = func(zap.Config) (*zap.Logger, error) {
		return nil, errors.New("build failed")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when logger builder fails")
		}
	}()
	Init("production")
}
