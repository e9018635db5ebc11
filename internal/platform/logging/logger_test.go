package logging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WithAndErrorFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "analysis")

	logger.WarnContext(context.Background(), "section unavailable", "section", "same_venue", "error", errors.New("no rows"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "analysis" {
		t.Fatalf("missing component field: %v", fields)
	}
	if fields["section"] != "same_venue" {
		t.Fatalf("missing section field: %v", fields)
	}
	if fields["error"] != "no rows" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))
	logger.Info("odd", "dangling")
	logger.Debug("filtered")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if _, ok := logs.All()[0].ContextMap()["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}

	var nilLogger *Logger
	nilLogger.Info("does not panic")
}

func TestNew_WritesRotatingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matchstudy.log")
	logger := New(LevelInfo, FileOptions{Path: path})
	logger.Info("analysis finished", "fixture_id", "2456789")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"fixture_id":"2456789"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}
