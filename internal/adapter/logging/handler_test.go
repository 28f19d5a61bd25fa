package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewJSONLoggerWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := NewJSONLogger(Options{Level: "warn", Stderr: &buf})
	if err != nil {
		t.Fatalf("NewJSONLogger: %v", err)
	}
	defer cleanup()

	l := New(logger)
	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "email skipped", "reason", "no password")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %q", buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["msg"] != "email skipped" || record["reason"] != "no password" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNewJSONLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin-reminder.log")
	logger, cleanup, err := NewJSONLogger(Options{File: path})
	if err != nil {
		t.Fatalf("NewJSONLogger: %v", err)
	}

	logger.Info("fetched schedule")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "fetched schedule") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestNilSLoggerIsSafe(t *testing.T) {
	var l *SLogger
	l.Error(context.Background(), "ignored")
	New(nil).Info(context.Background(), "ignored")
}
