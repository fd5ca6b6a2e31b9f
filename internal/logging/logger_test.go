package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readEntries decodes every JSON log line written to path.
func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("malformed log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewplan.log")

	logger, err := NewLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	logger.Info("solving started", "tasks", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["msg"] != "solving started" {
		t.Errorf("msg = %v", entries[0]["msg"])
	}
	if entries[0]["tasks"] != float64(3) {
		t.Errorf("tasks = %v", entries[0]["tasks"])
	}
	if entries[0]["level"] != "INFO" {
		t.Errorf("level = %v", entries[0]["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewplan.log")

	logger, err := NewLogger(path, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "WARN" || entries[1]["level"] != "ERROR" {
		t.Errorf("levels = %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestAttributePropagation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewplan.log")

	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	solver := logger.WithComponent("solver")
	task := solver.WithTask("Write binary search")

	logger.Info("bare")
	solver.Info("component only")
	task.Info("component and task")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if _, ok := entries[0]["component"]; ok {
		t.Error("parent logger should not carry child attributes")
	}
	if entries[1]["component"] != "solver" {
		t.Errorf("component = %v", entries[1]["component"])
	}
	if entries[2]["component"] != "solver" || entries[2]["task"] != "Write binary search" {
		t.Errorf("child attrs = %v", entries[2])
	}
}

func TestWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewplan.log")

	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	child := logger.With("input", "test/task.yaml", "workers", 4)
	child.Info("run configured")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["input"] != "test/task.yaml" {
		t.Errorf("input = %v", entries[0]["input"])
	}
	if entries[0]["workers"] != float64(4) {
		t.Errorf("workers = %v", entries[0]["workers"])
	}

	if got := logger.With(); got != logger {
		t.Error("With() without args should return the same logger")
	}
}

func TestCloseWithoutFile(t *testing.T) {
	logger, err := NewLogger("", LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on a stderr logger should be a no-op, got: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() should also be a no-op, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	// Must not panic or write anywhere.
	logger.Debug("x")
	logger.WithTask("t").Error("y")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
