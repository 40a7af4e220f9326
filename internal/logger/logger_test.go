package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "planner")

	err := Init(Config{Debug: false, DataDir: dataDir})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(dataDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	// Logging must not panic in either mode.
	Debug("debug message")
	Info("info message", "key", "value")
	Warn("warn message")
	Error("error message", "err", os.ErrNotExist)
}

func TestInitDebugMode(t *testing.T) {
	dataDir := t.TempDir()

	if err := Init(Config{Debug: true, DataDir: dataDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	Debug("visible in debug mode")
}

func TestHelpersNilSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Helpers are no-ops before Init rather than panicking.
	Debug("no logger")
	Info("no logger")
	Warn("no logger")
	Error("no logger")
}
