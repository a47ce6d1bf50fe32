package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withTempLogPath points the logger at a temp file for the test's lifetime.
func withTempLogPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), LogFileName)
	original := getLogPath
	getLogPath = func() (string, error) { return path, nil }
	t.Cleanup(func() {
		Close()
		_ = Init(false)
		getLogPath = original
	})
	return path
}

func TestInitDisabledIsNoOp(t *testing.T) {
	withTempLogPath(t)

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) returned error: %v", err)
	}
	if Enabled() {
		t.Fatal("Enabled() should be false after Init(false)")
	}
	// Logging while disabled must not panic or create files.
	Log("dropped")
	Logf("dropped %d", 42)
}

func TestInitEnabledWritesMessages(t *testing.T) {
	path := withTempLogPath(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) returned error: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() should be true after Init(true)")
	}

	Logf("variant switched to %s", "dark")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "variant switched to dark") {
		t.Fatalf("log file missing message, got: %s", data)
	}
}

func TestInitTruncatesPreviousLog(t *testing.T) {
	path := withTempLogPath(t)

	if err := Init(true); err != nil {
		t.Fatalf("first Init returned error: %v", err)
	}
	Logf("stale entry")
	Close()

	if err := Init(true); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "stale entry") {
		t.Fatal("log file should be truncated on Init")
	}
}
