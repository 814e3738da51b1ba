package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "cmenu.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestWarnAndErrorWriteToConfiguredPath(t *testing.T) {
	path := useTempLog(t)
	Warn("menu not found", "id", "ctx")
	Error(errors.New("boom"))
	Error(nil)

	out := readLog(t, path)
	if !strings.Contains(out, "menu not found") || !strings.Contains(out, "id=ctx") {
		t.Fatalf("expected warning in log, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error in log, got %q", out)
	}
	if n := strings.Count(strings.TrimSpace(out), "\n") + 1; n != 2 {
		t.Fatalf("expected 2 log lines, got %d", n)
	}
}

func TestTraceGatedByFlag(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("menu.open", map[string]interface{}{"id": "ctx"})

	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(readLog(t, path)), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "menu.open" || entry.Payload["id"] != "ctx" {
		t.Fatalf("unexpected trace entry %#v", entry)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
