package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/horrorlist/pkg/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New(config.Log{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(0) {
		t.Fatalf("expected nop logger to be disabled")
	}
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "horrorlist.log")
	logger, err := New(config.Log{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", line, err)
	}
	if rec["msg"] != "hello" || rec["level"] != "debug" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "horrorlist.log")
	if _, err := New(config.Log{Path: path, Level: "loud"}); err == nil {
		t.Fatalf("expected bad level to fail")
	}
}
