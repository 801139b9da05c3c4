package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAttachesCause(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Output: &buf})

	Error(logger, "refresh failed", errors.New("source unavailable"), FieldRunID, "abc")
	Debug(logger, "detail")

	out := buf.String()
	if !strings.Contains(out, "error=\"source unavailable\"") || !strings.Contains(out, "run_id=abc") {
		t.Fatalf("expected error and run id fields, got %q", out)
	}
	if !strings.Contains(out, "msg=detail") {
		t.Fatalf("expected debug line at debug level, got %q", out)
	}
}
