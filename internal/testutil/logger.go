package testutil

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"
)

// NewBufferLogger returns a debug-level slog logger backed by a buffer and the
// buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails the test unless buf holds a text record with msg.
func AssertLogged(t testing.TB, buf *bytes.Buffer, msg string) {
	t.Helper()
	want := msg
	if strings.ContainsAny(msg, " =\"") {
		want = strconv.Quote(msg)
	}
	if !strings.Contains(buf.String(), "msg="+want) {
		t.Fatalf("expected log %q, got:\n%s", msg, buf.String())
	}
}
