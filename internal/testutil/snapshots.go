package testutil

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteRun writes run as a snapshot and returns its run id.
func WriteRun(t *testing.T, w *snapshots.Writer, run store.Run) string {
	t.Helper()
	id, err := writeRunPayload(w, run)
	if err != nil {
		t.Fatalf("failed to write snapshot %s: %v", run.ID, err)
	}
	return id
}

func writeRunPayload(w *snapshots.Writer, run store.Run) (string, error) {
	if w == nil {
		return "", errors.New("nil snapshot writer")
	}
	return w.WriteRun(run)
}

// SnapshotPath returns the expected file path for one table of a run.
func SnapshotPath(w *snapshots.Writer, kind snapshots.Kind, runID string) string {
	return snapshots.RunPath(w.BasePath(), kind, runID)
}
