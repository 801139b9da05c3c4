package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

func sampleRun(t *testing.T, id string, pts float64) store.Run {
	t.Helper()
	var records []players.Record
	for i := 0; i < 2; i++ {
		records = append(records, players.Record{
			FirstName:    "P",
			LastName:     string(rune('A' + i)),
			TeamName:     "Alpha",
			DraftYear:    optional.Some(2001),
			DraftRound:   optional.Some(1),
			DraftNumber:  optional.Some(i + 3),
			Points:       pts,
			CareerLength: 5,
		})
	}
	res, err := pipeline.Run(records, pipeline.Options{MinTeamPicks: 1})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return store.Run{ID: id, At: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Source: "fixture", Result: res}
}

func writeRun(t *testing.T, w *Writer, run store.Run) string {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for run %s", run.ID)
	}
	id, err := w.WriteRun(run)
	if err != nil {
		t.Fatalf("failed to write run %s: %v", run.ID, err)
	}
	return id
}

func requireRunFiles(t *testing.T, w *Writer, id string, want bool) {
	t.Helper()
	for _, kind := range kinds {
		_, err := os.Stat(RunPath(w.BasePath(), kind, id))
		if want && err != nil {
			t.Fatalf("expected %s table for %s: %v", kind, id, err)
		}
		if !want && err == nil {
			t.Fatalf("expected %s table for %s to be pruned", kind, id)
		}
	}
}

func assertIDsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ids mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
