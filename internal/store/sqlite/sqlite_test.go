package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/testutil"
)

func sampleRun(t *testing.T, id string, at time.Time) store.Run {
	t.Helper()
	var records []players.Record
	for i := 0; i < 3; i++ {
		records = append(records, players.Record{
			FirstName:    "P",
			LastName:     string(rune('A' + i)),
			TeamName:     "Alpha",
			DraftYear:    optional.Some(2000 + i),
			DraftRound:   optional.Some(1),
			DraftNumber:  optional.Some(i + 1),
			Points:       float64(10 + i),
			CareerLength: 5,
		})
	}
	records = append(records, players.Record{FirstName: "Free", LastName: "Agent", TeamName: "Beta", Points: 4, CareerLength: 3})
	res, err := pipeline.Run(records, pipeline.Options{MinTeamPicks: 1})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return store.Run{ID: id, At: at, Source: "test", Result: res}
}

func openStore(t *testing.T, retention int) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "draft.db"), retention)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLatestTeamsEmpty(t *testing.T) {
	s := openStore(t, 2)
	if _, _, err := s.LatestTeams(context.Background()); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestSaveRunRoundTripsTeams(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, 2)
	run := sampleRun(t, "run-1", testutil.SampleRunAt)
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}

	id, got, err := s.LatestTeams(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if id != "run-1" || len(got) != 1 {
		t.Fatalf("expected one team for run-1, got %s %+v", id, got)
	}
	want := run.Result.Teams.All[0]
	if got[0].TeamName != want.TeamName || got[0].TotalPicks != want.TotalPicks || !got[0].Qualified {
		t.Fatalf("unexpected aggregate %+v", got[0])
	}
	if got[0].AvgROIPerSeason != want.AvgROIPerSeason || got[0].FirstDraftYear != want.FirstDraftYear {
		t.Fatalf("optional fields did not round trip: %+v vs %+v", got[0], want)
	}

	n, err := s.playerCount(ctx, "run-1")
	if err != nil || n != 4 {
		t.Fatalf("expected 4 stored players, got %d %v", n, err)
	}
}

func TestSaveRunPrunesBeyondRetention(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, 2)
	times := testutil.Hourly(3)
	for i, id := range []string{"a", "b", "c"} {
		if err := s.SaveRun(ctx, sampleRun(t, id, times[i])); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	ids, err := s.runIDs(ctx)
	if err != nil {
		t.Fatalf("run ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != "c" || ids[1] != "b" {
		t.Fatalf("expected [c b], got %v", ids)
	}
	if n, _ := s.playerCount(ctx, "a"); n != 0 {
		t.Fatalf("expected pruned players for run a, got %d", n)
	}
}

func TestSaveRunDuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, 3)
	run := sampleRun(t, "dup", time.Now())
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveRun(ctx, run); err == nil {
		t.Fatalf("expected duplicate run id to fail")
	}
	if n, _ := s.playerCount(ctx, "dup"); n != 4 {
		t.Fatalf("expected rollback to keep 4 players, got %d", n)
	}
}
