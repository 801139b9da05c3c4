package testutil

import (
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// SampleRunID identifies the run built by SampleRun.
const SampleRunID = "run-sample"

// SamplePick returns a first-round record for team with the given pick and line.
func SamplePick(team string, year, number, career int, pts float64) players.Record {
	round := 1
	if number > 30 {
		round = 2
	}
	return players.Record{
		FirstName:    "Pick",
		LastName:     team,
		TeamName:     team,
		DraftYear:    optional.Some(year),
		DraftRound:   optional.Some(round),
		DraftNumber:  optional.Some(number),
		Points:       pts,
		Rebounds:     pts / 2,
		Assists:      pts / 4,
		CareerLength: career,
	}
}

// SampleRecords returns a small league: two qualified teams, one small team and one undrafted player.
func SampleRecords() []players.Record {
	var out []players.Record
	for i := 0; i < 12; i++ {
		out = append(out, SamplePick("Alpha", 2000+i, i+1, 4+i%3, float64(8+i)))
		out = append(out, SamplePick("Beta", 2000+i, 30+i, 6, float64(14-i)))
	}
	out = append(out, SamplePick("Gamma", 2005, 3, 2, 4))
	out = append(out, players.Record{FirstName: "Free", LastName: "Agent", TeamName: "Alpha", Points: 8, CareerLength: 9})
	return out
}

// SampleResult runs the pipeline over SampleRecords.
func SampleResult(t testing.TB) pipeline.Result {
	t.Helper()
	res, err := pipeline.Run(SampleRecords(), pipeline.Options{})
	if err != nil {
		t.Fatalf("failed to run sample pipeline: %v", err)
	}
	return res
}

// SampleRun wraps SampleResult in a stored run.
func SampleRun(t testing.TB) store.Run {
	t.Helper()
	return store.Run{
		ID:     SampleRunID,
		At:     SampleRunAt,
		Source: "fixture",
		Result: SampleResult(t),
	}
}
