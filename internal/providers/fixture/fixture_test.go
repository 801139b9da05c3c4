package fixture

import (
	"context"
	"reflect"
	"testing"
)

func TestFetchRecordsIsDeterministic(t *testing.T) {
	p := New()
	first, err := p.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.FetchRecords(context.Background())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical tables across calls")
	}
	if want := len(notable) + len(Teams)*PicksPerTeam; len(first) != want {
		t.Fatalf("expected %d records, got %d", want, len(first))
	}
}

func TestFetchRecordsReturnsFreshSlice(t *testing.T) {
	p := New()
	first, _ := p.FetchRecords(context.Background())
	first[0].TeamName = "mutated"

	second, _ := p.FetchRecords(context.Background())
	if second[0].TeamName == "mutated" {
		t.Fatalf("expected callers to get an independent copy")
	}
}

func TestGeneratedPicksAreValid(t *testing.T) {
	records, _ := New().FetchRecords(context.Background())
	perTeam := map[string]int{}
	for _, r := range records[len(notable):] {
		n, ok := r.DraftNumber.Get()
		if !ok || n < 1 || n > 60 {
			t.Fatalf("unexpected draft number for %+v", r)
		}
		if r.CareerLength < 1 || r.Points < 0 {
			t.Fatalf("unexpected stats for %+v", r)
		}
		perTeam[r.TeamName]++
	}
	for _, team := range Teams {
		if perTeam[team] != PicksPerTeam {
			t.Fatalf("expected %d picks for %s, got %d", PicksPerTeam, team, perTeam[team])
		}
	}
}

func TestFetchRecordsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchRecords(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
