package csvsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

const table = "PLAYER_FIRST_NAME,PLAYER_LAST_NAME,TEAM_NAME,DRAFT_YEAR,DRAFT_ROUND,DRAFT_NUMBER,PTS,REB,AST,career_length\n" +
	"Nikola,Jokic,Denver Nuggets,2014,2,41,20.9,10.7,6.9,10\n" +
	"Fred,VanVleet,Toronto Raptors,,,,13.2,3.4,5.1,8\n"

func TestFetchRecordsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := New(path).FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(records) != 2 || records[0].DraftNumber.Or(0) != 41 || records[1].Drafted() {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestFetchRecordsMissingFileIsUnavailable(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.csv")).FetchRecords(context.Background())
	if !errors.Is(err, providers.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !providers.Retryable(err) {
		t.Fatalf("expected a missing file to be retryable")
	}
}

func TestFetchRecordsMissingColumns(t *testing.T) {
	fsys := fstest.MapFS{"players.csv": {Data: []byte("PLAYER_FIRST_NAME,PTS\nA,1\n")}}

	_, err := NewFS(fsys, "players.csv").FetchRecords(context.Background())
	var missing *tabular.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if providers.Retryable(err) {
		t.Fatalf("expected schema errors to be permanent")
	}
}

func TestFetchRecordsHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFS(fstest.MapFS{}, "players.csv").FetchRecords(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
