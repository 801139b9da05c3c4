package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/report"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

const header = "PLAYER_FIRST_NAME,PLAYER_LAST_NAME,TEAM_NAME,DRAFT_YEAR,DRAFT_ROUND,DRAFT_NUMBER,PTS,REB,AST,career_length\n"

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunFixturePrintsReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-fixture", "-top", "3"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "NBA TEAM DRAFT EFFICIENCY REPORT") {
		t.Fatalf("expected report header, got:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), report.NoDataLine) {
		t.Fatalf("expected ranked output for the fixture league")
	}
}

func TestRunReportsMissingColumns(t *testing.T) {
	path := writeInput(t, "PLAYER_FIRST_NAME,PTS\nA,1\n")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-input", path}, &stdout, &stderr)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	for _, col := range []string{"TEAM_NAME", "DRAFT_NUMBER", "career_length"} {
		if !strings.Contains(stderr.String(), col) {
			t.Fatalf("expected %s named in error, got %q", col, stderr.String())
		}
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no report on failure, got %s", stdout.String())
	}
}

func TestRunWithoutDraftedPlayersPrintsNoData(t *testing.T) {
	path := writeInput(t, header+"Free,Agent,Boston Celtics,,,,10,5,2,4\n")
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-input", path}, &stdout, &stderr); code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), report.NoDataLine) {
		t.Fatalf("expected no-data line, got:\n%s", stdout.String())
	}
}

func TestRunWritesEverySink(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-fixture",
		"-out", out,
		"-snapshots", filepath.Join(dir, "snapshots"),
		"-sqlite", filepath.Join(dir, "runs.db"),
	}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	f, err := os.Open(filepath.Join(out, teamsFile))
	if err != nil {
		t.Fatalf("expected teams table: %v", err)
	}
	defer f.Close()
	rows, err := tabular.DecodeTeams(f)
	if err != nil || len(rows) == 0 {
		t.Fatalf("expected decodable teams table, got %d rows %v", len(rows), err)
	}
	if _, err := os.Stat(filepath.Join(out, playersFile)); err != nil {
		t.Fatalf("expected players table: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snapshots", "manifest.json")); err != nil {
		t.Fatalf("expected snapshot manifest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "runs.db")); err != nil {
		t.Fatalf("expected sqlite archive: %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-nope"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if code := run(context.Background(), []string{"extra"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("expected usage exit for positional args, got %d", code)
	}
}

func TestRunReadsHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(header + "LeBron,James,Cleveland Cavaliers,2003,1,1,27.1,7.5,7.4,21\n"))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-source", "http", "-url", srv.URL, "-min-picks", "1"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Cleveland Cavaliers") {
		t.Fatalf("expected the downloaded team in the report, got:\n%s", stdout.String())
	}
}

func TestRunRejectsUnusableSource(t *testing.T) {
	cases := map[string][]string{
		"http without url": {"-source", "http", "-url", ""},
		"unknown source":   {"-source", "ftp"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), args, &stdout, &stderr); code != exitUsage {
				t.Fatalf("expected exit 2, got %d", code)
			}
			if stderr.Len() == 0 {
				t.Fatalf("expected a usage message")
			}
		})
	}
}
