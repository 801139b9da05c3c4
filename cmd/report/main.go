// Command report runs the draft efficiency pipeline once over a cleaned table
// and prints the text report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/report"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/server"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store/sqlite"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

const (
	appName    = "nba-draft-efficiency-report"
	appVersion = "dev"

	playersFile = "NBAStats_with_value_metrics.csv"
	teamsFile   = "team_draft_efficiency_report.csv"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	source     string
	input      string
	url        string
	useFixture bool
	top        int
	minPicks   int
	outDir     string
	snapDir    string
	retention  int
	sqlitePath string
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.source, "source", cfg.Input.Source, "record source: csv, http or fixture (env: INPUT_SOURCE)")
	fs.StringVar(&o.input, "input", cfg.Input.Path, "cleaned draft table (env: INPUT_PATH)")
	fs.StringVar(&o.url, "url", cfg.Input.URL, "table URL for the http source (env: INPUT_URL)")
	fs.BoolVar(&o.useFixture, "fixture", false, "use the built-in sample league, same as -source fixture")
	fs.IntVar(&o.top, "top", cfg.Analysis.TopN, "entries per ranking (env: TOP_N)")
	fs.IntVar(&o.minPicks, "min-picks", cfg.Analysis.MinTeamPicks, "drafted players a team needs to qualify (env: MIN_TEAM_PICKS)")
	fs.StringVar(&o.outDir, "out", "", "directory for the augmented player and team tables")
	fs.StringVar(&o.snapDir, "snapshots", cfg.Storage.SnapshotDir, "snapshot directory (env: SNAPSHOT_DIR)")
	fs.IntVar(&o.retention, "retention", cfg.Storage.SnapshotRetention, "runs kept in snapshots and sqlite (env: SNAPSHOT_RETENTION)")
	fs.StringVar(&o.sqlitePath, "sqlite", cfg.Storage.SQLitePath, "sqlite archive path (env: SQLITE_PATH)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.useFixture {
		o.source = config.SourceFixture
	}
	o.source = strings.ToLower(strings.TrimSpace(o.source))
	switch o.source {
	case config.SourceCSV, config.SourceFixture:
	case config.SourceHTTP:
		if o.url == "" {
			return options{}, errors.New("-source http needs -url or INPUT_URL")
		}
	default:
		return options{}, fmt.Errorf("unknown source %q", o.source)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	logCfg := cfg.Log.Logging(appName, appVersion)
	logCfg.Output = stderr
	logger := logging.NewLogger(logCfg)

	in := cfg.Input
	in.Source, in.Path, in.URL = opts.source, opts.input, opts.url
	source := server.SelectSource(config.Config{Input: in}, logger)
	name := opts.source
	records, err := source.FetchRecords(ctx)
	if err != nil {
		var missing *tabular.MissingColumnsError
		if errors.As(err, &missing) {
			fmt.Fprintf(stderr, "error: %s is missing required columns: %v\n", opts.input, missing.Columns)
			return exitError
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	start := time.Now()
	res, err := pipeline.Run(records, pipeline.Options{MinTeamPicks: opts.minPicks})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	logging.Info(logger, "pipeline run complete",
		slog.String(logging.FieldSource, name),
		slog.Int(logging.FieldPlayers, len(res.Players)),
		slog.Int(logging.FieldTeams, len(res.Teams.All)),
		slog.Int(logging.FieldQualified, len(res.Qualified)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)

	runRec := store.Run{ID: uuid.NewString(), At: time.Now().UTC(), Source: name, Result: res}
	if err := persist(ctx, opts, runRec, logger); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	if err := report.Render(stdout, res.View(), opts.top); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	return exitOK
}

// persist writes the run to every configured sink.
func persist(ctx context.Context, o options, run store.Run, logger *slog.Logger) error {
	if o.outDir != "" {
		if err := writeTables(o.outDir, run); err != nil {
			return err
		}
		logging.Info(logger, "tables written", slog.String("dir", o.outDir))
	}
	if o.snapDir != "" {
		id, err := snapshots.NewWriter(o.snapDir, o.retention).WriteRun(run)
		if err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		logging.Info(logger, "snapshot written", slog.String(logging.FieldRunID, id))
	}
	if o.sqlitePath != "" {
		db, err := sqlite.Open(ctx, o.sqlitePath, o.retention)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveRun(ctx, run); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		logging.Info(logger, "run archived", slog.String(logging.FieldRunID, run.ID))
	}
	return nil
}

func writeTables(dir string, run store.Run) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, playersFile), func(w io.Writer) error {
		return tabular.WritePlayers(w, run.Result.Players)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, teamsFile), func(w io.Writer) error {
		return tabular.WriteTeams(w, run.Result.Teams.All)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
