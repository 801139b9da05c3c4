// Package sqlite persists pipeline runs to a SQLite database so the player
// and team tables can be queried outside the service.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// ErrNoRuns is returned when reading from an empty database.
var ErrNoRuns = errors.New("no runs stored")

const (
	driverName = "sqlite"

	// Fixed width so created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		source TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		first_name TEXT,
		last_name TEXT,
		team_name TEXT,
		draft_year INTEGER,
		draft_round INTEGER,
		draft_number INTEGER,
		pts REAL,
		reb REAL,
		ast REAL,
		career_length INTEGER,
		value_score REAL,
		draft_value_ratio REAL,
		roi_per_season REAL,
		expected_value REAL,
		efficiency_score REAL,
		draft_category TEXT,
		quality_tier TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS team_aggregates (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		team_name TEXT NOT NULL,
		total_picks INTEGER,
		avg_value REAL,
		total_value REAL,
		value_std REAL,
		avg_roi_per_season REAL,
		median_roi_per_season REAL,
		avg_efficiency REAL,
		median_efficiency REAL,
		avg_career_length REAL,
		avg_draft_position REAL,
		first_draft_year INTEGER,
		last_draft_year INTEGER,
		draft_span_years INTEGER,
		quality_picks INTEGER,
		elite_picks INTEGER,
		quality_pick_rate REAL,
		elite_pick_rate REAL,
		late_round_gems INTEGER,
		consistency_score REAL,
		qualified INTEGER,
		PRIMARY KEY (run_id, team_name)
	)`,
}

// Store writes runs to SQLite and keeps the most recent Retention runs.
type Store struct {
	db        *sql.DB
	retention int
}

// Open creates or opens the database at path and applies the schema.
func Open(ctx context.Context, path string, retention int) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection keeps writes serialized and the pragma in effect.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	if retention <= 0 {
		retention = 1
	}
	return &Store{db: db, retention: retention}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes the run, its players and its team aggregates in one transaction,
// then prunes runs beyond the retention count.
func (s *Store) SaveRun(ctx context.Context, run store.Run) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `INSERT INTO runs (id, created_at, source) VALUES (?, ?, ?)`,
		run.ID, run.At.UTC().Format(timeLayout), run.Source); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if err = insertPlayers(ctx, tx, run); err != nil {
		return err
	}
	if err = insertTeams(ctx, tx, run); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM runs WHERE id NOT IN (
		SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT ?)`, s.retention); err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return tx.Commit()
}

func insertPlayers(ctx context.Context, tx *sql.Tx, run store.Run) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO players (
		run_id, first_name, last_name, team_name, draft_year, draft_round, draft_number,
		pts, reb, ast, career_length, value_score, draft_value_ratio, roi_per_season,
		expected_value, efficiency_score, draft_category, quality_tier
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare players: %w", err)
	}
	defer stmt.Close()

	for _, p := range run.Result.Players {
		if _, err := stmt.ExecContext(ctx,
			run.ID, p.FirstName, p.LastName, p.TeamName,
			nullInt(p.DraftYear), nullInt(p.DraftRound), nullInt(p.DraftNumber),
			p.Points, p.Rebounds, p.Assists, p.CareerLength,
			p.ValueScore, nullFloat(p.DraftValueRatio), nullFloat(p.ROIPerSeason),
			p.ExpectedValue, nullFloat(p.EfficiencyScore),
			string(p.DraftCategory), string(p.QualityTier),
		); err != nil {
			return fmt.Errorf("insert player %s: %w", p.FullName(), err)
		}
	}
	return nil
}

func insertTeams(ctx context.Context, tx *sql.Tx, run store.Run) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO team_aggregates (
		run_id, team_name, total_picks, avg_value, total_value, value_std,
		avg_roi_per_season, median_roi_per_season, avg_efficiency, median_efficiency,
		avg_career_length, avg_draft_position, first_draft_year, last_draft_year, draft_span_years,
		quality_picks, elite_picks, quality_pick_rate, elite_pick_rate, late_round_gems,
		consistency_score, qualified
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare team aggregates: %w", err)
	}
	defer stmt.Close()

	for _, t := range run.Result.Teams.All {
		if _, err := stmt.ExecContext(ctx,
			run.ID, t.TeamName, t.TotalPicks, t.AvgValue, t.TotalValue, t.ValueStd,
			nullFloat(t.AvgROIPerSeason), nullFloat(t.MedianROIPerSeason),
			nullFloat(t.AvgEfficiency), nullFloat(t.MedianEfficiency),
			t.AvgCareerLength, t.AvgDraftPosition,
			nullInt(t.FirstDraftYear), nullInt(t.LastDraftYear), nullInt(t.DraftSpanYears),
			t.QualityPicks, t.ElitePicks, t.QualityPickRate, t.ElitePickRate, t.LateRoundGems,
			nullFloat(t.ConsistencyScore), t.Qualified,
		); err != nil {
			return fmt.Errorf("insert team %s: %w", t.TeamName, err)
		}
	}
	return nil
}

// LatestTeams reads the team aggregates of the most recent run, ordered by team name.
func (s *Store) LatestTeams(ctx context.Context) (string, []teams.Aggregate, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNoRuns
	}
	if err != nil {
		return "", nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		team_name, total_picks, avg_value, total_value, value_std,
		avg_roi_per_season, median_roi_per_season, avg_efficiency, median_efficiency,
		avg_career_length, avg_draft_position, first_draft_year, last_draft_year, draft_span_years,
		quality_picks, elite_picks, quality_pick_rate, elite_pick_rate, late_round_gems,
		consistency_score, qualified
	FROM team_aggregates WHERE run_id = ? ORDER BY team_name`, runID)
	if err != nil {
		return "", nil, err
	}
	defer rows.Close()

	var out []teams.Aggregate
	for rows.Next() {
		var (
			t                                   teams.Aggregate
			avgROI, medROI, avgEff, medEff, con sql.NullFloat64
			first, last, span                   sql.NullInt64
		)
		if err := rows.Scan(
			&t.TeamName, &t.TotalPicks, &t.AvgValue, &t.TotalValue, &t.ValueStd,
			&avgROI, &medROI, &avgEff, &medEff,
			&t.AvgCareerLength, &t.AvgDraftPosition, &first, &last, &span,
			&t.QualityPicks, &t.ElitePicks, &t.QualityPickRate, &t.ElitePickRate, &t.LateRoundGems,
			&con, &t.Qualified,
		); err != nil {
			return "", nil, err
		}
		t.AvgROIPerSeason = fromNullFloat(avgROI)
		t.MedianROIPerSeason = fromNullFloat(medROI)
		t.AvgEfficiency = fromNullFloat(avgEff)
		t.MedianEfficiency = fromNullFloat(medEff)
		t.ConsistencyScore = fromNullFloat(con)
		t.FirstDraftYear = fromNullInt(first)
		t.LastDraftYear = fromNullInt(last)
		t.DraftSpanYears = fromNullInt(span)
		out = append(out, t)
	}
	return runID, out, rows.Err()
}

// runIDs lists stored runs, newest first.
func (s *Store) runIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// playerCount counts stored player rows for a run.
func (s *Store) playerCount(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

func nullFloat(v optional.Value[float64]) sql.NullFloat64 {
	f, ok := v.Get()
	return sql.NullFloat64{Float64: f, Valid: ok}
}

func nullInt(v optional.Value[int]) sql.NullInt64 {
	n, ok := v.Get()
	return sql.NullInt64{Int64: int64(n), Valid: ok}
}

func fromNullFloat(v sql.NullFloat64) optional.Value[float64] {
	if !v.Valid {
		return optional.None[float64]()
	}
	return optional.Some(v.Float64)
}

func fromNullInt(v sql.NullInt64) optional.Value[int] {
	if !v.Valid {
		return optional.None[int]()
	}
	return optional.Some(int(v.Int64))
}
