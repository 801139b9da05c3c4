package snapshots

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

// DefaultRetention is the number of runs kept when none is configured.
const DefaultRetention = 5

// Writer persists run tables and the manifest with pruning.
type Writer struct {
	basePath  string
	retention int
	newID     func() string
}

// NewWriter constructs a writer rooted at basePath keeping the last retention runs.
func NewWriter(basePath string, retention int) *Writer {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Writer{
		basePath:  basePath,
		retention: retention,
		newID:     uuid.NewString,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRun writes the players, teams and qualified tables of run and returns
// the run ID they are stored under. A run whose tables match the latest stored
// run byte for byte is not rewritten; the latest ID is returned instead.
func (w *Writer) WriteRun(run store.Run) (string, error) {
	if w == nil {
		return "", errors.New("snapshot writer not configured")
	}
	id := run.ID
	if id == "" {
		id = w.newID()
	}

	tables, err := encodeTables(run.Result)
	if err != nil {
		return "", err
	}

	m, _ := readManifest(ManifestPath(w.basePath), w.retention)
	m.Retention.Runs = w.retention
	m.Runs.Source = run.Source
	m.Runs.LastRefreshed = run.At.UTC()
	if run.At.IsZero() {
		m.Runs.LastRefreshed = time.Now().UTC()
	}

	if m.Runs.Latest != "" && w.matches(m.Runs.Latest, tables) {
		return m.Runs.Latest, writeManifest(w.basePath, m)
	}

	for _, kind := range kinds {
		target := RunPath(w.basePath, kind, id)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", err
		}
		if err := writeAtomic(target, tables[kind]); err != nil {
			return "", fmt.Errorf("write %s table: %w", kind, err)
		}
	}

	m.Runs.IDs = append(m.Runs.IDs, id)
	m.Runs.Latest = id
	m.Runs.IDs = w.prune(m.Runs.IDs)
	if err := writeManifest(w.basePath, m); err != nil {
		return "", err
	}
	return id, nil
}

func encodeTables(res pipeline.Result) (map[Kind][]byte, error) {
	var players, all, qualified bytes.Buffer
	if err := tabular.WritePlayers(&players, res.Players); err != nil {
		return nil, err
	}
	if err := tabular.WriteTeams(&all, res.Teams.All); err != nil {
		return nil, err
	}
	if err := tabular.WriteTeams(&qualified, res.Qualified); err != nil {
		return nil, err
	}
	return map[Kind][]byte{
		KindPlayers:   players.Bytes(),
		KindTeams:     all.Bytes(),
		KindQualified: qualified.Bytes(),
	}, nil
}

func (w *Writer) matches(runID string, tables map[Kind][]byte) bool {
	for _, kind := range kinds {
		existing, err := os.ReadFile(RunPath(w.basePath, kind, runID))
		if err != nil || !bytes.Equal(existing, tables[kind]) {
			return false
		}
	}
	return true
}

// prune removes the oldest runs beyond retention and returns the IDs kept.
func (w *Writer) prune(ids []string) []string {
	if len(ids) <= w.retention {
		return ids
	}
	drop := ids[:len(ids)-w.retention]
	for _, id := range drop {
		for _, kind := range kinds {
			_ = os.Remove(RunPath(w.basePath, kind, id))
		}
	}
	return append([]string(nil), ids[len(ids)-w.retention:]...)
}
