package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// StubSource is a test double for providers.RecordSource.
type StubSource struct {
	mu      sync.Mutex
	records []players.Record
	err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// NewStubSource returns a source yielding records.
func NewStubSource(records []players.Record) *StubSource {
	return &StubSource{records: records}
}

// Set swaps the configured records and error.
func (s *StubSource) Set(records []players.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.err = err
}

// FetchRecords returns the configured records and error while tracking calls.
func (s *StubSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, s.err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	RunID   string
	Teams   []teams.Aggregate
	LoadErr error
}

// LoadLatest returns the configured team table.
func (s *StubSnapshotStore) LoadLatest() (string, []teams.Aggregate, error) {
	if s.LoadErr != nil {
		return "", nil, s.LoadErr
	}
	if s.RunID == "" {
		return "", nil, errors.New("snapshot not found")
	}
	return s.RunID, s.Teams, nil
}

// StubSnapshotWriter is a test double for refresher.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	written []store.Run
	Err     error
}

// WriteRun records the run for verification in tests.
func (w *StubSnapshotWriter) WriteRun(run store.Run) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return "", w.Err
	}
	w.written = append(w.written, run)
	return run.ID, nil
}

// Written returns the runs recorded so far.
func (w *StubSnapshotWriter) Written() []store.Run {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]store.Run(nil), w.written...)
}

// StubArchive is a test double for refresher.Archive and handlers.TeamsArchive.
type StubArchive struct {
	mu    sync.Mutex
	saved []string
	Err   error
	RunID string
	Teams []teams.Aggregate
}

// SaveRun records the run ID.
func (a *StubArchive) SaveRun(ctx context.Context, run store.Run) error {
	_ = ctx
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	a.saved = append(a.saved, run.ID)
	return nil
}

// Saved returns the IDs recorded so far.
func (a *StubArchive) Saved() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.saved...)
}

// LatestTeams returns the configured team table.
func (a *StubArchive) LatestTeams(ctx context.Context) (string, []teams.Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if a.RunID == "" {
		return "", nil, errors.New("no runs archived")
	}
	return a.RunID, a.Teams, nil
}
