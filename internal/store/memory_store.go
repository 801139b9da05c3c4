package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
)

// Run is one completed pipeline run.
type Run struct {
	ID     string
	At     time.Time
	Source string
	Result pipeline.Result
}

// MemoryStore keeps the latest run in memory for concurrent readers.
type MemoryStore struct {
	mu     sync.RWMutex
	latest Run
	ok     bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Latest returns the most recent run, if any.
func (s *MemoryStore) Latest() (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ok
}

// SetRun replaces the current run. Readers holding the previous Result keep a consistent view.
func (s *MemoryStore) SetRun(run Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = run
	s.ok = true
}
