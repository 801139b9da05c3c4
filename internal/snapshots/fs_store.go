package snapshots

import (
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

// ErrNoSnapshot is returned when no run has been written yet.
var ErrNoSnapshot = errors.New("no snapshot available")

// Store defines how snapshots are loaded.
type Store interface {
	LoadLatest() (string, []teams.Aggregate, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Manifest reads the current manifest.
func (s *FSStore) Manifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	m, err := readManifest(ManifestPath(s.basePath), 0)
	if errors.Is(err, os.ErrNotExist) {
		return Manifest{}, ErrNoSnapshot
	}
	return m, err
}

// LoadLatest reads the team table of the latest run named in the manifest.
func (s *FSStore) LoadLatest() (string, []teams.Aggregate, error) {
	m, err := s.Manifest()
	if err != nil {
		return "", nil, err
	}
	if m.Runs.Latest == "" {
		return "", nil, ErrNoSnapshot
	}
	f, err := os.Open(RunPath(s.basePath, KindTeams, m.Runs.Latest))
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	rows, err := tabular.DecodeTeams(f)
	if err != nil {
		return "", nil, fmt.Errorf("decode snapshot %s: %w", m.Runs.Latest, err)
	}
	return m.Runs.Latest, rows, nil
}
