// Package csvsource reads the cleaned player table from a CSV file.
package csvsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

// Source reads Path on every fetch, so edits to the file show up on the next refresh.
type Source struct {
	Path string
	fsys fs.FS
}

// New returns a Source for a path on the local filesystem.
func New(path string) *Source {
	return &Source{Path: path}
}

// NewFS returns a Source reading name from fsys.
func NewFS(fsys fs.FS, name string) *Source {
	return &Source{Path: name, fsys: fsys}
}

// FetchRecords decodes the table. A missing file is reported as unavailable;
// a header without every required column aborts with tabular.MissingColumnsError.
func (s *Source) FetchRecords(ctx context.Context) ([]players.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", providers.ErrSourceUnavailable, s.Path)
		}
		return nil, err
	}
	defer f.Close()

	records, err := tabular.DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return records, nil
}

func (s *Source) open() (fs.File, error) {
	if s.fsys != nil {
		return s.fsys.Open(s.Path)
	}
	return os.Open(s.Path)
}
