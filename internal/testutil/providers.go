package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
)

// GoodSource returns the provided records with no error.
type GoodSource struct {
	Records []players.Record
}

func (s GoodSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	_ = ctx
	return s.Records, nil
}

// ErrSource always returns the provided error.
type ErrSource struct {
	Err error
}

func (s ErrSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	return nil, s.Err
}

// EmptySource returns no records, no error.
type EmptySource struct{}

func (EmptySource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	return []players.Record{}, nil
}

// UnavailableSource returns ErrSourceUnavailable.
type UnavailableSource struct{}

func (UnavailableSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	return nil, providers.ErrSourceUnavailable
}

// NotifyingSource returns records and closes Notify on first fetch.
type NotifyingSource struct {
	Records []players.Record
	Notify  chan struct{}
}

func (s *NotifyingSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	return s.Records, nil
}
