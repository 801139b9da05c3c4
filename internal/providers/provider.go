package providers

import (
	"context"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
)

// RecordSource loads the cleaned player table a pipeline run starts from.
// Implementations return a fresh slice on every call.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]players.Record, error)
}

// SourceFunc adapts a function to RecordSource.
type SourceFunc func(ctx context.Context) ([]players.Record, error)

// FetchRecords calls f.
func (f SourceFunc) FetchRecords(ctx context.Context) ([]players.Record, error) {
	return f(ctx)
}
