package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/metrics"
)

// instrumentedSource times every fetch, records it and tags failures with the source name.
type instrumentedSource struct {
	inner   RecordSource
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedSource wraps inner so each fetch is logged and counted under name.
func NewInstrumentedSource(inner RecordSource, name string, logger *slog.Logger, recorder *metrics.Recorder) RecordSource {
	return &instrumentedSource{inner: inner, name: name, logger: logger, metrics: recorder}
}

func (s *instrumentedSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	start := time.Now()
	records, err := s.inner.FetchRecords(ctx)
	elapsed := time.Since(start)
	s.metrics.RecordSourceFetch(s.name, elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "source fetch failed", err,
			logging.FieldSource, s.name,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return nil, &SourceError{Source: s.name, Err: err}
	}
	logging.Debug(logger, "source fetch complete",
		logging.FieldSource, s.name,
		logging.FieldCount, len(records),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return records, nil
}
