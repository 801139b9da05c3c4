package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
)

// rateLimitedSource wraps a RecordSource and enforces a minimum interval between fetches.
type rateLimitedSource struct {
	next     RecordSource
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedSource returns a RecordSource that spaces fetches at least interval apart.
// Calls inside the window block until it elapses so scheduled and admin-triggered
// refreshes cannot hammer the source.
func NewRateLimitedSource(next RecordSource, interval time.Duration, logger *slog.Logger) RecordSource {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedSource{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *rateLimitedSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	if s == nil || s.next == nil {
		return nil, ErrSourceUnavailable
	}

	s.mu.Lock()
	if !s.last.IsZero() {
		if wait := s.interval - s.now().Sub(s.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.mu.Unlock()
				logging.Warn(logging.FromContext(ctx, s.logger), "rate-limited fetch canceled", slog.String(logging.FieldSource, "rate-limited"))
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}
	s.last = s.now()
	s.mu.Unlock()

	return s.next.FetchRecords(ctx)
}
