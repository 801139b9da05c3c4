package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a RecordSource with retry/backoff behavior.
type retryingSource struct {
	inner       RecordSource
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries for transient errors.
// If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(inner RecordSource, logger *slog.Logger, maxAttempts int, backoff time.Duration) RecordSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) FetchRecords(ctx context.Context) ([]players.Record, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		records, err := r.inner.FetchRecords(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if !Retryable(err) || attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "source fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, lastErr
}

func (r *retryingSource) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}
