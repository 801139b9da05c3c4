package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/metrics"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
)

// sourceFactory assembles the record source with its shared wrappers.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) providers.RecordSource {
	base := SelectSource(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f sourceFactory) wrap(cfg config.Config, base providers.RecordSource) providers.RecordSource {
	// Retries sit inside the limiter so backoff is not stretched by the fetch spacing.
	retrying := providers.NewRetryingSource(base, f.logger, 0, 0)
	limited := providers.NewRateLimitedSource(retrying, minFetchInterval, f.logger)
	return providers.NewInstrumentedSource(limited, normalizeSourceName(cfg.Input.Source, base), f.logger, f.metrics)
}
