package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers/csvsource"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers/fixture"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers/httpsource"
)

// SelectSource builds the unwrapped record source named by cfg.Input. An http
// source without a URL reads the csv path instead; an unknown name uses the fixture.
func SelectSource(cfg config.Config, logger *slog.Logger) providers.RecordSource {
	switch cfg.Input.Source {
	case config.SourceCSV, "":
		return csvsource.New(cfg.Input.Path)
	case config.SourceHTTP:
		if cfg.Input.URL == "" {
			if logger != nil {
				logger.Warn("http source without INPUT_URL, falling back to csv", slog.String("path", cfg.Input.Path))
			}
			return csvsource.New(cfg.Input.Path)
		}
		return httpsource.New(httpsource.Config{
			URL:   cfg.Input.URL,
			Token: cfg.Input.Token,
		})
	case config.SourceFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown source, falling back to fixture", slog.String("source", cfg.Input.Source))
		}
		return fixture.New()
	}
}
