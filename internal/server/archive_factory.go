package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/handlers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/refresher"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store/sqlite"
)

// archiveComponents stay nil when no SQLite path is configured or it fails to open.
type archiveComponents struct {
	writer refresher.Archive
	reader handlers.TeamsArchive
	closer io.Closer
}

// buildArchive opens the SQLite archive when configured. A failure to open it
// is logged and the service continues without an archive.
func buildArchive(ctx context.Context, cfg config.Config, logger *slog.Logger) archiveComponents {
	path := cfg.Storage.SQLitePath
	if path == "" {
		return archiveComponents{}
	}
	db, err := sqlite.Open(ctx, path, cfg.Storage.SnapshotRetention)
	if err != nil {
		if logger != nil {
			logger.Warn("sqlite archive unavailable, continuing without it",
				slog.String("path", path),
				slog.Any("err", err),
			)
		}
		return archiveComponents{}
	}
	if logger != nil {
		logger.Info("sqlite archive enabled", slog.String("path", path))
	}
	return archiveComponents{writer: db, reader: db, closer: db}
}
