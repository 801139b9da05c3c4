package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/refresher"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/snapshots"
)

// snapshotComponents stay nil when no snapshot directory is configured.
type snapshotComponents struct {
	store  snapshots.Store
	writer refresher.SnapshotWriter
}

func buildSnapshots(cfg config.Config, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Storage.SnapshotDir
	if basePath == "" {
		return snapshotComponents{}
	}
	if logger != nil {
		logger.Info("snapshots enabled",
			slog.String("dir", basePath),
			slog.Int("retention", cfg.Storage.SnapshotRetention),
		)
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Storage.SnapshotRetention),
	}
}
