package testutil

import (
	appplayers "github.com/preston-bernstein/nba-draft-efficiency/internal/app/players"
	appteams "github.com/preston-bernstein/nba-draft-efficiency/internal/app/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// NewServicesWithRun builds player and team services over an in-memory store holding run.
func NewServicesWithRun(run store.Run) (*appplayers.Service, *appteams.Service) {
	ms := store.NewMemoryStore()
	ms.SetRun(run)
	return appplayers.NewService(ms), appteams.NewService(ms)
}

// NewEmptyServices builds services over a store that has never seen a run.
func NewEmptyServices() (*appplayers.Service, *appteams.Service) {
	ms := store.NewMemoryStore()
	return appplayers.NewService(ms), appteams.NewService(ms)
}
