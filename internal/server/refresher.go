package server

import (
	"context"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/refresher"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// Refresher defines the minimal refresh loop behavior needed by the server.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() refresher.Status
	RefreshNow(ctx context.Context) (store.Run, error)
}
