package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/server"
)

const (
	appName    = "nba-draft-efficiency"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(cfg.Log.Logging(appName, appVersion))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
