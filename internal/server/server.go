package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	appplayers "github.com/preston-bernstein/nba-draft-efficiency/internal/app/players"
	appteams "github.com/preston-bernstein/nba-draft-efficiency/internal/app/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/config"
	httpserver "github.com/preston-bernstein/nba-draft-efficiency/internal/http"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/handlers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/middleware"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/metrics"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/refresher"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *appplayers.Service
	teamsService   *appteams.Service
	httpServer     httpServer
	metricsServer  httpServer
	refresher      Refresher
	archive        io.Closer
	metricsStop    func(context.Context) error
}

// New constructs a server with default source and refresher wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.RecordSource) *Server {
	return newServerWithMetrics(cfg, logger, source, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, source providers.RecordSource, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newSourceFactory(logger, recorder)
	if source == nil {
		source = factory.build(cfg)
	} else {
		source = factory.wrap(cfg, source)
	}

	memoryStore, playerSvc, teamSvc := buildServices()
	snaps := buildSnapshots(cfg, logger)
	archive := buildArchive(context.Background(), cfg, logger)

	ref := refresher.New(source, memoryStore, snaps.writer, archive.writer, logger, recorder, refresher.Options{
		Interval:   cfg.RefreshInterval,
		SourceName: normalizeSourceName(cfg.Input.Source, source),
		Pipeline:   pipeline.Options{MinTeamPicks: cfg.Analysis.MinTeamPicks},
	})
	httpSrv := buildHTTPServer(cfg, playerSvc, teamSvc, snaps.store, archive.reader, logger, recorder, ref)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		playersService: playerSvc,
		teamsService:   teamSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		refresher:      ref,
		archive:        archive.closer,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ref Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  ref,
	}
}

func buildServices() (*store.MemoryStore, *appplayers.Service, *appteams.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, appplayers.NewService(memoryStore), appteams.NewService(memoryStore)
}

func buildHTTPServer(cfg config.Config, playerSvc *appplayers.Service, teamSvc *appteams.Service, snaps snapshots.Store, archive handlers.TeamsArchive, logger *slog.Logger, recorder *metrics.Recorder, ref Refresher) httpServer {
	var statusFn func() refresher.Status
	if ref != nil {
		statusFn = ref.Status
	}

	handler := handlers.NewHandler(playerSvc, teamSvc, snaps, logger, statusFn, cfg.Analysis.TopN).WithArchive(archive)
	// The admin refresh endpoint is only mounted when a token is set.
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(ref, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop refresher", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// The archive closes last so an in-flight refresh can finish its write.
	if s.archive != nil {
		if err := s.archive.Close(); err != nil && s.logger != nil {
			s.logger.Warn("archive close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// RefreshStatus reports the refresh loop state.
func (s *Server) RefreshStatus() refresher.Status {
	return s.refresher.Status()
}
