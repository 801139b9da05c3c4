package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/requestutil"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

// Refresher runs the pipeline on demand.
type Refresher interface {
	RefreshNow(ctx context.Context) (store.Run, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// Refresh fetches the input table and publishes a new run.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	run, err := h.refresher.RefreshNow(r.Context())
	if err != nil {
		var missing *tabular.MissingColumnsError
		if errors.As(err, &missing) {
			logging.Warn(logger, "admin refresh rejected input", slog.Any("columns", missing.Columns))
			writeError(w, r, http.StatusUnprocessableEntity, missing.Error(), logger)
			return
		}
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "refresh failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"runId":     run.ID,
		"players":   len(run.Result.Players),
		"teams":     len(run.Result.Teams.All),
		"qualified": len(run.Result.Qualified),
	}, logger)
	logging.Info(logger, "admin refresh complete",
		slog.String(logging.FieldRunID, run.ID),
		slog.Int(logging.FieldPlayers, len(run.Result.Players)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
