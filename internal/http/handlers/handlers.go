package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appplayers "github.com/preston-bernstein/nba-draft-efficiency/internal/app/players"
	appteams "github.com/preston-bernstein/nba-draft-efficiency/internal/app/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/refresher"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/snapshots"
)

const maxLimit = 100

// TeamsArchive reads team aggregates back from the run archive.
type TeamsArchive interface {
	LatestTeams(ctx context.Context) (string, []teams.Aggregate, error)
}

// Handler wires HTTP routes to the player and team services.
type Handler struct {
	players  *appplayers.Service
	teams    *appteams.Service
	snaps    snapshots.Store
	archive  TeamsArchive
	logger   *slog.Logger
	statusFn func() refresher.Status
	topN     int
}

// NewHandler constructs a Handler. snaps and statusFn may be nil.
func NewHandler(players *appplayers.Service, teams *appteams.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() refresher.Status, topN int) *Handler {
	if topN <= 0 {
		topN = ranking.DefaultLimit
	}
	return &Handler{
		players:  players,
		teams:    teams,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
		topN:     topN,
	}
}

// WithArchive sets the archive /teams reads when neither a live run nor a snapshot exists.
func (h *Handler) WithArchive(archive TeamsArchive) *Handler {
	h.archive = archive
	return h
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: a run has succeeded and refreshes are not failing repeatedly.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "refresh": status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

func (h *Handler) limit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return h.topN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
	}
	return n, nil
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return fallback
}

var errBadQualified = errors.New("qualified must be true or false")

func qualifiedOnly(r *http.Request) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("qualified"))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errBadQualified
	}
	return v, nil
}
