package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
)

// Teams lists team aggregates. Without a live run it falls back to the latest
// snapshot, then to the latest archived run.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	only, err := qualifiedOnly(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	rows, err := h.teams.Teams(only)
	if errors.Is(err, ranking.ErrNoData) {
		if runID, snap, ok := h.loadSnapshot(r); ok {
			writeList(w, r, h.logger, "teams", filterQualified(snap, only), nil, map[string]any{
				"source": "snapshot",
				"runId":  runID,
			})
			return
		}
		if runID, archived, ok := h.loadArchive(r); ok {
			writeList(w, r, h.logger, "teams", filterQualified(archived, only), nil, map[string]any{
				"source": "archive",
				"runId":  runID,
			})
			return
		}
	}
	writeList(w, r, h.logger, "teams", rows, err, map[string]any{"source": "live"})
}

func (h *Handler) loadSnapshot(r *http.Request) (string, []teams.Aggregate, bool) {
	if h.snaps == nil {
		return "", nil, false
	}
	runID, rows, err := h.snaps.LoadLatest()
	if err != nil {
		logging.Debug(loggerFromContext(r, h.logger), "snapshot fallback unavailable", "error", err)
		return "", nil, false
	}
	logging.Info(loggerFromContext(r, h.logger), "served snapshot teams",
		slog.String(logging.FieldRunID, runID),
		slog.Int(logging.FieldCount, len(rows)),
	)
	return runID, rows, true
}

func (h *Handler) loadArchive(r *http.Request) (string, []teams.Aggregate, bool) {
	if h.archive == nil {
		return "", nil, false
	}
	runID, rows, err := h.archive.LatestTeams(r.Context())
	if err != nil {
		logging.Debug(loggerFromContext(r, h.logger), "archive fallback unavailable", "error", err)
		return "", nil, false
	}
	logging.Info(loggerFromContext(r, h.logger), "served archived teams",
		slog.String(logging.FieldRunID, runID),
		slog.Int(logging.FieldCount, len(rows)),
	)
	return runID, rows, true
}

func filterQualified(rows []teams.Aggregate, only bool) []teams.Aggregate {
	if !only {
		return rows
	}
	out := make([]teams.Aggregate, 0, len(rows))
	for _, t := range rows {
		if t.Qualified {
			out = append(out, t)
		}
	}
	return out
}

// TopTeams ranks qualified teams by the requested metric.
func (h *Handler) TopTeams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	by, err := ranking.ParseTeamOrder(queryOr(r, "by", string(ranking.ByROI)))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	n, err := h.limit(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rows, err := h.teams.Top(by, n)
	writeList(w, r, h.logger, "teams", rows, err, map[string]any{"by": by})
}

// TeamByName returns one team's aggregate, qualified or not.
func (h *Handler) TeamByName(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "invalid team name", h.logger)
		return
	}
	agg, ok, err := h.teams.TeamByName(name)
	if err == nil && !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}
	writeObject(w, r, h.logger, "team", agg, err)
}

// Positions returns the breakdown by draft position bucket.
func (h *Handler) Positions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, err := h.teams.Positions()
	writeList(w, r, h.logger, "positions", rows, err, nil)
}

// Rounds returns the draft value ratio breakdown by round.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, err := h.teams.Rounds()
	writeList(w, r, h.logger, "rounds", rows, err, nil)
}

// Drafting ranks teams by their draft value ratio rollups.
func (h *Handler) Drafting(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	by, err := ranking.ParseRatioOrder(queryOr(r, "by", string(ranking.ByAvgRatio)))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	n, err := h.limit(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rows, err := h.teams.Drafting(by, n)
	writeList(w, r, h.logger, "teams", rows, err, map[string]any{"by": by})
}

// League returns averages over qualified teams.
func (h *Handler) League(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	avg, err := h.teams.League()
	writeObject(w, r, h.logger, "league", avg, err)
}

// Insights names the standout qualified teams.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	ins, err := h.teams.Insights()
	writeObject(w, r, h.logger, "insights", ins, err)
}
