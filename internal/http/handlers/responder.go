package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/middleware"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
)

const (
	statusOK     = "ok"
	statusNoData = "no data"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeList writes items under key. ErrNoData becomes a 200 with an empty list.
func writeList[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string, items []T, err error, extra map[string]any) {
	body := make(map[string]any, len(extra)+3)
	for k, v := range extra {
		body[k] = v
	}
	switch {
	case errors.Is(err, ranking.ErrNoData):
		items = nil
		body["status"] = statusNoData
	case err != nil:
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
		return
	default:
		body["status"] = statusOK
	}
	if items == nil {
		items = []T{}
	}
	body[key] = items
	body["count"] = len(items)
	writeJSON(w, http.StatusOK, body, logger)
}

// writeObject writes v under key. ErrNoData becomes a 200 with only the status.
func writeObject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string, v any, err error) {
	switch {
	case errors.Is(err, ranking.ErrNoData):
		writeJSON(w, http.StatusOK, map[string]any{"status": statusNoData}, logger)
	case err != nil:
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"status": statusOK, key: v}, logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
