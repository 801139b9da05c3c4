package handlers

import (
	"net/http"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
)

// TopPlayers returns players ranked by value score or draft value ratio.
func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	by, err := ranking.ParsePlayerOrder(queryOr(r, "by", string(ranking.ByValue)))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	n, err := h.limit(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rows, err := h.players.Top(by, n)
	writeList(w, r, h.logger, "players", rows, err, map[string]any{"by": by})
}

// Steals returns late picks whose draft value ratio reaches the steal threshold.
func (h *Handler) Steals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, err := h.players.Steals()
	h.writeThresholdList(w, r, rows, err, func(t ranking.Thresholds) any { return t.Steal })
}

// Busts returns top-ten picks whose draft value ratio falls under the bust threshold.
func (h *Handler) Busts(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, err := h.players.Busts()
	h.writeThresholdList(w, r, rows, err, func(t ranking.Thresholds) any { return t.Bust })
}

func (h *Handler) writeThresholdList(w http.ResponseWriter, r *http.Request, rows []players.Evaluated, err error, pick func(ranking.Thresholds) any) {
	var extra map[string]any
	if err == nil {
		if t, terr := h.players.Thresholds(); terr == nil {
			extra = map[string]any{"threshold": pick(t)}
		}
	}
	writeList(w, r, h.logger, "players", rows, err, extra)
}

// SecondRound returns the best picks made after the first round.
func (h *Handler) SecondRound(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	n, err := h.limit(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rows, err := h.players.SecondRound(n)
	writeList(w, r, h.logger, "players", rows, err, nil)
}
