package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players/top", handler.TopPlayers)
	mux.HandleFunc("/players/steals", handler.Steals)
	mux.HandleFunc("/players/busts", handler.Busts)
	mux.HandleFunc("/players/second-round", handler.SecondRound)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/top", handler.TopTeams)
	mux.HandleFunc("/teams/{name}", handler.TeamByName)
	mux.HandleFunc("/breakdowns/positions", handler.Positions)
	mux.HandleFunc("/breakdowns/rounds", handler.Rounds)
	mux.HandleFunc("/breakdowns/teams", handler.Drafting)
	mux.HandleFunc("/league", handler.League)
	mux.HandleFunc("/insights", handler.Insights)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	return mux
}
