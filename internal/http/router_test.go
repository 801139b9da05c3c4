package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/http/handlers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/testutil"
)

func TestRouterRoutesKnownPaths(t *testing.T) {
	players, teams := testutil.NewServicesWithRun(testutil.SampleRun(t))
	h := handlers.NewHandler(players, teams, nil, nil, nil, 3)

	router := NewRouter(h, nil)

	cases := map[string]int{
		"/health":               http.StatusOK,
		"/ready":                http.StatusOK,
		"/players/top":          http.StatusOK,
		"/players/steals":       http.StatusOK,
		"/players/busts":        http.StatusOK,
		"/players/second-round": http.StatusOK,
		"/teams":                http.StatusOK,
		"/teams/top":            http.StatusOK,
		"/teams/Alpha":          http.StatusOK,
		"/teams/Nowhere":        http.StatusNotFound, // known route with missing team
		"/breakdowns/positions": http.StatusOK,
		"/breakdowns/rounds":    http.StatusOK,
		"/breakdowns/teams":     http.StatusOK,
		"/league":               http.StatusOK,
		"/insights":             http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	players, teams := testutil.NewServicesWithRun(testutil.SampleRun(t))
	router := NewRouter(handlers.NewHandler(players, teams, nil, nil, nil, 0), nil)

	for _, path := range []string{"/does-not-exist", "/admin/refresh"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, rr.Code)
		}
	}
}

func TestRouterMountsAdminWhenConfigured(t *testing.T) {
	players, teams := testutil.NewServicesWithRun(testutil.SampleRun(t))
	admin := handlers.NewAdminHandler(nil, "secret", nil)
	router := NewRouter(handlers.NewHandler(players, teams, nil, nil, nil, 0), admin)

	rr := testutil.Serve(router, http.MethodPost, "/admin/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}
