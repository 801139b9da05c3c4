package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/testutil"
)

func BenchmarkTopTeams(b *testing.B) {
	players, teams := testutil.NewServicesWithRun(testutil.SampleRun(b))
	h := NewHandler(players, teams, nil, nil, nil, 5)
	req := httptest.NewRequest(http.MethodGet, "/teams/top?by=quality", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.TopTeams(rr, req)
		if rr.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rr.Code)
		}
	}
}
