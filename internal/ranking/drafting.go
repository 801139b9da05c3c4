package ranking

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
)

// RatioOrder selects how teams are ranked by their draft value ratios.
type RatioOrder string

const (
	ByAvgRatio   RatioOrder = "avg"
	ByTotalRatio RatioOrder = "total"
)

// ParseRatioOrder validates a ratio ordering name.
func ParseRatioOrder(s string) (RatioOrder, error) {
	switch o := RatioOrder(s); o {
	case ByAvgRatio, ByTotalRatio:
		return o, nil
	}
	return "", fmt.Errorf("unknown ratio ordering %q", s)
}

// TopDrafting returns up to n teams with enough ratio-bearing players, ordered
// by mean or total draft value ratio descending, then by team name. The
// threshold is the one the team aggregates were built with.
func (v View) TopDrafting(by RatioOrder, n int) ([]efficiency.TeamRatioSummary, error) {
	var key func(efficiency.TeamRatioSummary) float64
	switch by {
	case ByAvgRatio:
		key = func(t efficiency.TeamRatioSummary) float64 { return t.AvgRatio }
	case ByTotalRatio:
		key = func(t efficiency.TeamRatioSummary) float64 { return t.TotalRatio }
	default:
		return nil, fmt.Errorf("unknown ratio ordering %q", by)
	}
	rows := efficiency.ByTeamRatio(v.Players, v.Teams.MinPicks())
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if ki, kj := key(rows[i]), key(rows[j]); ki != kj {
			return ki > kj
		}
		return rows[i].TeamName < rows[j].TeamName
	})
	return limit(rows, n), nil
}
