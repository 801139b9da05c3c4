package efficiency

import (
	"sort"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// PositionSummary describes drafted players in one draft-position bucket.
type PositionSummary struct {
	Category        players.DraftCategory   `json:"category"`
	Count           int                     `json:"count"`
	AvgROIPerSeason optional.Value[float64] `json:"avgRoiPerSeason"`
	AvgEfficiency   optional.Value[float64] `json:"avgEfficiency"`
	AvgValue        float64                 `json:"avgValue"`
}

// RoundSummary describes draft value ratios for one draft round.
type RoundSummary struct {
	Round    int     `json:"round"`
	Count    int     `json:"count"`
	AvgRatio float64 `json:"avgRatio"`
	Median   float64 `json:"medianRatio"`
	Std      float64 `json:"stdRatio"`
}

// TeamRatioSummary rolls up one team's draft value ratios. Figures are rounded
// to two decimal places.
type TeamRatioSummary struct {
	TeamName         string  `json:"teamName"`
	Count            int     `json:"playersDrafted"`
	AvgRatio         float64 `json:"avgRatio"`
	MedianRatio      float64 `json:"medianRatio"`
	TotalRatio       float64 `json:"totalRatio"`
	AvgValue         float64 `json:"avgValue"`
	AvgDraftPosition float64 `json:"avgDraftPosition"`
}

// LeagueAverages are means over the qualified teams.
type LeagueAverages struct {
	Teams              int                     `json:"teams"`
	AvgQualityPickRate optional.Value[float64] `json:"avgQualityPickRate"`
	AvgROIPerSeason    optional.Value[float64] `json:"avgRoiPerSeason"`
	AvgLateRoundGems   optional.Value[float64] `json:"avgLateRoundGems"`
}

// ByPosition groups drafted players by draft category, in draft order.
// Categories with no players are omitted.
func ByPosition(rows []players.Evaluated) []PositionSummary {
	groups := make(map[players.DraftCategory][]players.Evaluated)
	for _, row := range Drafted(rows) {
		groups[row.DraftCategory] = append(groups[row.DraftCategory], row)
	}

	out := make([]PositionSummary, 0, len(groups))
	for _, cat := range players.DraftCategories {
		group, ok := groups[cat]
		if !ok {
			continue
		}
		var (
			roi    []float64
			eff    []float64
			values = make([]float64, 0, len(group))
		)
		for _, row := range group {
			values = append(values, row.ValueScore)
			if v, ok := row.ROIPerSeason.Get(); ok {
				roi = append(roi, v)
			}
			if v, ok := row.EfficiencyScore.Get(); ok {
				eff = append(eff, v)
			}
		}
		out = append(out, PositionSummary{
			Category:        cat,
			Count:           len(group),
			AvgROIPerSeason: Mean(roi),
			AvgEfficiency:   Mean(eff),
			AvgValue:        Mean(values).Or(0),
		})
	}
	return out
}

// ByRound groups players with a draft value ratio by draft round, ordered by
// mean ratio descending and round ascending on ties.
func ByRound(rows []players.Evaluated) []RoundSummary {
	groups := make(map[int][]float64)
	for _, row := range rows {
		ratio, ok := row.DraftValueRatio.Get()
		if !ok {
			continue
		}
		round, ok := row.DraftRound.Get()
		if !ok {
			continue
		}
		groups[round] = append(groups[round], ratio)
	}

	out := make([]RoundSummary, 0, len(groups))
	for round, ratios := range groups {
		out = append(out, RoundSummary{
			Round:    round,
			Count:    len(ratios),
			AvgRatio: Mean(ratios).Or(0),
			Median:   Median(ratios).Or(0),
			Std:      PopulationStd(ratios).Or(0),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRatio != out[j].AvgRatio {
			return out[i].AvgRatio > out[j].AvgRatio
		}
		return out[i].Round < out[j].Round
	})
	return out
}

// League averages the qualified teams. Every field is absent when no team qualifies.
func League(qualified []teams.Aggregate) LeagueAverages {
	var (
		quality []float64
		roi     []float64
		gems    []float64
	)
	for _, t := range qualified {
		quality = append(quality, t.QualityPickRate)
		gems = append(gems, float64(t.LateRoundGems))
		if v, ok := t.AvgROIPerSeason.Get(); ok {
			roi = append(roi, v)
		}
	}
	return LeagueAverages{
		Teams:              len(qualified),
		AvgQualityPickRate: Mean(quality),
		AvgROIPerSeason:    Mean(roi),
		AvgLateRoundGems:   Mean(gems),
	}
}

// ByTeamRatio groups players with a draft value ratio by team and keeps teams
// with at least minPlayers of them, ordered by mean ratio descending and team
// name ascending on ties. A non-positive minPlayers falls back to DefaultMinPicks.
func ByTeamRatio(rows []players.Evaluated, minPlayers int) []TeamRatioSummary {
	if minPlayers <= 0 {
		minPlayers = DefaultMinPicks
	}
	type group struct {
		ratios []float64
		values []float64
		picks  []float64
	}
	groups := make(map[string]*group)
	for _, row := range rows {
		ratio, ok := row.DraftValueRatio.Get()
		if !ok {
			continue
		}
		g, ok := groups[row.TeamName]
		if !ok {
			g = &group{}
			groups[row.TeamName] = g
		}
		g.ratios = append(g.ratios, ratio)
		g.values = append(g.values, row.ValueScore)
		g.picks = append(g.picks, float64(row.DraftNumber.Or(0)))
	}

	out := make([]TeamRatioSummary, 0, len(groups))
	for name, g := range groups {
		if len(g.ratios) < minPlayers {
			continue
		}
		out = append(out, TeamRatioSummary{
			TeamName:         name,
			Count:            len(g.ratios),
			AvgRatio:         Round(Mean(g.ratios).Or(0), 2),
			MedianRatio:      Round(Median(g.ratios).Or(0), 2),
			TotalRatio:       Round(Sum(g.ratios), 2),
			AvgValue:         Round(Mean(g.values).Or(0), 2),
			AvgDraftPosition: Round(Mean(g.picks).Or(0), 2),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRatio != out[j].AvgRatio {
			return out[i].AvgRatio > out[j].AvgRatio
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}
