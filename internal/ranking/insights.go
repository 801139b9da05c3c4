package ranking

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
)

// Insights names the standout qualified teams.
type Insights struct {
	BestOverall    string                    `json:"bestOverall"`
	MostConsistent string                    `json:"mostConsistent"`
	BestLateRound  string                    `json:"bestLateRound"`
	League         efficiency.LeagueAverages `json:"league"`
}

// Insights picks the top team by ROI per season, by lowest value spread and by late-round gems.
func (v View) Insights() (Insights, error) {
	overall, err := v.first(ByROI)
	if err != nil {
		return Insights{}, err
	}
	consistent, err := v.first(ByConsistency)
	if err != nil {
		return Insights{}, err
	}
	gems, err := v.first(ByGems)
	if err != nil {
		return Insights{}, err
	}
	return Insights{
		BestOverall:    overall.TeamName,
		MostConsistent: consistent.TeamName,
		BestLateRound:  gems.TeamName,
		League:         efficiency.League(v.Teams.Qualified()),
	}, nil
}

func (v View) first(by TeamOrder) (teams.Aggregate, error) {
	top, err := v.TopTeams(by, 1)
	if err != nil {
		return teams.Aggregate{}, err
	}
	return top[0], nil
}
