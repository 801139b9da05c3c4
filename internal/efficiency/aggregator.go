// Package efficiency rolls evaluated players up into per-team drafting aggregates.
package efficiency

import (
	"sort"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

const (
	// DefaultMinPicks is the smallest sample a team needs to appear in ranked views.
	DefaultMinPicks = 10

	QualityThreshold = 50.0
	EliteThreshold   = 200.0

	// A late-round gem is picked after LateRoundPick and reaches LateRoundGemValue.
	LateRoundPick     = 15
	LateRoundGemValue = 100.0
)

// Aggregates holds one aggregate per drafting team, sorted by team name.
type Aggregates struct {
	All      []teams.Aggregate
	minPicks int
}

// Qualified returns the teams with at least the minimum number of picks.
func (a Aggregates) Qualified() []teams.Aggregate {
	out := make([]teams.Aggregate, 0, len(a.All))
	for _, t := range a.All {
		if t.Qualified {
			out = append(out, t)
		}
	}
	return out
}

// Empty reports whether no drafted players were found.
func (a Aggregates) Empty() bool {
	return len(a.All) == 0
}

// MinPicks returns the qualification threshold the aggregates were built with.
func (a Aggregates) MinPicks() int {
	return a.minPicks
}

// ByName finds a team aggregate.
func (a Aggregates) ByName(name string) (teams.Aggregate, bool) {
	i := sort.Search(len(a.All), func(i int) bool { return a.All[i].TeamName >= name })
	if i < len(a.All) && a.All[i].TeamName == name {
		return a.All[i], true
	}
	return teams.Aggregate{}, false
}

// Aggregate groups drafted players by team name using DefaultMinPicks.
func Aggregate(rows []players.Evaluated) Aggregates {
	return AggregateWithMinPicks(rows, DefaultMinPicks)
}

// AggregateWithMinPicks groups drafted players by team name. Undrafted players
// are excluded entirely. A non-positive minPicks falls back to DefaultMinPicks.
func AggregateWithMinPicks(rows []players.Evaluated, minPicks int) Aggregates {
	if minPicks <= 0 {
		minPicks = DefaultMinPicks
	}
	groups := make(map[string][]players.Evaluated)
	for _, row := range Drafted(rows) {
		groups[row.TeamName] = append(groups[row.TeamName], row)
	}

	all := make([]teams.Aggregate, 0, len(groups))
	for name, group := range groups {
		agg := summarize(name, group)
		agg.Qualified = agg.TotalPicks >= minPicks
		all = append(all, agg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TeamName < all[j].TeamName })
	return Aggregates{All: all, minPicks: minPicks}
}

// Drafted keeps rows with a draft number, preserving order.
func Drafted(rows []players.Evaluated) []players.Evaluated {
	out := make([]players.Evaluated, 0, len(rows))
	for _, r := range rows {
		if r.Drafted() {
			out = append(out, r)
		}
	}
	return out
}

// IsLateRoundGem reports whether a drafted player was picked after 15th and reached a value of 100.
func IsLateRoundGem(row players.Evaluated) bool {
	n, ok := row.DraftNumber.Get()
	return ok && n > LateRoundPick && row.ValueScore >= LateRoundGemValue
}

func summarize(name string, group []players.Evaluated) teams.Aggregate {
	var (
		values     = make([]float64, 0, len(group))
		roi        = make([]optional.Value[float64], 0, len(group))
		efficiency = make([]optional.Value[float64], 0, len(group))
		careers    = make([]float64, 0, len(group))
		picks      = make([]float64, 0, len(group))
		years      []int
		quality    int
		elite      int
		gems       int
	)
	for _, row := range group {
		values = append(values, row.ValueScore)
		roi = append(roi, row.ROIPerSeason)
		efficiency = append(efficiency, row.EfficiencyScore)
		careers = append(careers, float64(row.CareerLength))
		picks = append(picks, float64(row.DraftNumber.Or(0)))
		if y, ok := row.DraftYear.Get(); ok {
			years = append(years, y)
		}
		if row.ValueScore >= QualityThreshold {
			quality++
		}
		if row.ValueScore >= EliteThreshold {
			elite++
		}
		if IsLateRoundGem(row) {
			gems++
		}
	}

	total := len(group)
	roiVals := optional.Present(roi)
	effVals := optional.Present(efficiency)
	std := PopulationStd(values).Or(0)
	avgEff := Mean(effVals)

	agg := teams.Aggregate{
		TeamName:           name,
		TotalPicks:         total,
		AvgValue:           Mean(values).Or(0),
		TotalValue:         Sum(values),
		ValueStd:           std,
		AvgROIPerSeason:    Mean(roiVals),
		MedianROIPerSeason: Median(roiVals),
		AvgEfficiency:      avgEff,
		MedianEfficiency:   Median(effVals),
		AvgCareerLength:    Mean(careers).Or(0),
		AvgDraftPosition:   Mean(picks).Or(0),
		QualityPicks:       quality,
		ElitePicks:         elite,
		QualityPickRate:    Rate(quality, total),
		ElitePickRate:      Rate(elite, total),
		LateRoundGems:      gems,
		ConsistencyScore: optional.Map(avgEff, func(e float64) float64 {
			return e / (std + 1)
		}),
	}
	if len(years) > 0 {
		sort.Ints(years)
		first, last := years[0], years[len(years)-1]
		agg.FirstDraftYear = optional.Some(first)
		agg.LastDraftYear = optional.Some(last)
		agg.DraftSpanYears = optional.Some(last - first + 1)
	}
	return agg
}

// QualityPickRateDisplay is the quality-pick rate rounded to one decimal place.
func QualityPickRateDisplay(a teams.Aggregate) float64 {
	return Round(a.QualityPickRate, 1)
}

// ElitePickRateDisplay is the elite-pick rate rounded to one decimal place.
func ElitePickRateDisplay(a teams.Aggregate) float64 {
	return Round(a.ElitePickRate, 1)
}
