// Package ranking provides read-only ordered views over evaluated players and team aggregates.
package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// ErrNoData signals that a view has nothing to rank. It is a normal outcome, not a failure.
var ErrNoData = errors.New("no data")

const (
	// StealMinPick and StealPercentile define a steal: drafted at 30 or later with a top-quintile ratio.
	StealMinPick    = 30
	StealPercentile = 80.0

	// BustMaxPick and BustPercentile define a bust: drafted in the top 10 with a bottom-quintile ratio.
	BustMaxPick    = 10
	BustPercentile = 20.0

	SecondRoundMinPick  = 30
	SecondRoundMinValue = 150.0
	DefaultLimit        = 5
)

// TeamOrder selects the metric a team ranking is sorted by.
type TeamOrder string

const (
	ByROI         TeamOrder = "roi"
	ByQualityRate TeamOrder = "quality"
	ByEliteRate   TeamOrder = "elite"
	ByGems        TeamOrder = "gems"
	// ByConsistency sorts by value-score standard deviation ascending.
	ByConsistency TeamOrder = "consistency"
)

// PlayerOrder selects the metric a player ranking is sorted by.
type PlayerOrder string

const (
	ByValue PlayerOrder = "value"
	ByRatio PlayerOrder = "ratio"
)

// ParseTeamOrder validates a team ordering name.
func ParseTeamOrder(s string) (TeamOrder, error) {
	switch o := TeamOrder(s); o {
	case ByROI, ByQualityRate, ByEliteRate, ByGems, ByConsistency:
		return o, nil
	}
	return "", fmt.Errorf("unknown team ordering %q", s)
}

// ParsePlayerOrder validates a player ordering name.
func ParsePlayerOrder(s string) (PlayerOrder, error) {
	switch o := PlayerOrder(s); o {
	case ByValue, ByRatio:
		return o, nil
	}
	return "", fmt.Errorf("unknown player ordering %q", s)
}

// View wraps one pipeline run's outputs. It never modifies them.
type View struct {
	Players []players.Evaluated
	Teams   efficiency.Aggregates
}

// NewView builds a view over an augmented player table and its team aggregates.
func NewView(rows []players.Evaluated, aggs efficiency.Aggregates) View {
	return View{Players: rows, Teams: aggs}
}

// Empty reports whether there are no drafted players to report on.
func (v View) Empty() bool {
	return v.Teams.Empty()
}

// TopTeams returns up to n qualified teams ordered by the chosen metric, then by team name.
// Teams missing the metric sort last.
func (v View) TopTeams(by TeamOrder, n int) ([]teams.Aggregate, error) {
	qualified := v.Teams.Qualified()
	if len(qualified) == 0 {
		return nil, ErrNoData
	}
	key, desc, err := teamKey(by)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		if c := compareOptional(key(qualified[i]), key(qualified[j]), desc); c != 0 {
			return c < 0
		}
		return qualified[i].TeamName < qualified[j].TeamName
	})
	return limit(qualified, n), nil
}

func teamKey(by TeamOrder) (func(teams.Aggregate) optional.Value[float64], bool, error) {
	switch by {
	case ByROI:
		return func(t teams.Aggregate) optional.Value[float64] { return t.AvgROIPerSeason }, true, nil
	case ByQualityRate:
		return func(t teams.Aggregate) optional.Value[float64] { return optional.Some(t.QualityPickRate) }, true, nil
	case ByEliteRate:
		return func(t teams.Aggregate) optional.Value[float64] { return optional.Some(t.ElitePickRate) }, true, nil
	case ByGems:
		return func(t teams.Aggregate) optional.Value[float64] { return optional.Some(float64(t.LateRoundGems)) }, true, nil
	case ByConsistency:
		return func(t teams.Aggregate) optional.Value[float64] { return optional.Some(t.ValueStd) }, false, nil
	}
	return nil, false, fmt.Errorf("unknown team ordering %q", by)
}

// TopPlayers returns up to n players ordered by the chosen metric descending.
// Ranking by ratio considers only players that have one.
func (v View) TopPlayers(by PlayerOrder, n int) ([]players.Evaluated, error) {
	var (
		out []players.Evaluated
		key func(players.Evaluated) float64
	)
	switch by {
	case ByValue:
		out = append(out, v.Players...)
		key = func(p players.Evaluated) float64 { return p.ValueScore }
	case ByRatio:
		out = withRatio(v.Players)
		key = func(p players.Evaluated) float64 { return p.DraftValueRatio.Or(0) }
	default:
		return nil, fmt.Errorf("unknown player ordering %q", by)
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	sortPlayers(out, key, true)
	return limit(out, n), nil
}

// Thresholds are the steal and bust ratio cut-offs for the drafted population.
type Thresholds struct {
	Steal optional.Value[float64] `json:"stealRatio"`
	Bust  optional.Value[float64] `json:"bustRatio"`
}

// Thresholds computes the 80th and 20th percentile of draft value ratio over drafted players.
func (v View) Thresholds() Thresholds {
	ratios := make([]float64, 0, len(v.Players))
	for _, p := range withRatio(v.Players) {
		ratios = append(ratios, p.DraftValueRatio.Or(0))
	}
	return Thresholds{
		Steal: efficiency.Percentile(ratios, StealPercentile),
		Bust:  efficiency.Percentile(ratios, BustPercentile),
	}
}

// Steals are players drafted at 30 or later whose ratio is at least the 80th percentile,
// ordered by ratio descending.
func (v View) Steals() ([]players.Evaluated, error) {
	cut, ok := v.Thresholds().Steal.Get()
	if !ok {
		return nil, ErrNoData
	}
	out := filter(withRatio(v.Players), func(p players.Evaluated) bool {
		return p.DraftNumber.Or(0) >= StealMinPick && p.DraftValueRatio.Or(0) >= cut
	})
	sortPlayers(out, ratioOf, true)
	return out, nil
}

// Busts are players drafted 10th or earlier whose ratio is at most the 20th percentile,
// ordered by ratio ascending.
func (v View) Busts() ([]players.Evaluated, error) {
	cut, ok := v.Thresholds().Bust.Get()
	if !ok {
		return nil, ErrNoData
	}
	out := filter(withRatio(v.Players), func(p players.Evaluated) bool {
		return p.DraftNumber.Or(0) <= BustMaxPick && p.DraftValueRatio.Or(0) <= cut
	})
	sortPlayers(out, ratioOf, false)
	return out, nil
}

// SecondRound returns up to n players drafted after 30th with a value of at least 150,
// ordered by value descending.
func (v View) SecondRound(n int) ([]players.Evaluated, error) {
	if v.Empty() {
		return nil, ErrNoData
	}
	out := filter(v.Players, func(p players.Evaluated) bool {
		pick, ok := p.DraftNumber.Get()
		return ok && pick > SecondRoundMinPick && p.ValueScore >= SecondRoundMinValue
	})
	sortPlayers(out, func(p players.Evaluated) float64 { return p.ValueScore }, true)
	return limit(out, n), nil
}

func ratioOf(p players.Evaluated) float64 {
	return p.DraftValueRatio.Or(0)
}

func withRatio(rows []players.Evaluated) []players.Evaluated {
	return filter(rows, func(p players.Evaluated) bool { return p.Drafted() && p.DraftValueRatio.OK() })
}

func filter(rows []players.Evaluated, keep func(players.Evaluated) bool) []players.Evaluated {
	out := make([]players.Evaluated, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// sortPlayers orders by key, then last name, first name, team name and draft year.
func sortPlayers(rows []players.Evaluated, key func(players.Evaluated) float64, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ka, kb := key(a), key(b); ka != kb {
			if desc {
				return ka > kb
			}
			return ka < kb
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.DraftYear.Or(0) < b.DraftYear.Or(0)
	})
}

// compareOptional returns -1 when a sorts before b. Absent values sort last.
func compareOptional(a, b optional.Value[float64], desc bool) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	case av == bv:
		return 0
	case (av > bv) == desc:
		return -1
	default:
		return 1
	}
}

func limit[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
