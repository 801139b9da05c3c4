package efficiency

import (
	"math"
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/valuation"
)

func record(team string, year, pick, career int, pts float64) players.Record {
	round := 1
	if pick > 30 {
		round = 2
	}
	return players.Record{
		FirstName:    "P",
		LastName:     team,
		TeamName:     team,
		DraftYear:    optional.Some(year),
		DraftRound:   optional.Some(round),
		DraftNumber:  optional.Some(pick),
		Points:       pts,
		CareerLength: career,
	}
}

func undrafted(team string) players.Record {
	return players.Record{FirstName: "U", TeamName: team, Points: 30, CareerLength: 10}
}

// twelvePicks builds a team where exactly four picks reach a value of 50.
func twelvePicks(team string) []players.Record {
	var out []players.Record
	for i := 0; i < 12; i++ {
		pts := 1.0
		if i < 4 {
			pts = 10
		}
		out = append(out, record(team, 2000+i, 20+i, 5, pts))
	}
	return out
}

func TestAggregateQualityRateAndQualification(t *testing.T) {
	rows := valuation.CalculateAll(twelvePicks("Boston Celtics"))
	aggs := Aggregate(rows)

	if len(aggs.All) != 1 {
		t.Fatalf("expected 1 team, got %d", len(aggs.All))
	}
	team := aggs.All[0]
	if team.TotalPicks != 12 || team.QualityPicks != 4 {
		t.Fatalf("unexpected counts %+v", team)
	}
	if got := QualityPickRateDisplay(team); got != 33.3 {
		t.Fatalf("expected display rate 33.3, got %v", got)
	}
	if math.Abs(team.QualityPickRate-100.0/3.0) > 1e-9 {
		t.Fatalf("expected full precision rate, got %v", team.QualityPickRate)
	}
	if !team.Qualified || len(aggs.Qualified()) != 1 {
		t.Fatalf("expected team to qualify")
	}
	if got := team.DraftSpanYears.Or(0); got != 12 {
		t.Fatalf("expected draft span 12, got %d", got)
	}
}

func TestAggregateExcludesUndraftedAndKeepsUnqualified(t *testing.T) {
	records := append(twelvePicks("Alpha"), record("Beta", 2010, 3, 4, 20), undrafted("Gamma"), undrafted("Alpha"))
	aggs := Aggregate(valuation.CalculateAll(records))

	if len(aggs.All) != 2 {
		t.Fatalf("expected Alpha and Beta only, got %+v", aggs.All)
	}
	if aggs.All[0].TeamName != "Alpha" || aggs.All[1].TeamName != "Beta" {
		t.Fatalf("expected teams sorted by name")
	}
	if aggs.All[0].TotalPicks != 12 {
		t.Fatalf("undrafted player leaked into Alpha: %d picks", aggs.All[0].TotalPicks)
	}
	beta, ok := aggs.ByName("Beta")
	if !ok || beta.Qualified {
		t.Fatalf("expected Beta present and unqualified, got %+v", beta)
	}
	if beta.ValueStd != 0 {
		t.Fatalf("expected zero std for one pick, got %v", beta.ValueStd)
	}
	if _, ok := aggs.ByName("Gamma"); ok {
		t.Fatalf("expected all-undrafted team to be absent")
	}
	if q := aggs.Qualified(); len(q) != 1 || q[0].TeamName != "Alpha" {
		t.Fatalf("unexpected qualified set %+v", q)
	}
}

func TestAggregateNoDraftedPlayers(t *testing.T) {
	aggs := Aggregate(valuation.CalculateAll([]players.Record{undrafted("A"), undrafted("B")}))
	if !aggs.Empty() || len(aggs.Qualified()) != 0 {
		t.Fatalf("expected empty aggregates, got %+v", aggs.All)
	}
	if Aggregate(nil).MinPicks() != DefaultMinPicks {
		t.Fatalf("expected default min picks")
	}
}

func TestAggregateCountsGemsAndElite(t *testing.T) {
	records := []players.Record{
		record("T", 2001, 15, 10, 10),  // value 100 at pick 15: not a gem
		record("T", 2002, 16, 10, 10),  // value 100 at pick 16: gem
		record("T", 2003, 45, 10, 25),  // value 250: gem and elite
		record("T", 2004, 120, 10, 25), // gem and elite, efficiency absent
	}
	team := Aggregate(valuation.CalculateAll(records)).All[0]

	if team.LateRoundGems != 3 {
		t.Fatalf("expected 3 gems, got %d", team.LateRoundGems)
	}
	if team.ElitePicks != 2 || team.ElitePickRate != 50 {
		t.Fatalf("expected 2 elite picks at 50%%, got %d at %v", team.ElitePicks, team.ElitePickRate)
	}
	eff := []float64{100.0 / 85, 100.0 / 84, 250.0 / 55}
	want := (eff[0] + eff[1] + eff[2]) / 3
	if got := team.AvgEfficiency.Or(-1); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected efficiency mean over non-null values %v, got %v", want, got)
	}
	consistency := team.ConsistencyScore.Or(-1)
	if math.Abs(consistency-team.AvgEfficiency.Or(0)/(team.ValueStd+1)) > 1e-12 {
		t.Fatalf("unexpected consistency score %v", consistency)
	}
}

func TestAggregateWithMinPicks(t *testing.T) {
	rows := valuation.CalculateAll([]players.Record{record("A", 2000, 1, 1, 1), record("A", 2001, 2, 1, 1)})
	if !AggregateWithMinPicks(rows, 2).All[0].Qualified {
		t.Fatalf("expected qualification at threshold")
	}
	if AggregateWithMinPicks(rows, 3).All[0].Qualified {
		t.Fatalf("expected no qualification below threshold")
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	records := append(twelvePicks("A"), twelvePicks("B")...)
	first := Aggregate(valuation.CalculateAll(records))
	second := Aggregate(valuation.CalculateAll(records))
	for i := range first.All {
		if first.All[i] != second.All[i] {
			t.Fatalf("expected identical aggregates at %d", i)
		}
	}
}
