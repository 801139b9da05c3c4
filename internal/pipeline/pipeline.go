// Package pipeline composes valuation, aggregation and ranking into one batch transform.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/valuation"
)

// ErrInvalidRecord wraps input rows that break the table contract.
var ErrInvalidRecord = errors.New("invalid record")

// Options tune a run. The zero value uses the default qualification threshold.
type Options struct {
	MinTeamPicks int
}

// Result is everything derived from one input table.
type Result struct {
	Players   []players.Evaluated
	Teams     efficiency.Aggregates
	Qualified []teams.Aggregate
	Positions []efficiency.PositionSummary
	Rounds    []efficiency.RoundSummary
	League    efficiency.LeagueAverages
}

// View exposes ranked reads over the result.
func (r Result) View() ranking.View {
	return ranking.NewView(r.Players, r.Teams)
}

// Drafted counts players with a draft number.
func (r Result) Drafted() int {
	return len(efficiency.Drafted(r.Players))
}

// Run derives every metric and aggregate from records. records is not modified,
// and the same input always yields the same Result. An input without drafted
// players is not an error; its aggregates are simply empty.
func Run(records []players.Record, opts Options) (Result, error) {
	for i, r := range records {
		if err := validate(r); err != nil {
			return Result{}, fmt.Errorf("%w at row %d (%s): %v", ErrInvalidRecord, i, r.FullName(), err)
		}
	}
	evaluated := valuation.CalculateAll(records)
	aggs := efficiency.AggregateWithMinPicks(evaluated, opts.MinTeamPicks)
	qualified := aggs.Qualified()
	return Result{
		Players:   evaluated,
		Teams:     aggs,
		Qualified: qualified,
		Positions: efficiency.ByPosition(evaluated),
		Rounds:    efficiency.ByRound(evaluated),
		League:    efficiency.League(qualified),
	}, nil
}

// RunCSV decodes a header-named table and runs it. Missing columns abort before any computation.
func RunCSV(r io.Reader, opts Options) (Result, error) {
	records, err := tabular.DecodeRecords(r)
	if err != nil {
		return Result{}, err
	}
	return Run(records, opts)
}

func validate(r players.Record) error {
	stats := []struct {
		name string
		v    float64
	}{
		{"points", r.Points},
		{"rebounds", r.Rebounds},
		{"assists", r.Assists},
	}
	for _, s := range stats {
		if s.v < 0 || math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return fmt.Errorf("%s must be a non-negative number, got %v", s.name, s.v)
		}
	}
	if r.CareerLength < 0 {
		return fmt.Errorf("career length must be non-negative, got %d", r.CareerLength)
	}
	return nil
}
