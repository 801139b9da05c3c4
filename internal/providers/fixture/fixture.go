// Package fixture serves a deterministic player table for local runs and tests.
package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Teams are the franchises the generated rosters are spread across.
var Teams = []string{
	"Boston Celtics",
	"Denver Nuggets",
	"Golden State Warriors",
	"Miami Heat",
	"Milwaukee Bucks",
	"San Antonio Spurs",
}

// PicksPerTeam is the size of each generated draft history; enough for every team to qualify.
const PicksPerTeam = 12

// Provider returns the same table on every call.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchRecords returns notable players followed by generated draft histories.
func (p *Provider) FetchRecords(ctx context.Context) ([]players.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]players.Record, 0, len(notable)+len(Teams)*PicksPerTeam)
	out = append(out, notable...)
	for t, team := range Teams {
		for k := 0; k < PicksPerTeam; k++ {
			out = append(out, generated(team, t, k))
		}
	}
	return out, nil
}

func generated(team string, t, k int) players.Record {
	number := 1 + (t*7+k*5)%60
	round := 1
	if number > 30 {
		round = 2
	}
	return players.Record{
		FirstName:    "Prospect",
		LastName:     fmt.Sprintf("%c%02d", 'A'+t, k+1),
		TeamName:     team,
		DraftYear:    optional.Some(2000 + k),
		DraftRound:   optional.Some(round),
		DraftNumber:  optional.Some(number),
		Points:       float64(4 + (t*3+k*11)%18),
		Rebounds:     float64(2+(k*7+t)%9) / 2,
		Assists:      float64(1+(t*5+k)%7) / 2,
		CareerLength: 1 + (t+k*3)%14,
	}
}

func drafted(first, last, team string, year, round, number int, pts, reb, ast float64, career int) players.Record {
	return players.Record{
		FirstName:    first,
		LastName:     last,
		TeamName:     team,
		DraftYear:    optional.Some(year),
		DraftRound:   optional.Some(round),
		DraftNumber:  optional.Some(number),
		Points:       pts,
		Rebounds:     reb,
		Assists:      ast,
		CareerLength: career,
	}
}

var notable = []players.Record{
	drafted("Nikola", "Jokic", "Denver Nuggets", 2014, 2, 41, 20.9, 10.7, 6.9, 10),
	drafted("Giannis", "Antetokounmpo", "Milwaukee Bucks", 2013, 1, 15, 23.4, 9.8, 4.9, 12),
	drafted("Draymond", "Green", "Golden State Warriors", 2012, 2, 35, 8.7, 6.9, 5.6, 13),
	drafted("Tim", "Duncan", "San Antonio Spurs", 1997, 1, 1, 19.0, 10.8, 3.0, 19),
	drafted("Manu", "Ginobili", "San Antonio Spurs", 1999, 2, 57, 13.3, 3.5, 3.8, 16),
	drafted("Darko", "Milicic", "Detroit Pistons", 2003, 1, 2, 6.0, 4.2, 1.0, 10),
	drafted("Anthony", "Bennett", "Cleveland Cavaliers", 2013, 1, 1, 4.4, 3.1, 0.5, 4),
	{FirstName: "Ben", LastName: "Wallace", TeamName: "Washington Wizards", Points: 5.7, Rebounds: 9.6, Assists: 1.3, CareerLength: 16},
	{FirstName: "Udonis", LastName: "Haslem", TeamName: "Miami Heat", Points: 7.1, Rebounds: 6.5, Assists: 0.8, CareerLength: 20},
}
