// Package valuation derives per-player value metrics and their categorical labels.
package valuation

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// expectedValueBase is the linear baseline a draft slot is measured against:
// expected value = expectedValueBase - draft number.
const expectedValueBase = 100

// ValueScore is (points + rebounds + assists) * career length.
func ValueScore(r players.Record) float64 {
	return (r.Points + r.Rebounds + r.Assists) * float64(r.CareerLength)
}

// DraftValueRatio is value score per draft slot, present only for a positive draft number.
func DraftValueRatio(valueScore float64, draftNumber optional.Value[int]) optional.Value[float64] {
	return optional.Bind(draftNumber, func(n int) optional.Value[float64] {
		if n <= 0 {
			return optional.None[float64]()
		}
		return optional.Div(valueScore, float64(n))
	})
}

// ROIPerSeason is value score / (career length * draft number). It is present
// when the career is longer than zero years and a draft number exists.
func ROIPerSeason(valueScore float64, careerLength int, draftNumber optional.Value[int]) optional.Value[float64] {
	if careerLength <= 0 {
		return optional.None[float64]()
	}
	return optional.Bind(draftNumber, func(n int) optional.Value[float64] {
		return optional.Div(valueScore, float64(careerLength)*float64(n))
	})
}

// ExpectedValue is 100 - draft number, or 0 for undrafted players.
func ExpectedValue(draftNumber optional.Value[int]) float64 {
	n, ok := draftNumber.Get()
	if !ok {
		return 0
	}
	return float64(expectedValueBase - n)
}

// EfficiencyScore is value score / expected value, present only for a strictly
// positive baseline. Picks at 100 or later never get a score.
func EfficiencyScore(valueScore, expected float64) optional.Value[float64] {
	if expected <= 0 {
		return optional.None[float64]()
	}
	return optional.Div(valueScore, expected)
}

// Calculate derives every metric for one record.
func Calculate(r players.Record) players.Metrics {
	value := ValueScore(r)
	expected := ExpectedValue(r.DraftNumber)
	return players.Metrics{
		ValueScore:      value,
		DraftValueRatio: DraftValueRatio(value, r.DraftNumber),
		ROIPerSeason:    ROIPerSeason(value, r.CareerLength, r.DraftNumber),
		ExpectedValue:   expected,
		EfficiencyScore: EfficiencyScore(value, expected),
		DraftCategory:   CategorizeDraft(r.DraftNumber),
		QualityTier:     Tier(value),
	}
}

// CalculateAll returns a new augmented table; records is left untouched.
func CalculateAll(records []players.Record) []players.Evaluated {
	out := make([]players.Evaluated, len(records))
	for i, r := range records {
		out[i] = players.Evaluated{Record: r, Metrics: Calculate(r)}
	}
	return out
}
