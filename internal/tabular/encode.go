package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Derived player column names, appended after RequiredColumns.
var PlayerMetricColumns = []string{
	"value_score",
	"draft_value_ratio",
	"roi_per_season",
	"expected_value",
	"efficiency_score",
	"draft_category",
	"quality_tier",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WritePlayers writes the augmented player table. Absent values are empty cells.
func WritePlayers(w io.Writer, rows []players.Evaluated) error {
	cw := csv.NewWriter(w)
	head := append(append([]string{}, RequiredColumns...), PlayerMetricColumns...)
	if err := cw.Write(head); err != nil {
		return err
	}
	for _, p := range rows {
		rec := []string{
			p.FirstName,
			p.LastName,
			p.TeamName,
			optional.FormatInt(p.DraftYear),
			optional.FormatInt(p.DraftRound),
			optional.FormatInt(p.DraftNumber),
			formatFloat(p.Points),
			formatFloat(p.Rebounds),
			formatFloat(p.Assists),
			strconv.Itoa(p.CareerLength),
			formatFloat(p.ValueScore),
			optional.FormatFloat(p.DraftValueRatio),
			optional.FormatFloat(p.ROIPerSeason),
			formatFloat(p.ExpectedValue),
			optional.FormatFloat(p.EfficiencyScore),
			string(p.DraftCategory),
			string(p.QualityTier),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type teamColumn struct {
	name string
	get  func(teams.Aggregate) string
	set  func(*teams.Aggregate, string) error
}

func floatCol(name string, field func(*teams.Aggregate) *float64) teamColumn {
	return teamColumn{
		name: name,
		get:  func(a teams.Aggregate) string { return formatFloat(*field(&a)) },
		set: func(a *teams.Aggregate, s string) error {
			v, err := strconv.ParseFloat(s, 64)
			*field(a) = v
			return err
		},
	}
}

func optFloatCol(name string, field func(*teams.Aggregate) *optional.Value[float64]) teamColumn {
	return teamColumn{
		name: name,
		get:  func(a teams.Aggregate) string { return optional.FormatFloat(*field(&a)) },
		set: func(a *teams.Aggregate, s string) error {
			if s == "" {
				*field(a) = optional.None[float64]()
				return nil
			}
			v, err := strconv.ParseFloat(s, 64)
			*field(a) = optional.Some(v)
			return err
		},
	}
}

func intCol(name string, field func(*teams.Aggregate) *int) teamColumn {
	return teamColumn{
		name: name,
		get:  func(a teams.Aggregate) string { return strconv.Itoa(*field(&a)) },
		set: func(a *teams.Aggregate, s string) error {
			v, err := strconv.Atoi(s)
			*field(a) = v
			return err
		},
	}
}

func optIntCol(name string, field func(*teams.Aggregate) *optional.Value[int]) teamColumn {
	return teamColumn{
		name: name,
		get:  func(a teams.Aggregate) string { return optional.FormatInt(*field(&a)) },
		set: func(a *teams.Aggregate, s string) error {
			v, err := optionalInt(s)
			*field(a) = v
			return err
		},
	}
}

var teamColumns = []teamColumn{
	{
		name: "team_name",
		get:  func(a teams.Aggregate) string { return a.TeamName },
		set: func(a *teams.Aggregate, s string) error {
			a.TeamName = s
			return nil
		},
	},
	intCol("total_picks", func(a *teams.Aggregate) *int { return &a.TotalPicks }),
	floatCol("avg_value", func(a *teams.Aggregate) *float64 { return &a.AvgValue }),
	floatCol("total_value", func(a *teams.Aggregate) *float64 { return &a.TotalValue }),
	floatCol("value_std", func(a *teams.Aggregate) *float64 { return &a.ValueStd }),
	optFloatCol("avg_roi_per_season", func(a *teams.Aggregate) *optional.Value[float64] { return &a.AvgROIPerSeason }),
	optFloatCol("median_roi_per_season", func(a *teams.Aggregate) *optional.Value[float64] { return &a.MedianROIPerSeason }),
	optFloatCol("avg_efficiency", func(a *teams.Aggregate) *optional.Value[float64] { return &a.AvgEfficiency }),
	optFloatCol("median_efficiency", func(a *teams.Aggregate) *optional.Value[float64] { return &a.MedianEfficiency }),
	floatCol("avg_career_length", func(a *teams.Aggregate) *float64 { return &a.AvgCareerLength }),
	floatCol("avg_draft_position", func(a *teams.Aggregate) *float64 { return &a.AvgDraftPosition }),
	optIntCol("first_draft_year", func(a *teams.Aggregate) *optional.Value[int] { return &a.FirstDraftYear }),
	optIntCol("last_draft_year", func(a *teams.Aggregate) *optional.Value[int] { return &a.LastDraftYear }),
	optIntCol("draft_span_years", func(a *teams.Aggregate) *optional.Value[int] { return &a.DraftSpanYears }),
	intCol("quality_picks", func(a *teams.Aggregate) *int { return &a.QualityPicks }),
	intCol("elite_picks", func(a *teams.Aggregate) *int { return &a.ElitePicks }),
	floatCol("quality_pick_rate", func(a *teams.Aggregate) *float64 { return &a.QualityPickRate }),
	floatCol("elite_pick_rate", func(a *teams.Aggregate) *float64 { return &a.ElitePickRate }),
	intCol("late_round_gems", func(a *teams.Aggregate) *int { return &a.LateRoundGems }),
	optFloatCol("consistency_score", func(a *teams.Aggregate) *optional.Value[float64] { return &a.ConsistencyScore }),
	{
		name: "qualified",
		get:  func(a teams.Aggregate) string { return strconv.FormatBool(a.Qualified) },
		set: func(a *teams.Aggregate, s string) error {
			v, err := strconv.ParseBool(s)
			a.Qualified = v
			return err
		},
	},
}

// TeamColumns returns the team table header.
func TeamColumns() []string {
	out := make([]string, len(teamColumns))
	for i, c := range teamColumns {
		out[i] = c.name
	}
	return out
}

// WriteTeams writes team aggregates at full precision.
func WriteTeams(w io.Writer, rows []teams.Aggregate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TeamColumns()); err != nil {
		return err
	}
	rec := make([]string, len(teamColumns))
	for _, a := range rows {
		for i, c := range teamColumns {
			rec[i] = c.get(a)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeTeams reads a table written by WriteTeams.
func DecodeTeams(r io.Reader) ([]teams.Aggregate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(names)
	if missing := h.missing(TeamColumns()); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var out []teams.Aggregate
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		var a teams.Aggregate
		for _, c := range teamColumns {
			if err := c.set(&a, h.cell(row, c.name)); err != nil {
				return nil, &RowError{Line: line, Column: c.name, Err: err}
			}
		}
		out = append(out, a)
	}
	return out, nil
}
