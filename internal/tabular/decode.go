// Package tabular reads and writes the flat player and team tables as header-named CSV.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Input column names.
const (
	ColFirstName    = "PLAYER_FIRST_NAME"
	ColLastName     = "PLAYER_LAST_NAME"
	ColTeamName     = "TEAM_NAME"
	ColDraftYear    = "DRAFT_YEAR"
	ColDraftRound   = "DRAFT_ROUND"
	ColDraftNumber  = "DRAFT_NUMBER"
	ColPoints       = "PTS"
	ColRebounds     = "REB"
	ColAssists      = "AST"
	ColCareerLength = "career_length"
)

// RequiredColumns are the columns every input table must carry, in canonical order.
var RequiredColumns = []string{
	ColFirstName,
	ColLastName,
	ColTeamName,
	ColDraftYear,
	ColDraftRound,
	ColDraftNumber,
	ColPoints,
	ColRebounds,
	ColAssists,
	ColCareerLength,
}

var (
	errNotInteger = errors.New("not an integer")
	errOutOfRange = errors.New("integer out of range")
)

// header maps column names to their index.
type header map[string]int

func newHeader(names []string) header {
	h := make(header, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

// missing returns the required columns absent from the header, in canonical order.
func (h header) missing(required []string) []string {
	var out []string
	for _, col := range required {
		if _, ok := h[col]; !ok {
			out = append(out, col)
		}
	}
	return out
}

func (h header) cell(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// DecodeRecords reads the cleaned input table. The header is validated before
// any row is read; extra columns are ignored. Empty stat cells read as zero and
// a blank or non-numeric draft cell reads as absent.
func DecodeRecords(r io.Reader) ([]players.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(names)
	if missing := h.missing(RequiredColumns); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var out []players.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		rec, err := decodeRow(h, row, line)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRow(h header, row []string, line int) (players.Record, error) {
	rec := players.Record{
		FirstName: h.cell(row, ColFirstName),
		LastName:  h.cell(row, ColLastName),
		TeamName:  h.cell(row, ColTeamName),
	}
	draft := []struct {
		col string
		dst *optional.Value[int]
	}{
		{ColDraftYear, &rec.DraftYear},
		{ColDraftRound, &rec.DraftRound},
		{ColDraftNumber, &rec.DraftNumber},
	}
	for _, d := range draft {
		v, err := optionalInt(h.cell(row, d.col))
		if err != nil {
			return players.Record{}, &RowError{Line: line, Column: d.col, Err: err}
		}
		*d.dst = v
	}
	stats := []struct {
		col string
		dst *float64
	}{
		{ColPoints, &rec.Points},
		{ColRebounds, &rec.Rebounds},
		{ColAssists, &rec.Assists},
	}
	for _, s := range stats {
		v, err := parseStat(h.cell(row, s.col))
		if err != nil {
			return players.Record{}, &RowError{Line: line, Column: s.col, Err: err}
		}
		*s.dst = v
	}
	career, err := parseCareer(h.cell(row, ColCareerLength))
	if err != nil {
		return players.Record{}, &RowError{Line: line, Column: ColCareerLength, Err: err}
	}
	rec.CareerLength = career
	return rec, nil
}

func parseStat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, nil
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return v, nil
}

func parseCareer(s string) (int, error) {
	v, err := parseStat(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, errNotInteger
	}
	if v < 0 {
		return 0, fmt.Errorf("negative career length %v", v)
	}
	if !inInt32(v) {
		return 0, errOutOfRange
	}
	return int(v), nil
}

func inInt32(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// optionalInt accepts integral values written as "12" or "12.0"; anything else
// is absent. Integral values beyond the int32 range are rejected.
func optionalInt(s string) (optional.Value[int], error) {
	if s == "" {
		return optional.None[int](), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return optional.None[int](), nil
	}
	if !inInt32(v) {
		return optional.None[int](), errOutOfRange
	}
	return optional.Some(int(v)), nil
}
