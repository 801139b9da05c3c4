// Package report renders the draft efficiency report as plain text.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
)

const (
	ruleWidth    = 80
	sectionWidth = 50

	// NoDataLine is printed in place of every section when there is nothing to rank.
	NoDataLine = "No data: no drafted players or qualified teams to report on."
)

// Render writes the full report for v, listing up to topN entries per ranking.
func Render(w io.Writer, v ranking.View, topN int) error {
	if topN <= 0 {
		topN = ranking.DefaultLimit
	}
	p := &printer{w: w}
	p.line(strings.Repeat("=", ruleWidth))
	p.line("NBA TEAM DRAFT EFFICIENCY REPORT")
	p.line(strings.Repeat("=", ruleWidth))

	if v.Empty() || len(v.Teams.Qualified()) == 0 {
		p.line("")
		p.line(NoDataLine)
		return p.err
	}

	p.section("TOP PERFORMERS BY CATEGORY")
	teamsSection(p, v, topN)

	p.section("DRAFT EFFICIENCY BY POSITION")
	for _, s := range efficiency.ByPosition(v.Players) {
		p.linef("%-20s | ROI/Season: %s | Efficiency: %s | Players: %d",
			s.Category, opt(s.AvgROIPerSeason, 3), opt(s.AvgEfficiency, 3), s.Count)
	}

	p.section("TEAMS WITH BEST HISTORICAL DRAFTING")
	if err := draftingSection(p, v, topN); err != nil {
		return err
	}

	p.section("NOTABLE SUCCESS STORIES")
	p.line("")
	p.line("Best Second Round Picks (31+):")
	late, err := v.SecondRound(ranking.DefaultLimit)
	if err != nil && !errors.Is(err, ranking.ErrNoData) {
		return err
	}
	if len(late) == 0 {
		p.line("  none")
	}
	for _, pl := range late {
		p.linef("- %s (#%d, %s) - Value: %.1f", pl.FullName(), pl.DraftNumber.Or(0), pl.TeamName, pl.ValueScore)
	}

	p.section("KEY INSIGHTS")
	ins, err := v.Insights()
	if err != nil {
		return err
	}
	p.linef("- Best Overall Draft Efficiency: %s", ins.BestOverall)
	p.linef("- Most Consistent Drafting: %s", ins.MostConsistent)
	p.linef("- Best at Late Round Picks: %s", ins.BestLateRound)
	p.linef("- League Average Quality Pick Rate: %s%%", opt(ins.League.AvgQualityPickRate, 1))

	p.line("")
	p.line(strings.Repeat("=", ruleWidth))
	return p.err
}

func teamsSection(p *printer, v ranking.View, topN int) {
	blocks := []struct {
		title  string
		by     ranking.TeamOrder
		format func(i int, name string, t teamRow) string
	}{
		{"Best ROI per Season:", ranking.ByROI, func(i int, name string, t teamRow) string {
			return fmt.Sprintf("%2d. %-20s %s ROI/season", i, name, opt(t.roi, 3))
		}},
		{"Highest Quality Pick Rate:", ranking.ByQualityRate, func(i int, name string, t teamRow) string {
			return fmt.Sprintf("%2d. %-20s %.1f%% quality picks", i, name, t.quality)
		}},
		{"Highest Elite Pick Rate:", ranking.ByEliteRate, func(i int, name string, t teamRow) string {
			return fmt.Sprintf("%2d. %-20s %.1f%% elite picks", i, name, t.elite)
		}},
		{"Best at Finding Late Round Gems:", ranking.ByGems, func(i int, name string, t teamRow) string {
			return fmt.Sprintf("%2d. %-20s %d late round gems", i, name, t.gems)
		}},
		{"Most Consistent Drafting:", ranking.ByConsistency, func(i int, name string, t teamRow) string {
			return fmt.Sprintf("%2d. %-20s %.1f value std", i, name, t.std)
		}},
	}
	for _, b := range blocks {
		p.line("")
		p.line(b.title)
		top, err := v.TopTeams(b.by, topN)
		if err != nil {
			p.line("  " + NoDataLine)
			continue
		}
		for i, t := range top {
			row := teamRow{
				roi:     t.AvgROIPerSeason,
				quality: efficiency.QualityPickRateDisplay(t),
				elite:   efficiency.ElitePickRateDisplay(t),
				gems:    t.LateRoundGems,
				std:     t.ValueStd,
			}
			p.line(b.format(i+1, t.TeamName, row))
		}
	}
}

func draftingSection(p *printer, v ranking.View, topN int) error {
	blocks := []struct {
		title string
		by    ranking.RatioOrder
	}{
		{"By Average Draft Value Ratio:", ranking.ByAvgRatio},
		{"By Total Draft Value Ratio:", ranking.ByTotalRatio},
	}
	for _, b := range blocks {
		p.line("")
		p.line(b.title)
		top, err := v.TopDrafting(b.by, topN)
		if errors.Is(err, ranking.ErrNoData) {
			p.linef("  No teams with at least %d drafted players.", v.Teams.MinPicks())
			continue
		}
		if err != nil {
			return err
		}
		for i, t := range top {
			p.linef("%2d. %-20s avg %.2f | median %.2f | total %.2f | players %d | avg pick %.1f",
				i+1, t.TeamName, t.AvgRatio, t.MedianRatio, t.TotalRatio, t.Count, t.AvgDraftPosition)
		}
	}
	return nil
}

type teamRow struct {
	roi     optional.Value[float64]
	quality float64
	elite   float64
	gems    int
	std     float64
}

func opt(v optional.Value[float64], places int32) string {
	f, ok := v.Get()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", int(places), efficiency.Round(f, places))
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) section(title string) {
	p.line("")
	p.line(title)
	p.line(strings.Repeat("-", sectionWidth))
}
