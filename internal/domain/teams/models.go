package teams

import "github.com/preston-bernstein/nba-draft-efficiency/internal/optional"

// Aggregate summarises the drafting record of one team, built only from
// players with a draft number. Rates are percentages of TotalPicks kept at full precision.
type Aggregate struct {
	TeamName           string                  `json:"teamName"`
	TotalPicks         int                     `json:"totalPicks"`
	AvgValue           float64                 `json:"avgValue"`
	TotalValue         float64                 `json:"totalValue"`
	ValueStd           float64                 `json:"valueStd"`
	AvgROIPerSeason    optional.Value[float64] `json:"avgRoiPerSeason"`
	MedianROIPerSeason optional.Value[float64] `json:"medianRoiPerSeason"`
	AvgEfficiency      optional.Value[float64] `json:"avgEfficiency"`
	MedianEfficiency   optional.Value[float64] `json:"medianEfficiency"`
	AvgCareerLength    float64                 `json:"avgCareerLength"`
	AvgDraftPosition   float64                 `json:"avgDraftPosition"`
	FirstDraftYear     optional.Value[int]     `json:"firstDraftYear"`
	LastDraftYear      optional.Value[int]     `json:"lastDraftYear"`
	DraftSpanYears     optional.Value[int]     `json:"draftSpanYears"`
	QualityPicks       int                     `json:"qualityPicks"`
	ElitePicks         int                     `json:"elitePicks"`
	QualityPickRate    float64                 `json:"qualityPickRate"`
	ElitePickRate      float64                 `json:"elitePickRate"`
	LateRoundGems      int                     `json:"lateRoundGems"`
	ConsistencyScore   optional.Value[float64] `json:"consistencyScore"`
	Qualified          bool                    `json:"qualified"`
}
