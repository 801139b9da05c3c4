package players

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Record is one row of the cleaned input table: a player with career
// per-game averages and draft details. Draft fields are absent for undrafted players.
type Record struct {
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	TeamName     string              `json:"teamName"`
	DraftYear    optional.Value[int] `json:"draftYear"`
	DraftRound   optional.Value[int] `json:"draftRound"`
	DraftNumber  optional.Value[int] `json:"draftNumber"`
	Points       float64             `json:"pts"`
	Rebounds     float64             `json:"reb"`
	Assists      float64             `json:"ast"`
	CareerLength int                 `json:"careerLength"`
}

// FullName joins first and last name.
func (r Record) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// Drafted reports whether the player has a draft number.
func (r Record) Drafted() bool {
	return r.DraftNumber.OK()
}

// DraftCategory buckets a draft number.
type DraftCategory string

const (
	CategoryUndrafted    DraftCategory = "Undrafted"
	CategoryLottery1to5  DraftCategory = "Lottery (1-5)"
	CategoryLottery6to14 DraftCategory = "Lottery (6-14)"
	CategoryFirstRound   DraftCategory = "First Round (15-30)"
	CategorySecondRound  DraftCategory = "Second Round (31+)"
)

// DraftCategories lists every category in draft order.
var DraftCategories = []DraftCategory{
	CategoryLottery1to5,
	CategoryLottery6to14,
	CategoryFirstRound,
	CategorySecondRound,
	CategoryUndrafted,
}

// QualityTier buckets a value score.
type QualityTier string

const (
	TierElite            QualityTier = "Elite (200+)"
	TierHighQuality      QualityTier = "High Quality (100-199)"
	TierSolidContributor QualityTier = "Solid Contributor (50-99)"
	TierRolePlayer       QualityTier = "Role Player (20-49)"
	TierLimitedImpact    QualityTier = "Limited Impact (0-19)"
)

// Metrics are the values derived from a single Record.
type Metrics struct {
	ValueScore      float64                 `json:"valueScore"`
	DraftValueRatio optional.Value[float64] `json:"draftValueRatio"`
	ROIPerSeason    optional.Value[float64] `json:"roiPerSeason"`
	ExpectedValue   float64                 `json:"expectedValue"`
	EfficiencyScore optional.Value[float64] `json:"efficiencyScore"`
	DraftCategory   DraftCategory           `json:"draftCategory"`
	QualityTier     QualityTier             `json:"qualityTier"`
}

// Evaluated is an input record augmented with its derived metrics.
type Evaluated struct {
	Record
	Metrics
}
