package valuation

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Rule pairs a predicate with the label it assigns. Tables are evaluated top-down
// and the first match wins; the last rule of each table matches everything.
type Rule[T any, L ~string] struct {
	Match func(T) bool
	Label L
}

// DraftCategoryRules partitions the draft-number domain, including absence.
var DraftCategoryRules = []Rule[optional.Value[int], players.DraftCategory]{
	{Match: func(n optional.Value[int]) bool { return !n.OK() }, Label: players.CategoryUndrafted},
	{Match: func(n optional.Value[int]) bool { return n.Or(0) <= 5 }, Label: players.CategoryLottery1to5},
	{Match: func(n optional.Value[int]) bool { return n.Or(0) <= 14 }, Label: players.CategoryLottery6to14},
	{Match: func(n optional.Value[int]) bool { return n.Or(0) <= 30 }, Label: players.CategoryFirstRound},
	{Match: func(optional.Value[int]) bool { return true }, Label: players.CategorySecondRound},
}

// QualityTierRules partitions value scores.
var QualityTierRules = []Rule[float64, players.QualityTier]{
	{Match: func(v float64) bool { return v >= 200 }, Label: players.TierElite},
	{Match: func(v float64) bool { return v >= 100 }, Label: players.TierHighQuality},
	{Match: func(v float64) bool { return v >= 50 }, Label: players.TierSolidContributor},
	{Match: func(v float64) bool { return v >= 20 }, Label: players.TierRolePlayer},
	{Match: func(float64) bool { return true }, Label: players.TierLimitedImpact},
}

// Classify returns the label of the first matching rule, or the zero label when none match.
func Classify[T any, L ~string](rules []Rule[T, L], v T) L {
	for _, r := range rules {
		if r.Match(v) {
			return r.Label
		}
	}
	var zero L
	return zero
}

// CategorizeDraft buckets a draft number.
func CategorizeDraft(draftNumber optional.Value[int]) players.DraftCategory {
	return Classify(DraftCategoryRules, draftNumber)
}

// Tier buckets a value score.
func Tier(valueScore float64) players.QualityTier {
	return Classify(QualityTierRules, valueScore)
}
