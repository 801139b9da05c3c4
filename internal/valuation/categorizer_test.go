package valuation

import (
	"testing"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

func TestCategorizeDraftBoundaries(t *testing.T) {
	cases := []struct {
		pick optional.Value[int]
		want players.DraftCategory
	}{
		{optional.None[int](), players.CategoryUndrafted},
		{optional.Some(1), players.CategoryLottery1to5},
		{optional.Some(5), players.CategoryLottery1to5},
		{optional.Some(6), players.CategoryLottery6to14},
		{optional.Some(14), players.CategoryLottery6to14},
		{optional.Some(15), players.CategoryFirstRound},
		{optional.Some(30), players.CategoryFirstRound},
		{optional.Some(31), players.CategorySecondRound},
		{optional.Some(60), players.CategorySecondRound},
		{optional.Some(0), players.CategoryLottery1to5},
	}
	for _, tc := range cases {
		if got := CategorizeDraft(tc.pick); got != tc.want {
			t.Fatalf("pick %v: expected %s, got %s", tc.pick.Or(-1), tc.want, got)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  players.QualityTier
	}{
		{0, players.TierLimitedImpact},
		{19.99, players.TierLimitedImpact},
		{20, players.TierRolePlayer},
		{49.9, players.TierRolePlayer},
		{50, players.TierSolidContributor},
		{99.99, players.TierSolidContributor},
		{100, players.TierHighQuality},
		{199.5, players.TierHighQuality},
		{200, players.TierElite},
		{1500, players.TierElite},
	}
	for _, tc := range cases {
		if got := Tier(tc.value); got != tc.want {
			t.Fatalf("value %v: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestRuleTablesAreTotal(t *testing.T) {
	for pick := -5; pick <= 120; pick++ {
		if CategorizeDraft(optional.Some(pick)) == "" {
			t.Fatalf("pick %d fell through the category table", pick)
		}
	}
	for v := -10.0; v <= 400; v += 0.5 {
		if Tier(v) == "" {
			t.Fatalf("value %v fell through the tier table", v)
		}
	}
}

func TestClassifyReturnsZeroWhenNothingMatches(t *testing.T) {
	rules := []Rule[int, players.QualityTier]{
		{Match: func(v int) bool { return v > 10 }, Label: players.TierElite},
	}
	if got := Classify(rules, 3); got != "" {
		t.Fatalf("expected zero label, got %s", got)
	}
}
