package budget

import (
	"math"
	"sort"

	"github.com/randalmurphal/docbudget/diag"
)

// computeQuotas derives each category's initial token allotment from the
// global budget: floors first (scaled down proportionally if they alone
// exceed the budget; quotas are always feasible, never an error), then
// the remainder split proportionally to weights, with rounding leftovers
// handed one token at a time to the largest-weight categories.
//
// The returned map covers exactly the given categories and satisfies
// sum(allotted) <= cfg.MaxTokens.
func computeQuotas(categories []string, cfg Config) (map[string]int, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	floors := make(map[string]int, len(categories))
	sumFloors := 0
	for _, cat := range categories {
		f := cfg.CategoryFloors[cat]
		floors[cat] = f
		sumFloors += f
	}

	if sumFloors > cfg.MaxTokens {
		// Scale all floors down proportionally; integer division only
		// shrinks, so the scaled sum stays within the budget.
		for _, cat := range categories {
			floors[cat] = floors[cat] * cfg.MaxTokens / sumFloors
		}
		sumFloors = 0
		for _, cat := range categories {
			sumFloors += floors[cat]
		}
		diags = append(diags, diag.Newf(diag.B003FloorsScaledDown,
			"floors sum to more than the %d-token budget", cfg.MaxTokens))
	}

	remaining := cfg.MaxTokens - sumFloors

	sumWeights := 0.0
	for _, cat := range categories {
		sumWeights += cfg.WeightOf(cat)
	}

	quotas := make(map[string]int, len(categories))
	shared := 0
	for _, cat := range categories {
		share := 0
		if sumWeights > 0 {
			share = int(math.Floor(float64(remaining) * cfg.WeightOf(cat) / sumWeights))
		}
		quotas[cat] = floors[cat] + share
		shared += share
	}

	leftover := remaining - shared

	order := make([]string, len(categories))
	copy(order, categories)
	sort.SliceStable(order, func(i, j int) bool {
		return cfg.WeightOf(order[i]) > cfg.WeightOf(order[j])
	})

	// Hand rounding leftovers to the largest-weight categories, ties
	// broken by configuration order (the stable sort preserves it).
	for i := 0; leftover > 0 && len(order) > 0; i++ {
		quotas[order[i%len(order)]]++
		leftover--
	}

	// Float error in the proportional split can overshoot by a token;
	// claw it back from the smallest weights so conservation holds.
	for i := len(order) - 1; leftover < 0 && i >= 0; i-- {
		if quotas[order[i]] > floors[order[i]] {
			quotas[order[i]]--
			leftover++
		}
	}

	return quotas, diags
}
