package budget

import (
	"math"
	"sort"

	"github.com/randalmurphal/docbudget/tokens"
)

// categoryState is one category's slot in the reallocation loop.
type categoryState struct {
	name     string
	items    []Item
	allotted int
	sel      selection
}

// reallocate runs the fixed-point loop: pool unused quota from satisfied
// categories, grant it to categories that still have unselected items,
// and re-run selection there from scratch. The loop is not an optimizer;
// it only makes local greedy improvements, bounded by the round cap, and
// stops early once a round accepts no additional tokens.
//
// Conservation: a donor's allotment drops to what it actually used, and
// grants never exceed the pooled surplus, so the sum of allotments never
// exceeds its starting total.
func reallocate(states []*categoryState, cfg Config, counter tokens.Counter) {
	for round := 0; round < cfg.MaxReallocationRounds; round++ {
		var donors, deficits []*categoryState
		pool := 0
		for _, st := range states {
			if st.sel.demand() {
				deficits = append(deficits, st)
			} else if surplus := st.allotted - st.sel.used; surplus > 0 {
				donors = append(donors, st)
				pool += surplus
			}
		}
		if len(deficits) == 0 || pool == 0 {
			return
		}

		for _, st := range donors {
			st.allotted = st.sel.used
		}

		grants := splitPool(pool, deficits, cfg)

		before := 0
		for _, st := range states {
			before += st.sel.used
		}

		for i, st := range deficits {
			if grants[i] == 0 {
				continue
			}
			st.allotted += grants[i]
			// Re-select from scratch over the full item list, not
			// resumed: the pass stays idempotent and simple to reason
			// about, and an earlier boundary can now be fully accepted.
			st.sel = selectCategory(st.items, st.allotted, counter)
		}

		after := 0
		for _, st := range states {
			after += st.sel.used
		}
		if after == before {
			// Fixed point: more quota bought nothing.
			return
		}
	}
}

// splitPool distributes pooled surplus to deficit categories
// proportionally to their original weights, leftovers going to the
// largest weights first (configuration order breaks ties). When every
// deficit category has zero weight the pool is split evenly instead, so
// floor-only categories still benefit from reallocation.
func splitPool(pool int, deficits []*categoryState, cfg Config) []int {
	sumWeights := 0.0
	for _, st := range deficits {
		sumWeights += cfg.WeightOf(st.name)
	}

	grants := make([]int, len(deficits))
	granted := 0
	for i, st := range deficits {
		var g int
		if sumWeights > 0 {
			g = int(math.Floor(float64(pool) * cfg.WeightOf(st.name) / sumWeights))
		} else {
			g = pool / len(deficits)
		}
		grants[i] = g
		granted += g
	}

	order := make([]int, len(deficits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cfg.WeightOf(deficits[order[a]].name) > cfg.WeightOf(deficits[order[b]].name)
	})

	leftover := pool - granted
	for i := 0; leftover > 0 && len(order) > 0; i++ {
		grants[order[i%len(order)]]++
		leftover--
	}
	for i := len(order) - 1; leftover < 0 && i >= 0; i-- {
		if grants[order[i]] > 0 {
			grants[order[i]]--
			leftover++
		}
	}

	return grants
}
