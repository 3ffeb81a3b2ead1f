package budget

import (
	"sort"

	"github.com/randalmurphal/docbudget/tokens"
)

// selection is the outcome of one greedy pass over one category.
type selection struct {
	// accepted items, in selection order, with their counted costs.
	accepted      []Item
	acceptedCosts []int

	// boundary is the first item (in priority order) that did not fit
	// the remaining quota. It is the sole truncation candidate.
	boundary *Item

	// rejected holds every item after the boundary in priority order.
	// They may be revisited if reallocation grants more quota.
	rejected []Item

	used      int
	remaining int
}

// selectCategory orders one category's items by priority (descending,
// stable: input order breaks ties, which is part of the determinism
// contract) and greedily accepts each item whose cost fits the remaining
// quota. The walk stops at the first item that does not fit: no
// backtracking, no knapsack optimization. Predictable O(n log n) beats
// optimal packing here.
//
// Item costs are recomputed from text on every pass; nothing is cached
// between passes.
func selectCategory(items []Item, quota int, counter tokens.Counter) selection {
	ordered := make([]Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	sel := selection{remaining: quota}
	for i, it := range ordered {
		cost := counter.Count(it.Text)
		if cost > sel.remaining {
			boundary := it
			sel.boundary = &boundary
			sel.rejected = append(sel.rejected, ordered[i+1:]...)
			break
		}
		sel.accepted = append(sel.accepted, it)
		sel.acceptedCosts = append(sel.acceptedCosts, cost)
		sel.used += cost
		sel.remaining -= cost
	}

	return sel
}

// demand reports whether the category could use more quota: it still has
// a boundary item or a rejected tail.
func (s selection) demand() bool {
	return s.boundary != nil || len(s.rejected) > 0
}
