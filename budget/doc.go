// Package budget selects documentation content under a hard token ceiling.
//
// Given heterogeneous candidate items (concept definitions, page
// summaries, few-shot examples) that together exceed a token budget, the
// engine decides which to keep, in what order, and with how much
// truncation, so the assembled document fits the budget while keeping
// the most valuable content. Four guarantees hold simultaneously:
//
//   - Hard ceiling: a produced report never exceeds MaxTokens.
//   - Priority contract: important content is not starved by verbose
//     low-priority content; each category gets a weighted quota.
//   - Determinism: identical inputs produce byte-identical selections.
//   - Graceful degradation: truncation and omission are explicit data in
//     the report, never silent.
//
// # Pipeline
//
// Quotas are derived from category weights (floors first, then a
// proportional split). Within each category a single greedy pass accepts
// items in priority order until one no longer fits; that boundary item
// becomes the sole truncation candidate and everything below it is set
// aside. Unused quota from satisfied categories is then pooled and
// re-granted to categories that still have unselected items, repeating
// until a fixed point or the round cap. Finally each boundary item is
// either truncated to the remaining quota or omitted.
//
// # Usage
//
//	items := []budget.Item{
//		{ID: "c1", Text: conceptText, Priority: 0.9, Category: "concepts"},
//		{ID: "p1", Text: pageSummary, Priority: 0.7, Category: "pages"},
//		{ID: "x1", Text: example, Priority: 0.4, Category: "examples"},
//	}
//	cfg := budget.DefaultConfig(4500)
//	cfg.CategoryWeights = map[string]float64{"concepts": 3, "pages": 2, "examples": 1}
//
//	report, err := budget.Run(items, cfg, nil)
//	if err != nil {
//		// *budget.ConfigError or *budget.EstimatorInconsistencyError:
//		// developer-facing configuration bugs, not runtime states.
//	}
//	for _, sel := range report.Selected {
//		render(sel.Category, sel.Text())
//	}
//	for _, w := range report.Warnings {
//		notify(w) // "3 item(s) omitted to fit the budget", etc.
//	}
//
// Pass a tokens.TiktokenCounter instead of nil for exact counting.
//
// The engine is pure: it performs no I/O, trusts the caller that item
// text is finalized prose, and returns all diagnostics as data. Any
// logging is the caller's responsibility after the call returns.
package budget
