package budget

import (
	"fmt"

	"github.com/randalmurphal/docbudget/diag"
	"github.com/randalmurphal/docbudget/tokens"
	"github.com/randalmurphal/docbudget/truncate"
)

// Run executes one budgeting pass: quota split, greedy selection per
// category, reallocation to a fixed point, boundary truncation, report
// assembly. The computation is pure and synchronous (no I/O, no shared
// state), so callers may run independent passes concurrently.
//
// counter may be nil, in which case the default estimating counter
// (~4 chars/token) is used.
//
// Errors: *ConfigError for an invalid config or input contract breach,
// checked before any selection work; *EstimatorInconsistencyError if the
// assembled report exceeds the ceiling, which indicates a broken counter.
// Everything else (truncation, omission, starvation) is data in the
// report.
func Run(items []Item, cfg Config, counter tokens.Counter) (*Report, error) {
	if counter == nil {
		counter = tokens.NewEstimatingCounter()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	report := &Report{PerCategory: make(map[string]CategoryUsage)}
	if len(items) == 0 {
		return report, nil
	}

	categories, byCategory := groupByCategory(items, cfg)

	sumWeights := 0.0
	for _, cat := range categories {
		sumWeights += cfg.WeightOf(cat)
	}
	if sumWeights == 0 {
		return nil, &ConfigError{Field: "category_weights", Reason: "all categories have zero effective weight"}
	}

	quotas, quotaDiags := computeQuotas(categories, cfg)
	for _, d := range quotaDiags {
		report.addDiagnostic(d)
	}

	states := make([]*categoryState, len(categories))
	for i, cat := range categories {
		states[i] = &categoryState{
			name:     cat,
			items:    byCategory[cat],
			allotted: quotas[cat],
		}
		states[i].sel = selectCategory(states[i].items, states[i].allotted, counter)
	}

	reallocate(states, cfg, counter)

	assemble(report, states, cfg, counter)

	finalize(report, states, cfg, counter)

	if report.TotalTokens > cfg.MaxTokens {
		return nil, &EstimatorInconsistencyError{TotalTokens: report.TotalTokens, MaxTokens: cfg.MaxTokens}
	}
	return report, nil
}

// validateItems checks the per-item invariants and id uniqueness.
// Breaches are ConfigError: recoverable, raised before any selection.
func validateItems(items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return &ConfigError{Field: "items", Reason: err.Error()}
		}
		if seen[it.ID] {
			return &ConfigError{Field: "items", Reason: fmt.Sprintf("duplicate item id %q", it.ID)}
		}
		seen[it.ID] = true
	}
	return nil
}

// groupByCategory splits items into per-category lists, preserving input
// order within each. Category order is cfg.Categories first (skipping
// names with no items), then remaining categories in first-appearance
// order, deterministic without ever iterating a map.
func groupByCategory(items []Item, cfg Config) ([]string, map[string][]Item) {
	byCategory := make(map[string][]Item)
	var appearance []string
	for _, it := range items {
		if _, ok := byCategory[it.Category]; !ok {
			appearance = append(appearance, it.Category)
		}
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	var ordered []string
	listed := make(map[string]bool)
	for _, cat := range cfg.Categories {
		if _, ok := byCategory[cat]; ok && !listed[cat] {
			ordered = append(ordered, cat)
			listed[cat] = true
		}
	}
	for _, cat := range appearance {
		if !listed[cat] {
			ordered = append(ordered, cat)
		}
	}
	return ordered, byCategory
}

// assemble resolves each category's boundary item and fills the report's
// selection, omissions, and per-category accounting.
func assemble(report *Report, states []*categoryState, cfg Config, counter tokens.Counter) {
	truncator := truncate.New().WithCounter(counter)

	for _, st := range states {
		usage := CategoryUsage{Allotted: st.allotted}

		for i, it := range st.sel.accepted {
			item := it
			report.Selected = append(report.Selected, SelectedItem{
				Category: st.name,
				Item:     &item,
				Tokens:   st.sel.acceptedCosts[i],
			})
			usage.Used += st.sel.acceptedCosts[i]
			usage.ItemCount++
		}

		if st.sel.boundary != nil {
			boundary := *st.sel.boundary
			remaining := st.allotted - st.sel.used
			switch {
			case remaining < cfg.MinFragmentTokens:
				report.Omitted = append(report.Omitted, Omission{
					ID: boundary.ID, Category: st.name, Reason: ReasonTooSmallToTruncate,
				})
			default:
				text, _ := truncator.Prefix(boundary.Text, remaining)
				if text == "" {
					report.Omitted = append(report.Omitted, Omission{
						ID: boundary.ID, Category: st.name, Reason: ReasonQuotaExhausted,
					})
					break
				}
				truncated := &TruncatedItem{
					OriginalID:        boundary.ID,
					Text:              text,
					TokenCost:         counter.Count(text),
					OriginalTokenCost: counter.Count(boundary.Text),
				}
				report.Selected = append(report.Selected, SelectedItem{
					Category:  st.name,
					Truncated: truncated,
					Tokens:    truncated.TokenCost,
				})
				usage.Used += truncated.TokenCost
				usage.TruncatedCount++
			}
		}

		for _, it := range st.sel.rejected {
			report.Omitted = append(report.Omitted, Omission{
				ID: it.ID, Category: st.name, Reason: ReasonBelowBoundary,
			})
		}

		report.PerCategory[st.name] = usage
		report.TotalTokens += usage.Used
	}
}

// finalize adds the run-level warnings: oversized items, starved
// categories, and omission/truncation summaries.
func finalize(report *Report, states []*categoryState, cfg Config, counter tokens.Counter) {
	for _, st := range states {
		for _, it := range st.items {
			if counter.Count(it.Text) > cfg.MaxTokens {
				report.addDiagnostic(diag.Newf(diag.B002ItemExceedsBudget,
					"item %q in category %q", it.ID, st.name))
			}
		}
	}

	for _, st := range states {
		usage := report.PerCategory[st.name]
		if len(st.items) > 0 && usage.ItemCount == 0 && usage.TruncatedCount == 0 {
			report.addDiagnostic(diag.Newf(diag.B001CategoryStarved,
				"category %q (%d candidates)", st.name, len(st.items)))
		}
	}

	if n := len(report.Omitted); n > 0 {
		report.addDiagnostic(diag.Newf(diag.B004ItemsOmitted,
			"%d item(s) omitted to fit the budget", n))
	}
	truncatedTotal := 0
	for _, st := range states {
		truncatedTotal += report.PerCategory[st.name].TruncatedCount
	}
	if truncatedTotal > 0 {
		report.addDiagnostic(diag.Newf(diag.B005ItemsTruncated,
			"%d item(s) truncated to fit the budget", truncatedTotal))
	}
}
