// Package docbudget packs llms.txt documentation content into token budgets.
//
// Documentation indexes for language models routinely carry more
// candidate content (concept definitions, page summaries, few-shot
// examples) than a consumer's context budget allows. docbudget decides
// what to keep, in what order, with how much truncation, under a hard
// token ceiling. Each subpackage can be used independently:
//
//   - budget: the selection engine (quotas, greedy selection, reallocation)
//   - tokens: token counting, estimated and exact
//   - truncate: token-aware prefix truncation
//   - sections: canonical llms.txt section names and budget tiers
//   - diag: the diagnostic code catalog
//   - budgetconfig: TOML/YAML/JSON configuration files
//
// # Quick Start
//
//	import (
//		"github.com/randalmurphal/docbudget/budget"
//		"github.com/randalmurphal/docbudget/sections"
//	)
//
//	items := []budget.Item{
//		{ID: "auth", Text: authConcept, Priority: 0.9, Category: sections.CoreConcepts},
//		{ID: "login", Text: loginExample, Priority: 0.6, Category: sections.Examples},
//	}
//	report, err := budget.Run(items, sections.TierConfig(sections.Standard), nil)
//
// The report's Selected sequence is what a renderer walks to assemble
// the final document; Warnings and Omitted say exactly what did not fit
// and why.
//
// # Design Philosophy
//
//   - Hard guarantees over clever packing: greedy, deterministic,
//     bounded, never over budget
//   - The engine is pure: configuration in, report out, no I/O
//   - Degradation is explicit: truncation and omission are data,
//     never silent
//   - Interfaces for extensibility (token counting), concrete types
//     for simplicity
package docbudget
