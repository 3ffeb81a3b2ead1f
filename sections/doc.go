// Package sections defines the canonical llms.txt section vocabulary
// and token budget tiers.
//
// # Canonical Names
//
// Eleven standard section names cover the llms.txt ecosystem, from
// Master Index through Optional. Normalize maps common variants onto
// them:
//
//	name, ok := sections.Normalize("quickstart")  // "Getting Started", true
//	pos := sections.OrderOf("API Reference")      // 5
//
// # Budget Tiers
//
// Three tiers size a documentation bundle to the consuming project:
//
//	sections.Standard       //  1,500 -  4,500 tokens, single file
//	sections.Comprehensive  //  4,500 - 12,000 tokens, index + full
//	sections.Full           // 12,000 - 50,000 tokens, multi-file
//
// TierConfig turns a tier into a ready engine configuration with
// canonical section weights:
//
//	cfg := sections.TierConfig(sections.Comprehensive)
//	report, err := budget.Run(items, cfg, nil)
//
// # Size Zones
//
// ZoneOf classifies a total token count against context-window reality
// ("optimal" through "anti-pattern") to flag files that need
// decomposition.
package sections
