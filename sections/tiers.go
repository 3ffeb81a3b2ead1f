package sections

import (
	"strings"

	"github.com/randalmurphal/docbudget/budget"
)

// Tier is a token budget tier: a target token range with the file
// strategy recommended for projects of that size.
type Tier struct {
	// Name is the tier name for display.
	Name string

	// MinTokens is the lower bound of the token range (inclusive).
	MinTokens int

	// MaxTokens is the upper bound of the token range (inclusive).
	MaxTokens int

	// UseCase describes when this tier applies.
	UseCase string

	// FileStrategy is the recommended file organization.
	FileStrategy string
}

// The three enforced budget tiers, calibrated against specimen analysis
// of real llms.txt files.
var (
	Standard = Tier{
		Name:         "Standard",
		MinTokens:    1500,
		MaxTokens:    4500,
		UseCase:      "Small projects, <100 pages, <5 features",
		FileStrategy: "single",
	}

	Comprehensive = Tier{
		Name:         "Comprehensive",
		MinTokens:    4500,
		MaxTokens:    12000,
		UseCase:      "Medium projects, 100-500 pages, 5-20 features",
		FileStrategy: "dual (index + full)",
	}

	Full = Tier{
		Name:         "Full",
		MinTokens:    12000,
		MaxTokens:    50000,
		UseCase:      "Large projects, 500+ pages, 20+ features",
		FileStrategy: "multi (master + per-service)",
	}
)

// Tiers lists the budget tiers from smallest to largest.
var Tiers = []Tier{Standard, Comprehensive, Full}

// TierByName returns the tier with the given name, case-insensitively.
func TierByName(name string) (Tier, bool) {
	for _, tier := range Tiers {
		if strings.EqualFold(tier.Name, name) {
			return tier, true
		}
	}
	return Tier{}, false
}

// Size zone thresholds. Zones classify a file's total token count
// against context-window reality: beyond each threshold, decomposition
// becomes progressively more urgent.
const (
	ZoneOptimal     = 20000  // no decomposition needed
	ZoneGood        = 50000  // consider a dual-file strategy
	ZoneDegradation = 100000 // tiering strongly recommended
	ZoneAntiPattern = 500000 // exceeds all current context windows
)

// ZoneOf names the size zone a token count falls in.
func ZoneOf(totalTokens int) string {
	switch {
	case totalTokens <= ZoneOptimal:
		return "optimal"
	case totalTokens <= ZoneGood:
		return "good"
	case totalTokens <= ZoneDegradation:
		return "degradation"
	case totalTokens <= ZoneAntiPattern:
		return "anti-pattern"
	default:
		return "beyond-anti-pattern"
	}
}

// DefaultWeights returns budget weights for the canonical sections:
// earlier canonical positions weigh more, so Core Concepts outranks FAQ
// when the budget tightens. Optional gets the smallest weight.
func DefaultWeights() map[string]float64 {
	weights := make(map[string]float64, len(Canonical))
	n := len(Canonical)
	for i, name := range Canonical {
		weights[name] = float64(n - i)
	}
	return weights
}

// TierConfig returns a ready budget configuration for a tier: the
// tier's token ceiling, canonical section weights, and engine defaults.
func TierConfig(tier Tier) budget.Config {
	cfg := budget.DefaultConfig(tier.MaxTokens)
	cfg.CategoryWeights = DefaultWeights()
	cfg.Categories = append([]string(nil), Canonical...)
	return cfg
}
