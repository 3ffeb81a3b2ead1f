package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/docbudget/budget"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		known    bool
	}{
		{"canonical name", "Core Concepts", CoreConcepts, true},
		{"canonical lowercased", "core concepts", CoreConcepts, true},
		{"alias", "quickstart", GettingStarted, true},
		{"alias with spaces", "  table of contents  ", MasterIndex, true},
		{"alias cased", "API", APIReference, true},
		{"unknown passes through", "Release Notes", "Release Notes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestAliasesAllResolveToCanonical(t *testing.T) {
	canonical := make(map[string]bool, len(Canonical))
	for _, name := range Canonical {
		canonical[name] = true
	}
	for alias, target := range Aliases {
		assert.True(t, canonical[target], "alias %q points at non-canonical %q", alias, target)
	}
}

func TestOrderOf(t *testing.T) {
	assert.Equal(t, 1, OrderOf(MasterIndex))
	assert.Equal(t, 5, OrderOf("api")) // alias for API Reference
	assert.Equal(t, 10, OrderOf(FAQ))

	// Optional and unknown names sort after every positioned section.
	assert.Greater(t, OrderOf(Optional), OrderOf(FAQ))
	assert.Greater(t, OrderOf("Release Notes"), OrderOf(FAQ))
}

func TestCanonicalOrderIsSorted(t *testing.T) {
	for i := 1; i < len(Canonical); i++ {
		assert.LessOrEqual(t, OrderOf(Canonical[i-1]), OrderOf(Canonical[i]),
			"%q should not sort after %q", Canonical[i-1], Canonical[i])
	}
}

func TestTierByName(t *testing.T) {
	tier, ok := TierByName("comprehensive")
	require.True(t, ok)
	assert.Equal(t, Comprehensive, tier)

	_, ok = TierByName("gigantic")
	assert.False(t, ok)
}

func TestTierRangesAreContiguous(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		assert.Equal(t, Tiers[i-1].MaxTokens, Tiers[i].MinTokens,
			"tier %q should start where %q ends", Tiers[i].Name, Tiers[i-1].Name)
	}
	for _, tier := range Tiers {
		assert.Less(t, tier.MinTokens, tier.MaxTokens, "tier %q", tier.Name)
	}
}

func TestZoneOf(t *testing.T) {
	tests := []struct {
		tokens   int
		expected string
	}{
		{1500, "optimal"},
		{20000, "optimal"},
		{35000, "good"},
		{80000, "degradation"},
		{200000, "anti-pattern"},
		{600000, "beyond-anti-pattern"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ZoneOf(tt.tokens), "tokens=%d", tt.tokens)
	}
}

func TestDefaultWeights(t *testing.T) {
	weights := DefaultWeights()

	require.Len(t, weights, len(Canonical))
	assert.Greater(t, weights[CoreConcepts], weights[FAQ],
		"earlier canonical sections must weigh more")
	assert.Equal(t, 1.0, weights[Optional], "Optional gets the smallest weight")
}

func TestTierConfig(t *testing.T) {
	cfg := TierConfig(Comprehensive)

	assert.Equal(t, Comprehensive.MaxTokens, cfg.MaxTokens)
	assert.Equal(t, Canonical, cfg.Categories)
	require.NoError(t, cfg.Validate())
}

func TestTierConfigDrivesEngine(t *testing.T) {
	items := []budget.Item{
		{ID: "cc1", Text: "A concept definition body.", Priority: 0.9, Category: CoreConcepts},
		{ID: "ex1", Text: "An example walkthrough body.", Priority: 0.6, Category: Examples},
	}

	report, err := budget.Run(items, TierConfig(Standard), nil)
	require.NoError(t, err)
	assert.Len(t, report.Selected, 2)
	assert.LessOrEqual(t, report.TotalTokens, Standard.MaxTokens)
	assert.Equal(t, CoreConcepts, report.Selected[0].Category)
}
