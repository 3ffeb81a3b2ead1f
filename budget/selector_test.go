package budget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/docbudget/tokens"
)

// textOfTokens builds text the default estimator counts as exactly n tokens.
func textOfTokens(n int) string {
	return strings.Repeat("abcd", n)
}

func TestSelectCategory_PriorityOrder(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	items := []Item{
		{ID: "low", Text: textOfTokens(10), Priority: 0.2, Category: "c"},
		{ID: "high", Text: textOfTokens(10), Priority: 0.9, Category: "c"},
		{ID: "mid", Text: textOfTokens(10), Priority: 0.5, Category: "c"},
	}

	sel := selectCategory(items, 100, counter)

	require.Len(t, sel.accepted, 3)
	assert.Equal(t, "high", sel.accepted[0].ID)
	assert.Equal(t, "mid", sel.accepted[1].ID)
	assert.Equal(t, "low", sel.accepted[2].ID)
	assert.Equal(t, 30, sel.used)
	assert.Equal(t, 70, sel.remaining)
	assert.Nil(t, sel.boundary)
	assert.Empty(t, sel.rejected)
}

func TestSelectCategory_TiesKeepInputOrder(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	items := []Item{
		{ID: "first", Text: textOfTokens(5), Priority: 0.5, Category: "c"},
		{ID: "second", Text: textOfTokens(5), Priority: 0.5, Category: "c"},
		{ID: "third", Text: textOfTokens(5), Priority: 0.5, Category: "c"},
	}

	sel := selectCategory(items, 100, counter)

	require.Len(t, sel.accepted, 3)
	assert.Equal(t, "first", sel.accepted[0].ID)
	assert.Equal(t, "second", sel.accepted[1].ID)
	assert.Equal(t, "third", sel.accepted[2].ID)
}

func TestSelectCategory_BoundaryStopsThePass(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	items := []Item{
		{ID: "a", Text: textOfTokens(40), Priority: 0.9, Category: "c"},
		{ID: "b", Text: textOfTokens(40), Priority: 0.8, Category: "c"},
		// Would fit the leftover quota, but sits below the boundary:
		// the pass is single-sweep, no skip-and-revisit.
		{ID: "small", Text: textOfTokens(5), Priority: 0.1, Category: "c"},
	}

	sel := selectCategory(items, 70, counter)

	require.Len(t, sel.accepted, 1)
	assert.Equal(t, "a", sel.accepted[0].ID)
	require.NotNil(t, sel.boundary)
	assert.Equal(t, "b", sel.boundary.ID)
	require.Len(t, sel.rejected, 1)
	assert.Equal(t, "small", sel.rejected[0].ID)
	assert.Equal(t, 40, sel.used)
	assert.Equal(t, 30, sel.remaining)
	assert.True(t, sel.demand())
}

func TestSelectCategory_EmptyQuota(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	items := []Item{
		{ID: "a", Text: textOfTokens(10), Priority: 0.9, Category: "c"},
	}

	sel := selectCategory(items, 0, counter)

	assert.Empty(t, sel.accepted)
	require.NotNil(t, sel.boundary)
	assert.Equal(t, "a", sel.boundary.ID)
	assert.Zero(t, sel.used)
}

func TestSelectCategory_DoesNotMutateInput(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	items := []Item{
		{ID: "low", Text: textOfTokens(10), Priority: 0.1, Category: "c"},
		{ID: "high", Text: textOfTokens(10), Priority: 0.9, Category: "c"},
	}

	selectCategory(items, 100, counter)

	assert.Equal(t, "low", items[0].ID, "input slice must keep its order")
	assert.Equal(t, "high", items[1].ID)
}
