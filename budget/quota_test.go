package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuotas_ProportionalSplit(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.CategoryWeights = map[string]float64{"concepts": 3, "examples": 1}

	quotas, diags := computeQuotas([]string{"concepts", "examples"}, cfg)

	assert.Empty(t, diags)
	assert.Equal(t, 75, quotas["concepts"])
	assert.Equal(t, 25, quotas["examples"])
}

func TestComputeQuotas_RemainderToLargestWeight(t *testing.T) {
	cfg := DefaultConfig(100)
	// Equal weights: the rounding leftover goes to the first category
	// in configuration order.
	quotas, _ := computeQuotas([]string{"a", "b", "c"}, cfg)

	assert.Equal(t, 34, quotas["a"])
	assert.Equal(t, 33, quotas["b"])
	assert.Equal(t, 33, quotas["c"])
}

func TestComputeQuotas_RemainderPrefersHeavierCategory(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.CategoryWeights = map[string]float64{"a": 1, "b": 2}

	// 10 * 1/3 = 3.33 -> 3, 10 * 2/3 = 6.66 -> 6, leftover 1 goes to b.
	quotas, _ := computeQuotas([]string{"a", "b"}, cfg)

	assert.Equal(t, 3, quotas["a"])
	assert.Equal(t, 7, quotas["b"])
}

func TestComputeQuotas_FloorsAppliedBeforeWeights(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.CategoryFloors = map[string]int{"a": 30}

	quotas, diags := computeQuotas([]string{"a", "b"}, cfg)

	assert.Empty(t, diags)
	// 30 floor + half of the remaining 70.
	assert.Equal(t, 65, quotas["a"])
	assert.Equal(t, 35, quotas["b"])
}

func TestComputeQuotas_FloorsScaledWhenOverBudget(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.CategoryWeights = map[string]float64{"a": 1, "b": 1}
	cfg.CategoryFloors = map[string]int{"a": 80, "b": 40}

	quotas, diags := computeQuotas([]string{"a", "b"}, cfg)

	require.Len(t, diags, 1, "expected a floors-scaled warning")
	// Floors scale to 66/33; the leftover token goes to "a" (tie on
	// weight, configuration order).
	assert.Equal(t, 67, quotas["a"])
	assert.Equal(t, 33, quotas["b"])
	assert.LessOrEqual(t, quotas["a"]+quotas["b"], 100)
}

func TestComputeQuotas_ZeroWeightCategoryGetsOnlyFloor(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.CategoryWeights = map[string]float64{"a": 1, "b": 0}
	cfg.CategoryFloors = map[string]int{"b": 10}

	quotas, _ := computeQuotas([]string{"a", "b"}, cfg)

	assert.Equal(t, 90, quotas["a"])
	assert.Equal(t, 10, quotas["b"])
}

func TestComputeQuotas_NeverExceedsBudget(t *testing.T) {
	cases := []struct {
		name    string
		max     int
		cats    []string
		weights map[string]float64
		floors  map[string]int
	}{
		{"three way", 101, []string{"a", "b", "c"}, map[string]float64{"a": 1, "b": 2, "c": 4}, nil},
		{"tiny budget", 1, []string{"a", "b", "c"}, nil, nil},
		{"floors dominate", 10, []string{"a", "b"}, nil, map[string]int{"a": 100, "b": 100}},
		{"fractional weights", 97, []string{"a", "b", "c"}, map[string]float64{"a": 0.1, "b": 0.3, "c": 0.7}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(tc.max)
			cfg.CategoryWeights = tc.weights
			cfg.CategoryFloors = tc.floors

			quotas, _ := computeQuotas(tc.cats, cfg)

			sum := 0
			for _, q := range quotas {
				sum += q
			}
			assert.LessOrEqual(t, sum, tc.max)
		})
	}
}
