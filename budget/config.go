package budget

import "fmt"

// DefaultMaxReallocationRounds bounds the reallocation fixed-point loop.
const DefaultMaxReallocationRounds = 5

// DefaultMinFragmentTokens is the smallest remaining quota worth
// truncating into. Below this, a boundary item is omitted instead.
const DefaultMinFragmentTokens = 20

// Config is the entire externally tunable surface of the engine. All
// fields are explicit; defaults are applied once by DefaultConfig, never
// lazily. The zero value of an optional field means exactly that: zero
// reallocation rounds disables reallocation, a zero fragment minimum
// allows one-token fragments.
type Config struct {
	// MaxTokens is the global ceiling for the entire output. Required, > 0.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// CategoryWeights maps category name to a non-negative relative
	// weight. Categories absent from the map default to weight 1.0.
	CategoryWeights map[string]float64 `json:"category_weights,omitempty" yaml:"category_weights,omitempty" toml:"category_weights,omitempty"`

	// CategoryFloors optionally guarantees a category a minimum token
	// allotment, applied before proportional weighting. Floors that
	// together exceed MaxTokens are scaled down proportionally.
	CategoryFloors map[string]int `json:"category_floors,omitempty" yaml:"category_floors,omitempty" toml:"category_floors,omitempty"`

	// MaxReallocationRounds bounds the reallocation loop to guarantee
	// termination.
	MaxReallocationRounds int `json:"max_reallocation_rounds" yaml:"max_reallocation_rounds" toml:"max_reallocation_rounds"`

	// MinFragmentTokens is the minimum useful fragment size: a boundary
	// item is truncated only when at least this much quota remains.
	MinFragmentTokens int `json:"min_fragment_tokens" yaml:"min_fragment_tokens" toml:"min_fragment_tokens"`

	// Categories optionally fixes the output order of categories. Listed
	// categories come first, in this order; unlisted ones follow in
	// first-appearance order of the input. Empty means input order only.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`
}

// DefaultConfig returns a Config with documented defaults: equal weights,
// no floors, 5 reallocation rounds, 20-token minimum fragment.
func DefaultConfig(maxTokens int) Config {
	return Config{
		MaxTokens:             maxTokens,
		MaxReallocationRounds: DefaultMaxReallocationRounds,
		MinFragmentTokens:     DefaultMinFragmentTokens,
	}
}

// WeightOf returns the effective weight for a category: the configured
// weight, or 1.0 when the category is absent from CategoryWeights.
func (c Config) WeightOf(category string) float64 {
	if w, ok := c.CategoryWeights[category]; ok {
		return w
	}
	return 1.0
}

// Validate checks the configuration invariants that can be checked
// without items. Violations are ConfigError.
func (c Config) Validate() error {
	if c.MaxTokens <= 0 {
		return &ConfigError{Field: "max_tokens", Reason: fmt.Sprintf("must be positive, got %d", c.MaxTokens)}
	}
	for cat, w := range c.CategoryWeights {
		if w < 0 {
			return &ConfigError{Field: "category_weights", Reason: fmt.Sprintf("category %q has negative weight %v", cat, w)}
		}
	}
	for cat, f := range c.CategoryFloors {
		if f < 0 {
			return &ConfigError{Field: "category_floors", Reason: fmt.Sprintf("category %q has negative floor %d", cat, f)}
		}
	}
	if c.MaxReallocationRounds < 0 {
		return &ConfigError{Field: "max_reallocation_rounds", Reason: "must not be negative"}
	}
	if c.MinFragmentTokens < 0 {
		return &ConfigError{Field: "min_fragment_tokens", Reason: "must not be negative"}
	}
	return nil
}
