package budgetconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/docbudget/budget"
	"github.com/randalmurphal/docbudget/sections"
	"github.com/randalmurphal/docbudget/tokens"
)

// File is the on-disk form of a budgeting configuration. Every field is
// optional except that either Tier or MaxTokens must be set; explicit
// fields override whatever the tier preset provides.
type File struct {
	// Tier names a preset ("standard", "comprehensive", "full") that
	// seeds the token ceiling and canonical section weights.
	Tier string `json:"tier,omitempty" yaml:"tier,omitempty" toml:"tier,omitempty"`

	// MaxTokens is the global ceiling. Overrides the tier's ceiling.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty" toml:"max_tokens,omitempty"`

	// CategoryWeights overrides the weight map wholesale when present.
	CategoryWeights map[string]float64 `json:"category_weights,omitempty" yaml:"category_weights,omitempty" toml:"category_weights,omitempty"`

	// CategoryFloors sets per-category minimum token floors.
	CategoryFloors map[string]int `json:"category_floors,omitempty" yaml:"category_floors,omitempty" toml:"category_floors,omitempty"`

	// MaxReallocationRounds bounds the reallocation loop. Nil keeps the
	// default; an explicit 0 disables reallocation.
	MaxReallocationRounds *int `json:"max_reallocation_rounds,omitempty" yaml:"max_reallocation_rounds,omitempty" toml:"max_reallocation_rounds,omitempty"`

	// MinFragmentTokens is the minimum useful truncation fragment. Nil
	// keeps the default; an explicit 0 allows one-token fragments.
	MinFragmentTokens *int `json:"min_fragment_tokens,omitempty" yaml:"min_fragment_tokens,omitempty" toml:"min_fragment_tokens,omitempty"`

	// Categories fixes the output order of categories.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`

	// Estimator selects the token counter implementation.
	Estimator EstimatorConfig `json:"estimator,omitempty" yaml:"estimator,omitempty" toml:"estimator,omitempty"`
}

// EstimatorConfig selects and tunes the token counter.
type EstimatorConfig struct {
	// Kind is "estimate" (chars-per-token heuristic, the default) or
	// "tiktoken" (exact BPE counting).
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`

	// CharsPerToken tunes the heuristic estimator. 0 means default (4.0).
	CharsPerToken float64 `json:"chars_per_token,omitempty" yaml:"chars_per_token,omitempty" toml:"chars_per_token,omitempty"`

	// Encoding names the BPE encoding for tiktoken. Empty means
	// cl100k_base.
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`
}

// Load reads a configuration file, dispatching on extension:
// .toml, .yaml/.yml, or .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .toml, .yaml, .yml, or .json)", filepath.Ext(path))
	}
}

// ParseTOML decodes a TOML configuration.
func ParseTOML(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse toml config: %w", err)
	}
	return &f, nil
}

// ParseYAML decodes a YAML configuration.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}
	return &f, nil
}

// ParseJSON decodes a JSON configuration.
func ParseJSON(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse json config: %w", err)
	}
	return &f, nil
}

// Config materializes the engine configuration: tier preset first, then
// explicit fields on top. The result is validated.
func (f *File) Config() (budget.Config, error) {
	var cfg budget.Config
	switch {
	case f.Tier != "":
		tier, ok := sections.TierByName(f.Tier)
		if !ok {
			return budget.Config{}, fmt.Errorf("unknown tier %q (want standard, comprehensive, or full)", f.Tier)
		}
		cfg = sections.TierConfig(tier)
		if f.MaxTokens > 0 {
			cfg.MaxTokens = f.MaxTokens
		}
	case f.MaxTokens > 0:
		cfg = budget.DefaultConfig(f.MaxTokens)
	default:
		return budget.Config{}, fmt.Errorf("config needs either a tier or max_tokens")
	}

	if f.CategoryWeights != nil {
		cfg.CategoryWeights = f.CategoryWeights
	}
	if f.CategoryFloors != nil {
		cfg.CategoryFloors = f.CategoryFloors
	}
	if f.MaxReallocationRounds != nil {
		cfg.MaxReallocationRounds = *f.MaxReallocationRounds
	}
	if f.MinFragmentTokens != nil {
		cfg.MinFragmentTokens = *f.MinFragmentTokens
	}
	if f.Categories != nil {
		cfg.Categories = f.Categories
	}

	if err := cfg.Validate(); err != nil {
		return budget.Config{}, err
	}
	return cfg, nil
}

// Counter builds the token counter the configuration asks for.
func (f *File) Counter() (tokens.Counter, error) {
	switch f.Estimator.Kind {
	case "", "estimate":
		if f.Estimator.CharsPerToken > 0 {
			return tokens.NewEstimatingCounterWithRatio(f.Estimator.CharsPerToken), nil
		}
		return tokens.NewEstimatingCounter(), nil
	case "tiktoken":
		return tokens.NewTiktokenCounter(f.Estimator.Encoding)
	default:
		return nil, fmt.Errorf("unknown estimator kind %q (want estimate or tiktoken)", f.Estimator.Kind)
	}
}
