package budget

import "fmt"

// ConfigError reports an invalid configuration or input contract breach.
// It is raised before any selection work begins and is fully recoverable
// by the caller fixing the configuration; the engine never partially
// executes on a bad config.
type ConfigError struct {
	Field  string // configuration field or input element at fault
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("budget config: %s: %s", e.Field, e.Reason)
}

// EstimatorInconsistencyError is fatal: the assembled report exceeded the
// ceiling even though selection ran correctly. It signals a broken
// Counter implementation (non-monotonic or non-additive), not a
// budgeting bug, and is never retried internally.
type EstimatorInconsistencyError struct {
	TotalTokens int
	MaxTokens   int
}

// Error implements the error interface.
func (e *EstimatorInconsistencyError) Error() string {
	return fmt.Sprintf("estimator inconsistency: assembled report uses %d tokens, ceiling is %d", e.TotalTokens, e.MaxTokens)
}

// OmitReason classifies why an item was dropped entirely. Omission is an
// expected outcome of a tight budget, reported as data, never an error.
type OmitReason string

const (
	// ReasonTooSmallToTruncate: the remaining quota was below the
	// minimum useful fragment size, so the boundary item was dropped
	// rather than truncated into a useless sliver.
	ReasonTooSmallToTruncate OmitReason = "too_small_to_truncate"

	// ReasonQuotaExhausted: not even one token of the boundary item
	// could be kept in the remaining quota.
	ReasonQuotaExhausted OmitReason = "quota_exhausted"

	// ReasonBelowBoundary: the item ranked below the category's boundary
	// item in priority order and no reallocation round freed quota for it.
	ReasonBelowBoundary OmitReason = "below_boundary"
)

// Omission records one dropped item.
type Omission struct {
	ID       string
	Category string
	Reason   OmitReason
}
