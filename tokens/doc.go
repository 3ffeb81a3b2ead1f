// Package tokens provides token counting for document budgeting.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast
// estimate without requiring a model-specific tokenizer. Estimates use
// ceiling division, so non-empty text always counts as at least one
// token and appending text never lowers the count; the budget engine
// relies on both properties.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~4 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Exact Counting
//
// When estimates are too coarse, TiktokenCounter counts exactly against
// a real BPE encoding:
//
//	counter, err := tokens.NewTiktokenCounter("cl100k_base")
//	counter, err := tokens.NewTiktokenCounterForModel("gpt-4o")
//
// Both counters satisfy the same Counter interface, so the budget
// engine accepts either.
//
// # Model Limits
//
// Get context window sizes for common models:
//
//	limit := tokens.ContextLimit("claude-opus-4")  // 200000
//	limit := tokens.ContextLimit("unknown")        // 100000 (default)
package tokens
