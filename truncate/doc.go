// Package truncate provides token-aware prefix truncation.
//
// When packing documentation fragments into a token budget, an item
// that almost fits can be shortened instead of dropped. This package
// keeps a leading contiguous prefix of the original text, cut at a
// rune boundary, sized by binary search against a tokens.Counter.
//
// # Basic Usage
//
//	tr := truncate.New()
//	result, truncated := tr.Prefix("very long text...", 100)
//
// # Custom Token Counter
//
// By default truncation uses an estimating counter (~4 chars/token).
// For exact results, provide a tiktoken-backed counter:
//
//	tr := truncate.New().WithCounter(exactCounter)
//
// # Suffix Markers
//
// No marker is embedded by default; truncated text stays verbatim
// source content, and downstream renderers decide presentation. To opt
// into a visible marker:
//
//	tr := truncate.New().WithSuffix("...")
//
// The marker's token cost is reserved from the limit, so results with
// a suffix still fit.
//
// # Convenience Functions
//
//	result := truncate.ToTokens(text, 100)        // bare prefix
//	result := truncate.ToTokensMarked(text, 100)  // prefix + "..."
//
// # UTF-8 Support
//
// Truncation operates on runes rather than bytes, so multi-byte
// characters are never split.
package truncate
