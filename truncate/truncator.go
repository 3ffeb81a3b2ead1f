package truncate

import (
	"github.com/randalmurphal/docbudget/tokens"
)

// DefaultSuffix is the marker appended when a suffix is requested.
const DefaultSuffix = "..."

// Truncator shortens text to fit within a token limit by keeping a
// leading contiguous prefix of the original. Prefix truncation keeps
// the cut predictable: the retained text is always the document's own
// opening, never an excerpt from the middle.
//
// By default no marker is appended, so truncated text stays verbatim
// source content and callers remain free to decide presentation. Use
// WithSuffix to opt into a visible marker; its token cost is reserved
// out of the limit.
type Truncator struct {
	counter tokens.Counter
	suffix  string
}

// New creates a truncator using the default estimating counter and no suffix.
func New() *Truncator {
	return &Truncator{
		counter: tokens.NewEstimatingCounter(),
	}
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithSuffix sets a marker appended to truncated text. The marker's
// token cost is reserved from the limit, so the result still fits.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// Prefix reduces the text to the longest rune-boundary prefix that fits
// within maxTokens, returning the result and whether truncation occurred.
// Text that already fits is returned unchanged. If not even one rune
// fits, the result is empty (or just the suffix, when one is set).
func (t *Truncator) Prefix(text string, maxTokens int) (string, bool) {
	if t.counter.FitsInLimit(text, maxTokens) {
		return text, false
	}

	// Reserve space for the suffix, if any.
	target := maxTokens
	if t.suffix != "" {
		target -= t.counter.Count(t.suffix)
	}
	if target <= 0 {
		return t.suffix, true
	}

	runes := []rune(text)
	keep := t.prefixRunesFor(runes, target)
	if keep == 0 {
		return t.suffix, true
	}
	return string(runes[:keep]) + t.suffix, true
}

// prefixRunesFor binary-searches for the longest prefix length (in runes)
// whose estimated cost fits maxTokens. Counter monotonicity makes the
// predicate monotone over prefix length, so binary search is valid.
func (t *Truncator) prefixRunesFor(runes []rune, maxTokens int) int {
	low, high := 0, len(runes)

	for low < high {
		mid := (low + high + 1) / 2
		candidate := string(runes[:mid])
		if t.counter.FitsInLimit(candidate, maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}

	return low
}
