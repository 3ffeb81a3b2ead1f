package budget

import (
	"fmt"
	"math"
)

// Item is one atomic candidate chunk of text: a concept definition, a
// page summary, a few-shot example. Items are immutable for the duration
// of a budgeting pass; the engine never mutates them, only selects,
// rejects, or derives a TruncatedItem from one.
//
// Token cost is not a field: it is always recomputed from Text by the
// run's counter so a stale cached cost can never leak into selection.
type Item struct {
	// ID is a stable opaque identifier, unique within a run.
	ID string

	// Text is the candidate content. Must be non-empty.
	Text string

	// Priority is in [0.0, 1.0], higher = more important. Ties are
	// broken by input order.
	Priority float64

	// Category is the caller-defined grouping label. Must be non-empty.
	// Categories are labels, not an enum: the engine is domain-agnostic.
	Category string
}

// Validate checks the item invariants.
func (it Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item has empty id")
	}
	if it.Text == "" {
		return fmt.Errorf("item %q has empty text", it.ID)
	}
	if it.Category == "" {
		return fmt.Errorf("item %q has empty category", it.ID)
	}
	if math.IsNaN(it.Priority) || math.IsInf(it.Priority, 0) {
		return fmt.Errorf("item %q has non-finite priority", it.ID)
	}
	if it.Priority < 0 || it.Priority > 1 {
		return fmt.Errorf("item %q has priority %v outside [0.0, 1.0]", it.ID, it.Priority)
	}
	return nil
}

// TruncatedItem is a derived, read-only view of an item shortened to fit
// remaining quota. Produced only by boundary resolution; never fed back
// into selection. No marker is embedded in Text; truncation metadata
// lives here so downstream renderers decide presentation.
type TruncatedItem struct {
	// OriginalID is the source item's ID.
	OriginalID string

	// Text is the retained leading prefix of the original text.
	Text string

	// TokenCost is the counter's estimate for the truncated text.
	TokenCost int

	// OriginalTokenCost is the counter's estimate for the full text.
	OriginalTokenCost int
}

// SelectedItem is one entry of the final selection: either a full item
// or a truncated view, tagged with its category and token cost.
type SelectedItem struct {
	// Category the entry was selected under.
	Category string

	// Item is set for fully accepted items, nil otherwise.
	Item *Item

	// Truncated is set for boundary items kept as a prefix, nil otherwise.
	Truncated *TruncatedItem

	// Tokens is the entry's token cost as counted during selection.
	Tokens int
}

// ID returns the underlying item's identifier.
func (s SelectedItem) ID() string {
	if s.Truncated != nil {
		return s.Truncated.OriginalID
	}
	return s.Item.ID
}

// Text returns the content that made it into the selection.
func (s SelectedItem) Text() string {
	if s.Truncated != nil {
		return s.Truncated.Text
	}
	return s.Item.Text
}

// IsTruncated reports whether the entry is a truncated view.
func (s SelectedItem) IsTruncated() bool {
	return s.Truncated != nil
}
