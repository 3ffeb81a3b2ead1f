package budget

import (
	"github.com/randalmurphal/docbudget/diag"
)

// CategoryUsage is one category's accounting in the final report.
type CategoryUsage struct {
	// Allotted is the category's final quota after reallocation.
	Allotted int

	// Used is the sum of token costs of the category's selected entries.
	Used int

	// ItemCount counts fully accepted items.
	ItemCount int

	// TruncatedCount counts truncated entries (0 or 1 per pass).
	TruncatedCount int
}

// Report is the engine's complete output: the ordered selection, the
// per-category accounting, explicit omissions, and warnings. Truncation,
// omission, and starvation are expected outcomes of a tight budget and
// live here as data, never as errors.
type Report struct {
	// Selected is the final ordered sequence: categories in
	// configuration order, items in selection order within a category.
	// The renderer walks this in order to assemble the document.
	Selected []SelectedItem

	// PerCategory maps category name to its accounting.
	PerCategory map[string]CategoryUsage

	// Omitted lists every item dropped entirely, with a reason code.
	Omitted []Omission

	// Diagnostics carries structured warnings.
	Diagnostics []diag.Diagnostic

	// Warnings is the human-readable rendering of Diagnostics.
	Warnings []string

	// TotalTokens is the sum of Used across categories. It never
	// exceeds the configured ceiling for a successfully produced report.
	TotalTokens int
}

// addDiagnostic appends a structured warning and its rendered form.
func (r *Report) addDiagnostic(d diag.Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	r.Warnings = append(r.Warnings, d.String())
}

// OmittedIDs returns the ids of all omitted items, in report order.
func (r *Report) OmittedIDs() []string {
	ids := make([]string, len(r.Omitted))
	for i, o := range r.Omitted {
		ids[i] = o.ID
	}
	return ids
}
