// Package diag defines the diagnostic code catalog for llms.txt tooling.
//
// Every finding references a stable Code with a severity level, a
// human-readable message, and a remediation hint. Codes follow the
// pattern {SEVERITY_PREFIX}{NUMBER}:
//
//	E001-E008: Errors, structural failures that prevent valid parsing
//	W001-W011: Warnings, deviations from best practices
//	I001-I007: Informational, observations and suggestions
//	B001-B005: Budgeting, findings from the selection engine
//
// Diagnostics are plain data, never exceptions: the engine returns them
// in its report and the caller decides presentation.
//
// The package also carries the anti-pattern registry: 22 named
// documentation failure modes across four severity categories, each
// mapped to the automated check that detects it. See AntiPatterns and
// LookupAntiPattern.
//
//	d := diag.Newf(diag.B001CategoryStarved, "category %q", "examples")
//	fmt.Println(d.String())
//	// [B001] Category had candidate items but none fit its final quota: category "examples" (...)
package diag
