package diag

import "fmt"

// Severity classifies a diagnostic finding.
type Severity string

const (
	// SeverityError marks structural failures that prevent valid parsing
	// or break spec conformance.
	SeverityError Severity = "ERROR"

	// SeverityWarning marks deviations from best practices that degrade
	// quality but do not break parsing.
	SeverityWarning Severity = "WARNING"

	// SeverityInfo marks non-blocking observations and suggestions.
	SeverityInfo Severity = "INFO"
)

// Code is a stable diagnostic identifier, e.g. "W010".
type Code string

// Entry is a catalog record: a code with its severity, message template,
// and remediation hint.
type Entry struct {
	Code        Code
	Severity    Severity
	Message     string
	Remediation string
}

// Diagnostic is a concrete finding: a catalog entry plus the context it
// was raised in. Diagnostics are plain data; the caller decides whether
// and how to present them.
type Diagnostic struct {
	Code        Code
	Severity    Severity
	Message     string
	Remediation string

	// Context carries run-specific detail, e.g. the category or item
	// the finding applies to. May be empty.
	Context string
}

// New builds a Diagnostic from the catalog entry for code. Unknown codes
// produce a generic warning so a missing catalog entry never panics a run.
func New(code Code, context string) Diagnostic {
	entry, ok := Lookup(code)
	if !ok {
		return Diagnostic{
			Code:     code,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("diagnostic %s", code),
			Context:  context,
		}
	}
	return Diagnostic{
		Code:        entry.Code,
		Severity:    entry.Severity,
		Message:     entry.Message,
		Remediation: entry.Remediation,
		Context:     context,
	}
}

// Newf builds a Diagnostic with a formatted context string.
func Newf(code Code, format string, args ...any) Diagnostic {
	return New(code, fmt.Sprintf(format, args...))
}

// String renders the diagnostic in the severity + code + message +
// remediation form used by CLI output.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	if d.Context != "" {
		s += ": " + d.Context
	}
	if d.Remediation != "" {
		s += " (remediation: " + d.Remediation + ")"
	}
	return s
}
