package sections

import "strings"

// The 11 canonical section names, validated across 450+ llms.txt
// projects. Ordering follows the canonical 10-step sequence; Optional
// has no fixed position and always sorts last.
const (
	MasterIndex     = "Master Index"
	LLMInstructions = "LLM Instructions"
	GettingStarted  = "Getting Started"
	CoreConcepts    = "Core Concepts"
	APIReference    = "API Reference"
	Examples        = "Examples"
	Configuration   = "Configuration"
	AdvancedTopics  = "Advanced Topics"
	Troubleshooting = "Troubleshooting"
	FAQ             = "FAQ"
	Optional        = "Optional"
)

// Canonical lists the canonical section names in canonical order.
var Canonical = []string{
	MasterIndex,
	LLMInstructions,
	GettingStarted,
	CoreConcepts,
	APIReference,
	Examples,
	Configuration,
	AdvancedTopics,
	Troubleshooting,
	FAQ,
	Optional,
}

// Aliases maps common non-standard section names (lowercased) to their
// canonical equivalent, for normalization.
var Aliases = map[string]string{
	"table of contents":          MasterIndex,
	"toc":                        MasterIndex,
	"index":                      MasterIndex,
	"docs":                       MasterIndex,
	"documentation":              MasterIndex,
	"instructions":               LLMInstructions,
	"agent instructions":         LLMInstructions,
	"quickstart":                 GettingStarted,
	"quick start":                GettingStarted,
	"installation":               GettingStarted,
	"setup":                      GettingStarted,
	"concepts":                   CoreConcepts,
	"key concepts":               CoreConcepts,
	"fundamentals":               CoreConcepts,
	"api":                        APIReference,
	"reference":                  APIReference,
	"endpoints":                  APIReference,
	"usage":                      Examples,
	"use cases":                  Examples,
	"tutorials":                  Examples,
	"recipes":                    Examples,
	"config":                     Configuration,
	"settings":                   Configuration,
	"options":                    Configuration,
	"advanced":                   AdvancedTopics,
	"internals":                  AdvancedTopics,
	"debugging":                  Troubleshooting,
	"common issues":              Troubleshooting,
	"known issues":               Troubleshooting,
	"frequently asked questions": FAQ,
	"supplementary":              Optional,
	"appendix":                   Optional,
	"extras":                     Optional,
}

var canonicalByLower = func() map[string]string {
	m := make(map[string]string, len(Canonical))
	for _, name := range Canonical {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Normalize maps a section name (canonical, aliased, or arbitrarily
// cased) to its canonical form. The second return is false when the
// name is unrecognized; the input is returned unchanged in that case.
func Normalize(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := canonicalByLower[key]; ok {
		return canonical, true
	}
	if canonical, ok := Aliases[key]; ok {
		return canonical, true
	}
	return name, false
}

// canonicalOrder holds each section's position in the canonical
// sequence. Optional is deliberately absent: it is always last.
var canonicalOrder = map[string]int{
	MasterIndex:     1,
	LLMInstructions: 2,
	GettingStarted:  3,
	CoreConcepts:    4,
	APIReference:    5,
	Examples:        6,
	Configuration:   7,
	AdvancedTopics:  8,
	Troubleshooting: 9,
	FAQ:             10,
}

// OrderOf returns a section's position in the canonical sequence.
// Optional and unrecognized names sort after every positioned section.
func OrderOf(name string) int {
	canonical, _ := Normalize(name)
	if pos, ok := canonicalOrder[canonical]; ok {
		return pos
	}
	return len(canonicalOrder) + 1
}
