package diag

// Anti-pattern registry.
//
// Named documentation failure modes, each mapped to the automated check
// that detects it. Ids follow the pattern AP-{CATEGORY}-{NUMBER}.

// AntiPatternCategory classifies an anti-pattern by the damage it does.
type AntiPatternCategory string

const (
	// AntiPatternCritical patterns prevent LLM consumption entirely.
	AntiPatternCritical AntiPatternCategory = "critical"

	// AntiPatternStructural patterns break navigation.
	AntiPatternStructural AntiPatternCategory = "structural"

	// AntiPatternContent patterns degrade quality.
	AntiPatternContent AntiPatternCategory = "content"

	// AntiPatternStrategic patterns undermine long-term value.
	AntiPatternStrategic AntiPatternCategory = "strategic"
)

// AntiPatternID identifies an anti-pattern in the registry.
type AntiPatternID string

const (
	// Critical (4).
	APCrit001GhostFile        AntiPatternID = "AP-CRIT-001"
	APCrit002StructureChaos   AntiPatternID = "AP-CRIT-002"
	APCrit003EncodingDisaster AntiPatternID = "AP-CRIT-003"
	APCrit004LinkVoid         AntiPatternID = "AP-CRIT-004"

	// Structural (5).
	APStruct001SitemapDump       AntiPatternID = "AP-STRUCT-001"
	APStruct002OrphanedSections  AntiPatternID = "AP-STRUCT-002"
	APStruct003DuplicateIdentity AntiPatternID = "AP-STRUCT-003"
	APStruct004SectionShuffle    AntiPatternID = "AP-STRUCT-004"
	APStruct005NamingNebula      AntiPatternID = "AP-STRUCT-005"

	// Content (9).
	APCont001CopyPastePlague      AntiPatternID = "AP-CONT-001"
	APCont002BlankCanvas          AntiPatternID = "AP-CONT-002"
	APCont003JargonJungle         AntiPatternID = "AP-CONT-003"
	APCont004LinkDesert           AntiPatternID = "AP-CONT-004"
	APCont005OutdatedOracle       AntiPatternID = "AP-CONT-005"
	APCont006ExampleVoid          AntiPatternID = "AP-CONT-006"
	APCont007FormulaicDescription AntiPatternID = "AP-CONT-007"
	APCont008SilentAgent          AntiPatternID = "AP-CONT-008"
	APCont009VersionlessDrift     AntiPatternID = "AP-CONT-009"

	// Strategic (4).
	APStrat001AutomationObsession     AntiPatternID = "AP-STRAT-001"
	APStrat002MonolithMonster         AntiPatternID = "AP-STRAT-002"
	APStrat003MetaDocumentationSpiral AntiPatternID = "AP-STRAT-003"
	APStrat004PreferenceTrap          AntiPatternID = "AP-STRAT-004"
)

// AntiPattern is a registry entry: a named failure mode, its severity
// category, and the automated check rule that detects it.
type AntiPattern struct {
	ID          AntiPatternID
	Name        string
	Category    AntiPatternCategory
	CheckID     string
	Description string
}

// AntiPatterns is the complete anti-pattern registry, in id order.
var AntiPatterns = []AntiPattern{
	{APCrit001GhostFile, "Ghost File", AntiPatternCritical, "CHECK-001",
		"Empty or near-empty file that exists but provides no value"},
	{APCrit002StructureChaos, "Structure Chaos", AntiPatternCritical, "CHECK-002",
		"File lacks recognizable Markdown structure (no headers, no sections)"},
	{APCrit003EncodingDisaster, "Encoding Disaster", AntiPatternCritical, "CHECK-003",
		"Non-UTF-8 encoding or mixed line endings that break parsers"},
	{APCrit004LinkVoid, "Link Void", AntiPatternCritical, "CHECK-004",
		"All or most links are broken, empty, or malformed"},

	{APStruct001SitemapDump, "Sitemap Dump", AntiPatternStructural, "CHECK-005",
		"Entire sitemap dumped as flat link list with no organization"},
	{APStruct002OrphanedSections, "Orphaned Sections", AntiPatternStructural, "CHECK-006",
		"Sections with headers but no links or content"},
	{APStruct003DuplicateIdentity, "Duplicate Identity", AntiPatternStructural, "CHECK-007",
		"Multiple sections with identical or near-identical names"},
	{APStruct004SectionShuffle, "Section Shuffle", AntiPatternStructural, "CHECK-008",
		"Sections in illogical order (e.g., Advanced before Getting Started)"},
	{APStruct005NamingNebula, "Naming Nebula", AntiPatternStructural, "CHECK-009",
		"Section names that are vague, inconsistent, or non-standard"},

	{APCont001CopyPastePlague, "Copy-Paste Plague", AntiPatternContent, "CHECK-010",
		"Large blocks of content duplicated from other sources without curation"},
	{APCont002BlankCanvas, "Blank Canvas", AntiPatternContent, "CHECK-011",
		"Sections with placeholder text or no meaningful content"},
	{APCont003JargonJungle, "Jargon Jungle", AntiPatternContent, "CHECK-012",
		"Heavy use of domain jargon without definitions"},
	{APCont004LinkDesert, "Link Desert", AntiPatternContent, "CHECK-013",
		"Links without descriptions (bare URL lists)"},
	{APCont005OutdatedOracle, "Outdated Oracle", AntiPatternContent, "CHECK-014",
		"Content references deprecated or outdated information"},
	{APCont006ExampleVoid, "Example Void", AntiPatternContent, "CHECK-015",
		"No code examples despite being a technical project"},
	{APCont007FormulaicDescription, "Formulaic Description", AntiPatternContent, "CHECK-019",
		"Auto-generated descriptions with identical patterns (Mintlify risk)"},
	{APCont008SilentAgent, "Silent Agent", AntiPatternContent, "CHECK-020",
		"No LLM-facing guidance despite being an AI documentation file"},
	{APCont009VersionlessDrift, "Versionless Drift", AntiPatternContent, "CHECK-021",
		"No version or date metadata, impossible to assess freshness"},

	{APStrat001AutomationObsession, "Automation Obsession", AntiPatternStrategic, "CHECK-016",
		"Fully auto-generated with no human curation or review"},
	{APStrat002MonolithMonster, "Monolith Monster", AntiPatternStrategic, "CHECK-017",
		"Single file exceeding 100K tokens with no decomposition"},
	{APStrat003MetaDocumentationSpiral, "Meta-Documentation Spiral", AntiPatternStrategic, "CHECK-018",
		"File documents itself or the llms.txt standard rather than the project"},
	{APStrat004PreferenceTrap, "Preference Trap", AntiPatternStrategic, "CHECK-022",
		"Content crafted to manipulate LLM behavior (trust laundering)"},
}

var antiPatternsByID = func() map[AntiPatternID]AntiPattern {
	m := make(map[AntiPatternID]AntiPattern, len(AntiPatterns))
	for _, p := range AntiPatterns {
		m[p.ID] = p
	}
	return m
}()

// LookupAntiPattern returns the registry entry for an anti-pattern id.
func LookupAntiPattern(id AntiPatternID) (AntiPattern, bool) {
	p, ok := antiPatternsByID[id]
	return p, ok
}

// AntiPatternsInCategory returns the registry entries in a category, in
// registry order.
func AntiPatternsInCategory(category AntiPatternCategory) []AntiPattern {
	var out []AntiPattern
	for _, p := range AntiPatterns {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
