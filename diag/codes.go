package diag

// Diagnostic code catalog.
//
// The code format follows the pattern {SEVERITY_PREFIX}{NUMBER}:
//
//	E001-E008: Errors, structural failures that prevent valid parsing
//	W001-W011: Warnings, deviations from best practices
//	I001-I007: Informational, observations and suggestions
//	B001-B005: Budgeting, findings from the token-budget selection engine
const (
	// Structural errors.
	E001NoH1Title          Code = "E001"
	E002MultipleH1         Code = "E002"
	E003InvalidEncoding    Code = "E003"
	E004InvalidLineEndings Code = "E004"
	E005InvalidMarkdown    Code = "E005"
	E006BrokenLinks        Code = "E006"
	E007EmptyFile          Code = "E007"
	E008ExceedsSizeLimit   Code = "E008"

	// Quality warnings.
	W001MissingBlockquote         Code = "W001"
	W002NonCanonicalSectionName   Code = "W002"
	W003LinkMissingDescription    Code = "W003"
	W004NoCodeExamples            Code = "W004"
	W005CodeNoLanguage            Code = "W005"
	W006FormulaicDescriptions     Code = "W006"
	W007MissingVersionMetadata    Code = "W007"
	W008SectionOrderNonCanonical  Code = "W008"
	W009NoMasterIndex             Code = "W009"
	W010TokenBudgetExceeded       Code = "W010"
	W011EmptySections             Code = "W011"

	// Informational.
	I001NoLLMInstructions        Code = "I001"
	I002NoConceptDefinitions     Code = "I002"
	I003NoFewShotExamples        Code = "I003"
	I004RelativeURLsDetected     Code = "I004"
	I005Type2FullDetected        Code = "I005"
	I006OptionalSectionsUnmarked Code = "I006"
	I007JargonWithoutDefinition  Code = "I007"

	// Budgeting findings.
	B001CategoryStarved    Code = "B001"
	B002ItemExceedsBudget  Code = "B002"
	B003FloorsScaledDown   Code = "B003"
	B004ItemsOmitted       Code = "B004"
	B005ItemsTruncated     Code = "B005"
)

// Catalog is the complete diagnostic registry, in code order.
var Catalog = []Entry{
	{E001NoH1Title, SeverityError,
		"No H1 title found; every llms.txt file must begin with exactly one H1 title",
		"Add a single '# Title' as the first line of the file"},
	{E002MultipleH1, SeverityError,
		"Multiple H1 titles found; the spec requires exactly one H1",
		"Remove all but the first H1 title; use H2 for section headers"},
	{E003InvalidEncoding, SeverityError,
		"File is not valid UTF-8 encoding",
		"Convert the file to UTF-8 encoding and remove any BOM markers"},
	{E004InvalidLineEndings, SeverityError,
		"File uses non-LF line endings (CR or CRLF detected)",
		"Convert line endings to LF (Unix-style)"},
	{E005InvalidMarkdown, SeverityError,
		"File contains invalid Markdown syntax that prevents parsing",
		"Fix Markdown syntax errors; use a Markdown linter to identify issues"},
	{E006BrokenLinks, SeverityError,
		"Section contains links with empty or malformed URLs",
		"Fix or remove links with empty href values"},
	{E007EmptyFile, SeverityError,
		"File is empty or contains only whitespace",
		"Add content: at minimum an H1 title, a blockquote, and one H2 section"},
	{E008ExceedsSizeLimit, SeverityError,
		"File exceeds the maximum recommended size (>100K tokens)",
		"Decompose into a tiered file strategy (index + full + per-section files)"},

	{W001MissingBlockquote, SeverityWarning,
		"No blockquote description found after the H1 title",
		"Add a '> description' blockquote immediately after the H1 title"},
	{W002NonCanonicalSectionName, SeverityWarning,
		"Section name does not match any of the 11 canonical names",
		"Use canonical names where possible"},
	{W003LinkMissingDescription, SeverityWarning,
		"Link entry has no description text (bare URL only)",
		"Add a description after the link: '- [Title](url): Description'"},
	{W004NoCodeExamples, SeverityWarning,
		"File contains no code examples (no fenced code blocks found)",
		"Add code examples with language specifiers"},
	{W005CodeNoLanguage, SeverityWarning,
		"Code block found without a language specifier",
		"Add a language identifier after the opening triple backticks"},
	{W006FormulaicDescriptions, SeverityWarning,
		"Multiple sections use identical or near-identical description patterns",
		"Write unique, specific descriptions for each section"},
	{W007MissingVersionMetadata, SeverityWarning,
		"No version or last-updated metadata found in the file",
		"Add version metadata (e.g. 'Last updated: 2026-02-06')"},
	{W008SectionOrderNonCanonical, SeverityWarning,
		"Sections do not follow the canonical ordering",
		"Reorder sections to match the canonical sequence"},
	{W009NoMasterIndex, SeverityWarning,
		"No Master Index found as the first H2 section",
		"Add a Master Index as the first H2 section with navigation links"},
	{W010TokenBudgetExceeded, SeverityWarning,
		"File exceeds the recommended token budget for its tier",
		"Trim content to stay within the tier's token budget"},
	{W011EmptySections, SeverityWarning,
		"One or more sections contain no meaningful content",
		"Add content or remove empty sections; placeholders waste tokens"},

	{I001NoLLMInstructions, SeverityInfo,
		"No LLM Instructions section found",
		"Add an LLM Instructions section with positive/negative directives"},
	{I002NoConceptDefinitions, SeverityInfo,
		"No structured concept definitions found",
		"Add concept definitions with IDs, relationships, and aliases"},
	{I003NoFewShotExamples, SeverityInfo,
		"No few-shot Q&A examples found",
		"Add intent-tagged Q&A pairs linked to concepts"},
	{I004RelativeURLsDetected, SeverityInfo,
		"Relative URLs found in link entries",
		"Convert relative URLs to absolute or document the base URL"},
	{I005Type2FullDetected, SeverityInfo,
		"File classified as Type 2 Full (inline documentation dump)",
		"Consider creating a Type 1 Index companion file"},
	{I006OptionalSectionsUnmarked, SeverityInfo,
		"Optional sections not explicitly marked with token estimates",
		"Mark optional sections so consumers can skip them to save context"},
	{I007JargonWithoutDefinition, SeverityInfo,
		"Domain-specific jargon used without inline definition",
		"Define jargon inline or link to a concept definition"},

	{B001CategoryStarved, SeverityWarning,
		"Category had candidate items but none fit its final quota",
		"Raise the budget, raise the category's weight, or set a floor"},
	{B002ItemExceedsBudget, SeverityWarning,
		"Item is larger than the entire token budget and can never fit alone",
		"Split the item into smaller fragments or raise the budget"},
	{B003FloorsScaledDown, SeverityWarning,
		"Configured category floors exceed the budget and were scaled down",
		"Lower the floors or raise the budget so floors are affordable"},
	{B004ItemsOmitted, SeverityInfo,
		"Items were omitted to fit the budget",
		"See the report's omitted list for ids and reasons"},
	{B005ItemsTruncated, SeverityInfo,
		"Items were truncated to fit the budget",
		"See the report's per-category accounting for truncation counts"},
}

var catalogByCode = func() map[Code]Entry {
	m := make(map[Code]Entry, len(Catalog))
	for _, e := range Catalog {
		m[e.Code] = e
	}
	return m
}()

// Lookup returns the catalog entry for a code.
func Lookup(code Code) (Entry, bool) {
	e, ok := catalogByCode[code]
	return e, ok
}
