package tokens

// ContextWindows contains context window sizes for common models.
// Useful for sizing a document budget against the model that will
// consume the assembled output.
var ContextWindows = map[string]int{
	// Claude 4 models
	"claude-opus-4":   200000,
	"claude-sonnet-4": 200000,

	// Claude 3.5 models
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	// OpenAI models
	"gpt-4o":      128000,
	"gpt-4o-mini": 128000,
	"gpt-4.1":     128000,
	"o1":          128000,

	// Default fallback
	"default": 100000,
}

// ContextLimit returns the context window for a model, or a default if not found.
func ContextLimit(model string) int {
	if limit, ok := ContextWindows[model]; ok {
		return limit
	}
	return ContextWindows["default"]
}
