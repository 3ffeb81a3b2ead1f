package truncate

// ToTokens truncates text to at most maxTokens using the default
// estimating counter and no suffix marker.
func ToTokens(text string, maxTokens int) string {
	result, _ := New().Prefix(text, maxTokens)
	return result
}

// ToTokensMarked truncates text to at most maxTokens, appending the
// default "..." marker when truncation occurs.
func ToTokensMarked(text string, maxTokens int) string {
	result, _ := New().WithSuffix(DefaultSuffix).Prefix(text, maxTokens)
	return result
}
