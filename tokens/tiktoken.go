package tokens

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when no model-specific
// encoding is available.
const DefaultEncoding = "cl100k_base"

// TiktokenCounter counts tokens exactly using a BPE encoding.
// It satisfies the same Counter contract as EstimatingCounter: BPE
// tokenization is deterministic, and appending text never shrinks the
// token sequence.
//
// Construction loads the encoding's vocabulary, which is comparatively
// expensive; build one counter and reuse it across calls.
type TiktokenCounter struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

// NewTiktokenCounter creates an exact counter for the named encoding
// (e.g. "cl100k_base", "o200k_base").
func NewTiktokenCounter(encoding string) (*TiktokenCounter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("get encoding %q: %w", encoding, err)
	}
	return &TiktokenCounter{encoding: encoding, enc: enc}, nil
}

// NewTiktokenCounterForModel creates an exact counter for a model name,
// falling back to cl100k_base when the model has no registered encoding.
// Encoding reports the resolved encoding name, not the model name.
func NewTiktokenCounterForModel(model string) (*TiktokenCounter, error) {
	return NewTiktokenCounter(encodingForModel(model))
}

// encodingForModel resolves a model name to its encoding name using the
// same exact-then-prefix lookup tiktoken itself performs.
func encodingForModel(model string) string {
	if encoding, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return encoding
	}
	for prefix, encoding := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) {
			return encoding
		}
	}
	return DefaultEncoding
}

// Encoding returns the name of the encoding backing this counter.
func (c *TiktokenCounter) Encoding() string {
	return c.encoding
}

// Count returns the exact number of tokens in the given text.
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.enc.Encode(text, nil, nil))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}
