package tokens

import (
	"strings"
	"testing"
)

func TestNewEstimatingCounter(t *testing.T) {
	c := NewEstimatingCounter()

	if c.CharsPerToken != DefaultCharsPerToken {
		t.Errorf("expected CharsPerToken %v, got %v", DefaultCharsPerToken, c.CharsPerToken)
	}
}

func TestNewEstimatingCounterWithRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{
			name:     "custom ratio",
			ratio:    3.0,
			expected: 3.0,
		},
		{
			name:     "zero ratio uses default",
			ratio:    0,
			expected: DefaultCharsPerToken,
		},
		{
			name:     "negative ratio uses default",
			ratio:    -1,
			expected: DefaultCharsPerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCounterWithRatio(tt.ratio)
			if c.CharsPerToken != tt.expected {
				t.Errorf("expected CharsPerToken %v, got %v", tt.expected, c.CharsPerToken)
			}
		})
	}
}

func TestEstimatingCounter_Count(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "empty string",
			text:     "",
			expected: 0,
		},
		{
			name:     "single char rounds up",
			text:     "a",
			expected: 1,
		},
		{
			name:     "exactly four chars",
			text:     "abcd",
			expected: 1,
		},
		{
			name:     "five chars rounds up",
			text:     "abcde",
			expected: 2,
		},
		{
			name:     "forty chars",
			text:     strings.Repeat("x", 40),
			expected: 10,
		},
		{
			name:     "multibyte runes counted as runes",
			text:     "日本語テスト", // 6 runes, not 18 bytes
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Count(tt.text); got != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestEstimatingCounter_CountMonotonic(t *testing.T) {
	// Appending characters must never lower the estimate.
	c := NewEstimatingCounter()

	text := ""
	prev := 0
	for i := 0; i < 200; i++ {
		text += "a"
		got := c.Count(text)
		if got < prev {
			t.Fatalf("Count decreased from %d to %d at length %d", prev, got, len(text))
		}
		prev = got
	}
}

func TestEstimatingCounter_FitsInLimit(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		limit    int
		expected bool
	}{
		{
			name:     "fits comfortably",
			text:     "hello",
			limit:    100,
			expected: true,
		},
		{
			name:     "fits exactly",
			text:     strings.Repeat("x", 40),
			limit:    10,
			expected: true,
		},
		{
			name:     "does not fit",
			text:     strings.Repeat("x", 44),
			limit:    10,
			expected: false,
		},
		{
			name:     "empty fits zero limit",
			text:     "",
			limit:    0,
			expected: true,
		},
		{
			name:     "non-empty misses zero limit",
			text:     "a",
			limit:    0,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FitsInLimit(tt.text, tt.limit); got != tt.expected {
				t.Errorf("FitsInLimit(%q, %d) = %v, expected %v", tt.text, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens("Hello, world!"); got != 4 {
		t.Errorf("EstimateTokens = %d, expected 4", got)
	}
}

func TestContextLimit(t *testing.T) {
	if got := ContextLimit("claude-opus-4"); got != 200000 {
		t.Errorf("ContextLimit(claude-opus-4) = %d, expected 200000", got)
	}
	if got := ContextLimit("no-such-model"); got != 100000 {
		t.Errorf("ContextLimit(no-such-model) = %d, expected default 100000", got)
	}
}
