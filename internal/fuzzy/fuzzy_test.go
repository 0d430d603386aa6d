package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "exact match",
			a:        "london",
			b:        "london",
			expected: 100,
		},
		{
			name:     "substring of longer candidate",
			a:        "york",
			b:        "New York",
			expected: 100,
		},
		{
			name:     "case insensitive",
			a:        "LONDON",
			b:        "london",
			expected: 100,
		},
		{
			name:     "single edit in best window",
			a:        "londn",
			b:        "London",
			expected: 80,
		},
		{
			name:     "half the characters differ",
			a:        "abcd",
			b:        "abxy",
			expected: 50,
		},
		{
			name:     "empty query",
			a:        "",
			b:        "anything",
			expected: 100,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PartialRatio(tt.a, tt.b))
		})
	}
}

func TestPartialRatio_ArgumentOrder(t *testing.T) {
	// The shorter input is always the one slid across the longer, so the
	// score does not depend on argument order.
	assert.Equal(t, PartialRatio("york", "New York"), PartialRatio("New York", "york"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		expected  bool
	}{
		{
			name:      "partial name",
			query:     "Lond",
			candidate: "London",
			expected:  true,
		},
		{
			name:      "word inside candidate",
			query:     "YORK",
			candidate: "New York",
			expected:  true,
		},
		{
			name:      "misspelling within threshold",
			query:     "Londn",
			candidate: "London",
			expected:  true,
		},
		{
			name:      "unrelated name",
			query:     "Lond",
			candidate: "New York",
			expected:  false,
		},
		{
			name:      "too many edits",
			query:     "abcd",
			candidate: "abxy",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.query, tt.candidate))
		})
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Match("YORK", "New York"), Match("york", "new york"))
}
