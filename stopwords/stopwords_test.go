package stopwords_test

import (
	"testing"

	"github.com/lexora/lexora/stopwords"
	"github.com/lexora/lexora/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnglish sanity-checks the list: non-empty, duplicate-free, and a
// returned copy that callers may mutate safely.
func TestEnglish(t *testing.T) {
	list := stopwords.English()
	require.NotEmpty(t, list)
	assert.Contains(t, list, "the")
	assert.Contains(t, list, "is")

	seen := make(map[string]struct{}, len(list))
	for _, w := range list {
		_, dup := seen[w]
		assert.False(t, dup, "duplicate %q", w)
		seen[w] = struct{}{}
	}

	list[0] = "mutated"
	assert.NotEqual(t, "mutated", stopwords.English()[0], "English must return a copy")
}

// TestEnglish_WithTokenize wires the list through the tokenizer option.
func TestEnglish_WithTokenize(t *testing.T) {
	s, err := tokens.Tokenize(
		[]string{"It is a killer whale"},
		tokens.WithLower(),
		tokens.WithStopwords(stopwords.English()...),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"killer", "whale"}, s.Words(0))
}
