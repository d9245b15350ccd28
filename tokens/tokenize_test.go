package tokens_test

import (
	"testing"

	"github.com/lexora/lexora/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize_Basic splits on whitespace and keeps punctuation as
// standalone tokens by default.
func TestTokenize_Basic(t *testing.T) {
	s, err := tokens.Tokenize([]string{"It is a killer whale!"})
	require.NoError(t, err)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"It", "is", "a", "killer", "whale", "!"}, s.Words(0))
	assert.Equal(t, []string{"text1"}, s.Names())
}

// TestTokenize_Options exercises the filter pipeline: lower-casing,
// punctuation removal, number removal and stop-word removal.
func TestTokenize_Options(t *testing.T) {
	s, err := tokens.Tokenize(
		[]string{"The 2 killer Whales, the pod."},
		tokens.WithLower(),
		tokens.WithRemovePunct(),
		tokens.WithRemoveNumbers(),
		tokens.WithStopwords("the"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"killer", "whales", "pod"}, s.Words(0))
}

// TestTokenize_MinLength drops words below the rune threshold.
func TestTokenize_MinLength(t *testing.T) {
	s, err := tokens.Tokenize(
		[]string{"a an ant anthem"},
		tokens.WithMinLength(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ant", "anthem"}, s.Words(0))
}

// TestTokenize_EmptyDocument keeps a text with no surviving tokens as an
// empty document rather than dropping it.
func TestTokenize_EmptyDocument(t *testing.T) {
	s, err := tokens.Tokenize(
		[]string{"...", "whale"},
		tokens.WithRemovePunct(),
	)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Empty(t, s.Words(0))
	assert.Equal(t, []string{"whale"}, s.Words(1))
}

// TestTokenize_ZeroTexts: an empty corpus is a valid empty store.
func TestTokenize_ZeroTexts(t *testing.T) {
	s, err := tokens.Tokenize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Table().Len())
}

// TestTokenize_DocNames validates explicit names for count and uniqueness.
func TestTokenize_DocNames(t *testing.T) {
	_, err := tokens.Tokenize([]string{"a", "b"}, tokens.WithDocNames([]string{"only"}))
	assert.ErrorIs(t, err, tokens.ErrDocNameCount)

	_, err = tokens.Tokenize([]string{"a", "b"}, tokens.WithDocNames([]string{"x", "x"}))
	assert.ErrorIs(t, err, tokens.ErrDuplicateDocName)

	s, err := tokens.Tokenize([]string{"a", "b"}, tokens.WithDocNames([]string{"left", "right"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "right"}, s.Names())
}

// TestTokenize_SharedIdentifiers: the same word form in two documents
// receives one identifier.
func TestTokenize_SharedIdentifiers(t *testing.T) {
	s, err := tokens.Tokenize([]string{"whale whale", "whale song"})
	require.NoError(t, err)
	assert.Equal(t, s.IDs(0)[0], s.IDs(1)[0], "same type, same id across documents")
	assert.Equal(t, 2, s.Table().Len())
}
