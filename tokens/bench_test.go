package tokens_test

import (
	"strings"
	"testing"

	"github.com/lexora/lexora/tokens"
)

// benchCorpus builds n repetitive documents of w words each.
func benchCorpus(n, w int) []string {
	words := []string{"the", "killer", "whale", "hunts", "in", "cold", "water"}
	var sb strings.Builder
	for i := 0; i < w; i++ {
		sb.WriteString(words[i%len(words)])
		sb.WriteByte(' ')
	}
	doc := sb.String()
	texts := make([]string, n)
	for i := range texts {
		texts[i] = doc
	}
	return texts
}

// BenchmarkTokenize_Small tokenizes 100 documents of 100 words.
func BenchmarkTokenize_Small(b *testing.B) {
	texts := benchCorpus(100, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tokens.Tokenize(texts, tokens.WithLower()); err != nil {
			b.Fatalf("Tokenize failed: %v", err)
		}
	}
}

// BenchmarkTokenize_Large tokenizes 1000 documents of 500 words.
func BenchmarkTokenize_Large(b *testing.B) {
	texts := benchCorpus(1000, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tokens.Tokenize(texts, tokens.WithLower()); err != nil {
			b.Fatalf("Tokenize failed: %v", err)
		}
	}
}
