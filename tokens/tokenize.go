// SPDX-License-Identifier: MIT

package tokens

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lexora/lexora/vocab"
)

// Tokenize splits each text into word and punctuation tokens, applies the
// configured filters, and interns the survivors into a fresh vocab.Table.
//
// Splitting rules: maximal runs of letters/digits form word tokens; each
// punctuation or symbol rune is its own token; whitespace only separates.
// Filters run in order: case folding, punctuation removal, number removal,
// minimum length, stop-word removal. Texts with no surviving tokens yield
// empty documents, never omitted ones.
//
// Errors: ErrDocNameCount when WithDocNames length mismatches, and
// ErrDuplicateDocName (wrapped with the name) on repeated names.
// Complexity: O(total runes).
func Tokenize(texts []string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	names, err := docNames(len(texts), o.docNames)
	if err != nil {
		return nil, err
	}

	table := vocab.NewTable()
	docs := make([][]vocab.TypeID, len(texts))
	for d, text := range texts {
		doc := make([]vocab.TypeID, 0)
		for _, tok := range scan(text) {
			if o.lower {
				tok = lowerFold(tok)
			}
			if skip(tok, &o) {
				continue
			}
			doc = append(doc, table.Intern(tok))
		}
		docs[d] = doc
	}
	return &Store{table: table, docs: docs, names: names}, nil
}

// scan splits text into surface tokens without any filtering.
func scan(text string) []string {
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cur = append(cur, r)
		case unicode.IsSpace(r):
			flush()
		default:
			// Punctuation and symbols stand alone.
			flush()
			out = append(out, string(r))
		}
	}
	flush()
	return out
}

// skip reports whether a surface token is dropped by the configured
// filters.
func skip(tok string, o *options) bool {
	first, _ := firstRune(tok)
	isWord := unicode.IsLetter(first) || unicode.IsDigit(first)
	if o.removePunct && !isWord {
		return true
	}
	if o.removeNumbers && isNumber(tok) {
		return true
	}
	if o.minLen > 0 && isWord && runeLen(tok) < o.minLen {
		return true
	}
	if o.stopwords != nil {
		if _, stop := o.stopwords[lowerFold(tok)]; stop {
			return true
		}
	}
	return false
}

// docNames materializes the per-document name list, validating explicit
// names for count and uniqueness.
func docNames(n int, explicit []string) ([]string, error) {
	if explicit == nil {
		names := make([]string, n)
		for i := range names {
			names[i] = DefaultNamePrefix + strconv.Itoa(i+1)
		}
		return names, nil
	}
	if len(explicit) != n {
		return nil, fmt.Errorf("%d names for %d texts: %w", len(explicit), n, ErrDocNameCount)
	}
	seen := make(map[string]struct{}, n)
	names := make([]string, n)
	for i, name := range explicit {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateDocName)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}

func lowerFold(s string) string { return strings.ToLower(s) }

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
