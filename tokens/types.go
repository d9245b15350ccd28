// SPDX-License-Identifier: MIT

// Package tokens: domain types, options and sentinel errors.
package tokens

import (
	"errors"

	"github.com/lexora/lexora/vocab"
)

// Sentinel errors for store construction and transforms.
var (
	// ErrDocNameCount indicates WithDocNames supplied a name list whose
	// length differs from the number of texts.
	ErrDocNameCount = errors.New("tokens: document name count mismatch")

	// ErrDuplicateDocName indicates two documents carry the same name;
	// names are row labels downstream and must be unique.
	ErrDuplicateDocName = errors.New("tokens: duplicate document name")

	// ErrUnknownMode indicates a SelectMode outside the declared enum.
	ErrUnknownMode = errors.New("tokens: unknown select mode")

	// ErrBadNgramSize indicates Ngrams was called with n < 1.
	ErrBadNgramSize = errors.New("tokens: ngram size must be >= 1")

	// ErrNilStore indicates a nil *Store receiver.
	ErrNilStore = errors.New("tokens: nil store")
)

// DEFAULTS — single source of truth for tokenization behavior.
const (
	// DefaultNamePrefix names documents text1, text2, ... when no explicit
	// names are given.
	DefaultNamePrefix = "text"

	// DefaultSeparator joins the parts of synthetic tokens produced by
	// Compound and Ngrams when the caller passes an empty separator.
	DefaultSeparator = "_"
)

// SelectMode chooses between retaining and discarding matched tokens.
type SelectMode int

const (
	// Keep retains only tokens whose identifier is in the match set.
	Keep SelectMode = iota

	// Remove retains only tokens whose identifier is not in the match set.
	Remove
)

// Store is an ordered collection of tokenized documents sharing one
// vocabulary table. Documents are sequences of vocab.TypeID and may
// contain vocab.Pad markers. Transforms return new Stores; the table is
// shared between input and output.
type Store struct {
	table *vocab.Table
	docs  [][]vocab.TypeID
	names []string
}

// Option configures Tokenize.
type Option func(*options)

// options is the gathered tokenization configuration. Fields are
// unexported; public APIs consume ...Option.
type options struct {
	lower         bool
	removePunct   bool
	removeNumbers bool
	minLen        int
	stopwords     map[string]struct{}
	docNames      []string
}

func defaultOptions() options {
	return options{}
}

// WithLower folds every token to lower case before interning.
func WithLower() Option {
	return func(o *options) { o.lower = true }
}

// WithRemovePunct drops punctuation and symbol tokens.
func WithRemovePunct() Option {
	return func(o *options) { o.removePunct = true }
}

// WithRemoveNumbers drops tokens consisting entirely of digits.
func WithRemoveNumbers() Option {
	return func(o *options) { o.removeNumbers = true }
}

// WithMinLength drops tokens shorter than n runes. n < 1 is a programmer
// error and panics.
func WithMinLength(n int) Option {
	if n < 1 {
		panic("tokens: WithMinLength requires n >= 1")
	}
	return func(o *options) { o.minLen = n }
}

// WithStopwords drops every token equal (case-folded) to an entry of the
// given list. See the stopwords package for built-in lists.
func WithStopwords(words ...string) Option {
	return func(o *options) {
		if o.stopwords == nil {
			o.stopwords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.stopwords[lowerFold(w)] = struct{}{}
		}
	}
}

// WithDocNames assigns explicit document names; the list length must equal
// the number of texts passed to Tokenize.
func WithDocNames(names []string) Option {
	return func(o *options) { o.docNames = names }
}
