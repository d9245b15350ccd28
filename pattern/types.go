// SPDX-License-Identifier: MIT

// Package pattern: kinds, phrase types and sentinel errors.
package pattern

import (
	"errors"

	"github.com/lexora/lexora/vocab"
)

// Sentinel errors for pattern resolution.
var (
	// ErrMalformedPattern indicates an expression that could not be
	// compiled (invalid regular expression or glob syntax). The returned
	// error wraps this sentinel together with the offending pattern text.
	ErrMalformedPattern = errors.New("pattern: malformed pattern")

	// ErrUnknownKind indicates a Kind value outside the declared enum.
	ErrUnknownKind = errors.New("pattern: unknown pattern kind")
)

// Kind selects the matching semantics of a single-word pattern.
type Kind int

const (
	// Fixed matches by exact string equality.
	Fixed Kind = iota

	// Glob matches with '*' (zero or more characters) and '?' (exactly
	// one character) wildcards.
	Glob

	// Regex matches with Go regular expression syntax. The expression is
	// unanchored: it matches a vocabulary entry if it finds a match
	// anywhere in the string, unless the expression carries its own
	// anchors.
	Regex
)

// String returns the kind's name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// Phrase is an ordered sequence of sub-patterns that must match a
// contiguous run of tokens. Each element is resolved independently with
// the Kind passed to ResolvePhrases.
type Phrase []string

// Match holds the resolution of one Phrase: Slots[i] is the ascending set
// of type identifiers matching the i-th sub-pattern. A run of tokens
// t_0..t_{n-1} matches the phrase when n == len(Slots) and every t_i is a
// member of Slots[i]. An empty slot makes the phrase unmatchable, which is
// a valid (empty) result rather than an error.
type Match struct {
	Phrase Phrase
	Slots  [][]vocab.TypeID
}
