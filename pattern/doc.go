// Package pattern resolves user-supplied matching specifications against a
// vocabulary, turning patterns into sets of type identifiers.
//
// Three single-word kinds are supported through one dispatch point:
//
//   - Fixed — exact string equality.
//   - Glob  — '*' matches zero or more characters, '?' exactly one.
//   - Regex — Go regular expressions, unanchored unless the pattern
//     anchors itself.
//
// A Phrase is an ordered sequence of sub-patterns, each resolved
// independently by the chosen kind; the resolved per-slot sets are what a
// compounding operation needs to merge a contiguous matching token run into
// a single synthetic token.
//
// Matching nothing is never an error: an empty pattern list resolves to an
// empty match set, and a pattern with no vocabulary hits simply contributes
// nothing. Only a malformed expression fails, with ErrMalformedPattern
// wrapped around the offending pattern text.
//
// Case-insensitive resolution normalizes both pattern and vocabulary entry
// to lower case before comparison; the underlying vocabulary is never
// mutated.
package pattern
