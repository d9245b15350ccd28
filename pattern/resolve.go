// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/lexora/lexora/vocab"
)

// matcher is the compiled form of one single-word pattern. Implementations
// are pure predicates over a vocabulary entry; the case-insensitive flag is
// burnt in at compile time.
type matcher interface {
	match(entry string) bool
}

type fixedMatcher struct {
	want string
	fold bool
}

func (m fixedMatcher) match(entry string) bool {
	if m.fold {
		return strings.ToLower(entry) == m.want
	}
	return entry == m.want
}

type globMatcher struct {
	g    glob.Glob
	fold bool
}

func (m globMatcher) match(entry string) bool {
	if m.fold {
		entry = strings.ToLower(entry)
	}
	return m.g.Match(entry)
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) match(entry string) bool {
	return m.re.MatchString(entry)
}

// compile builds the matcher for a single pattern under the given kind.
// Compilation failures wrap ErrMalformedPattern with the offending text.
func compile(p string, kind Kind, caseInsensitive bool) (matcher, error) {
	switch kind {
	case Fixed:
		want := p
		if caseInsensitive {
			want = strings.ToLower(want)
		}
		return fixedMatcher{want: want, fold: caseInsensitive}, nil
	case Glob:
		src := p
		if caseInsensitive {
			src = strings.ToLower(src)
		}
		g, err := glob.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %v: %w", p, err, ErrMalformedPattern)
		}
		return globMatcher{g: g, fold: caseInsensitive}, nil
	case Regex:
		src := p
		if caseInsensitive {
			src = "(?i)" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %v: %w", p, err, ErrMalformedPattern)
		}
		return regexMatcher{re: re}, nil
	default:
		return nil, fmt.Errorf("kind %d: %w", kind, ErrUnknownKind)
	}
}

// resolveOne scans the vocabulary with a compiled matcher and collects the
// matching identifiers in ascending order.
func resolveOne(m matcher, types []string) []vocab.TypeID {
	var ids []vocab.TypeID
	for i, entry := range types {
		if m.match(entry) {
			ids = append(ids, vocab.TypeID(i))
		}
	}
	return ids
}

// Resolve compiles every pattern under the given kind and returns the union
// of their vocabulary matches as a deduplicated, ascending identifier set.
//
// An empty pattern list resolves to an empty set; patterns matching nothing
// contribute nothing. The only failure mode is a pattern that does not
// compile (ErrMalformedPattern, or ErrUnknownKind for an invalid kind).
// Complexity: O(len(patterns) · len(types)) matcher probes.
func Resolve(patterns []string, types []string, kind Kind, caseInsensitive bool) ([]vocab.TypeID, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	seen := make(map[vocab.TypeID]struct{})
	var ids []vocab.TypeID
	for _, p := range patterns {
		m, err := compile(p, kind, caseInsensitive)
		if err != nil {
			return nil, err
		}
		for _, id := range resolveOne(m, types) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// ResolvePhrases resolves each phrase sub-pattern independently and returns
// one Match per phrase, preserving input order. Phrases with an unmatchable
// slot are still returned (with the empty slot), so callers can distinguish
// "resolved to nothing" from "malformed".
// Complexity: O(total sub-patterns · len(types)).
func ResolvePhrases(phrases []Phrase, types []string, kind Kind, caseInsensitive bool) ([]Match, error) {
	matches := make([]Match, 0, len(phrases))
	for _, ph := range phrases {
		m := Match{Phrase: ph, Slots: make([][]vocab.TypeID, len(ph))}
		for i, sub := range ph {
			cm, err := compile(sub, kind, caseInsensitive)
			if err != nil {
				return nil, err
			}
			m.Slots[i] = resolveOne(cm, types)
		}
		matches = append(matches, m)
	}
	return matches, nil
}
