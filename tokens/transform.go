// SPDX-License-Identifier: MIT

// Package tokens: functional transforms deriving new stores.
// Every transform returns a new Store; the receiver is left untouched.
// The shared vocabulary table may grow (Compound, Stem, Ngrams intern new
// word forms), never shrink.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/lexora/lexora/pattern"
	"github.com/lexora/lexora/vocab"
)

// Select derives a store retaining (Keep) or discarding (Remove) the
// tokens whose identifier is in matches. With padding=true a discarded
// token leaves a vocab.Pad marker in place, so later phrase matching does
// not see false adjacency across the gap; with padding=false the gap
// closes. Document count and order are always preserved — a fully emptied
// document stays as an empty document.
// Complexity: O(total tokens + len(matches)).
func (s *Store) Select(matches []vocab.TypeID, mode SelectMode, padding bool) (*Store, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	if mode != Keep && mode != Remove {
		return nil, fmt.Errorf("mode %d: %w", mode, ErrUnknownMode)
	}
	set := make(map[vocab.TypeID]struct{}, len(matches))
	for _, id := range matches {
		set[id] = struct{}{}
	}

	docs := make([][]vocab.TypeID, len(s.docs))
	for d, doc := range s.docs {
		out := make([]vocab.TypeID, 0, len(doc))
		for _, id := range doc {
			retain := id == vocab.Pad // existing pads survive both modes
			if !retain {
				_, hit := set[id]
				retain = (mode == Keep) == hit
			}
			switch {
			case retain:
				out = append(out, id)
			case padding:
				out = append(out, vocab.Pad)
			}
		}
		docs[d] = out
	}
	return s.derive(docs), nil
}

// Compound derives a store in which every contiguous token run matching a
// resolved phrase is replaced by one synthetic token: the run's surface
// forms joined with sep (DefaultSeparator when sep is empty), interned
// into the shared table. Matching is greedy left-to-right, longest phrase
// first; pads never participate in a run. Non-matching tokens are copied
// unchanged, positions shifting accordingly.
// Complexity: O(total tokens · len(matches)) slot probes.
func (s *Store) Compound(matches []pattern.Match, sep string) (*Store, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	var phrases []compiledPhrase
	for _, m := range matches {
		if len(m.Slots) == 0 {
			continue
		}
		c := compiledPhrase{slots: make([]map[vocab.TypeID]struct{}, len(m.Slots))}
		usable := true
		for i, slot := range m.Slots {
			if len(slot) == 0 {
				usable = false // one empty slot makes the phrase unmatchable
				break
			}
			c.slots[i] = make(map[vocab.TypeID]struct{}, len(slot))
			for _, id := range slot {
				c.slots[i][id] = struct{}{}
			}
		}
		if usable {
			phrases = append(phrases, c)
		}
	}
	// Longest phrase wins at a shared start position.
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i].slots) > len(phrases[j].slots)
	})

	docs := make([][]vocab.TypeID, len(s.docs))
	for d, doc := range s.docs {
		out := make([]vocab.TypeID, 0, len(doc))
		for i := 0; i < len(doc); {
			n := runLength(doc, i, phrases)
			if n == 0 {
				out = append(out, doc[i])
				i++
				continue
			}
			parts := make([]string, n)
			for j := 0; j < n; j++ {
				w, err := s.table.Type(doc[i+j])
				if err != nil {
					panic(fmt.Sprintf("tokens: document %d references unknown type %d", d, doc[i+j]))
				}
				parts[j] = w
			}
			out = append(out, s.table.Intern(strings.Join(parts, sep)))
			i += n
		}
		docs[d] = out
	}
	return s.derive(docs), nil
}

// compiledPhrase is a phrase match with per-slot membership sets, the form
// the inner compounding loop probes.
type compiledPhrase struct {
	slots []map[vocab.TypeID]struct{}
}

// runLength returns the length of the longest phrase matching at position
// i of doc, or 0 when none matches. phrases must be sorted longest first.
func runLength(doc []vocab.TypeID, i int, phrases []compiledPhrase) int {
	for _, p := range phrases {
		n := len(p.slots)
		if i+n > len(doc) {
			continue
		}
		ok := true
		for j := 0; j < n; j++ {
			id := doc[i+j]
			if id == vocab.Pad {
				ok = false
				break
			}
			if _, hit := p.slots[j][id]; !hit {
				ok = false
				break
			}
		}
		if ok {
			return n
		}
	}
	return 0
}

// Stem derives a store whose word tokens are replaced by their Porter2
// (snowball) English stems, interned into the shared table. Pads and
// tokens the stemmer leaves unchanged keep their identifiers.
// Complexity: O(total tokens).
func (s *Store) Stem() (*Store, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	cache := make(map[vocab.TypeID]vocab.TypeID)
	docs := make([][]vocab.TypeID, len(s.docs))
	for d, doc := range s.docs {
		out := make([]vocab.TypeID, len(doc))
		for j, id := range doc {
			if id == vocab.Pad {
				out[j] = vocab.Pad
				continue
			}
			stemmed, ok := cache[id]
			if !ok {
				w, err := s.table.Type(id)
				if err != nil {
					panic(fmt.Sprintf("tokens: document %d references unknown type %d", d, id))
				}
				stemmed = s.table.Intern(snowballeng.Stem(w, false))
				cache[id] = stemmed
			}
			out[j] = stemmed
		}
		docs[d] = out
	}
	return s.derive(docs), nil
}

// Ngrams derives a store of adjacent n-token grams, joined with sep
// (DefaultSeparator when empty) and interned. A Pad marker breaks
// adjacency: no gram spans a pad, mirroring phrase-matching semantics.
// n == 1 returns the word tokens with pads dropped. Documents shorter
// than n become empty documents.
// Complexity: O(total tokens · n).
func (s *Store) Ngrams(n int, sep string) (*Store, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadNgramSize)
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	docs := make([][]vocab.TypeID, len(s.docs))
	for d, doc := range s.docs {
		out := make([]vocab.TypeID, 0)
		for i := 0; i+n <= len(doc); i++ {
			parts := make([]string, 0, n)
			for j := 0; j < n; j++ {
				id := doc[i+j]
				if id == vocab.Pad {
					parts = nil
					break
				}
				w, err := s.table.Type(id)
				if err != nil {
					panic(fmt.Sprintf("tokens: document %d references unknown type %d", d, id))
				}
				parts = append(parts, w)
			}
			if parts == nil {
				continue
			}
			out = append(out, s.table.Intern(strings.Join(parts, sep)))
		}
		docs[d] = out
	}
	return s.derive(docs), nil
}
