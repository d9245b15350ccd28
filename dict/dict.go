// SPDX-License-Identifier: MIT

package dict

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lexora/lexora/dfm"
	"github.com/lexora/lexora/pattern"
	"github.com/lexora/lexora/vocab"
)

// Sentinel errors for dictionary construction.
var (
	// ErrDuplicateKey indicates the same dictionary key appeared twice.
	ErrDuplicateKey = errors.New("dict: duplicate key")

	// ErrBadFormat indicates YAML that does not parse as a mapping of
	// keys to pattern lists (or single pattern scalars).
	ErrBadFormat = errors.New("dict: invalid dictionary format")
)

// Entry is one dictionary key with its glob patterns.
type Entry struct {
	Key      string
	Patterns []string
}

// Dictionary is an ordered set of entries. Construct with New or
// FromYAML; the zero value is an empty dictionary.
type Dictionary struct {
	entries []Entry
}

// New builds a dictionary from entries, rejecting duplicate keys.
func New(entries ...Entry) (*Dictionary, error) {
	seen := make(map[string]struct{}, len(entries))
	d := &Dictionary{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			return nil, fmt.Errorf("%q: %w", e.Key, ErrDuplicateKey)
		}
		seen[e.Key] = struct{}{}
		patterns := make([]string, len(e.Patterns))
		copy(patterns, e.Patterns)
		d.entries = append(d.entries, Entry{Key: e.Key, Patterns: patterns})
	}
	return d, nil
}

// FromYAML parses the conventional dictionary interchange form: a mapping
// of key to pattern list (a single scalar is accepted as a one-pattern
// list). Key order in the document is preserved. Malformed YAML or a
// non-mapping document returns ErrBadFormat wrapped with detail.
func FromYAML(data []byte) (*Dictionary, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadFormat)
	}
	if len(root.Content) == 0 {
		return New()
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping: %w", ErrBadFormat)
	}

	entries := make([]Entry, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valNode := doc.Content[i], doc.Content[i+1]
		e := Entry{Key: keyNode.Value}
		switch valNode.Kind {
		case yaml.ScalarNode:
			e.Patterns = []string{valNode.Value}
		case yaml.SequenceNode:
			for _, p := range valNode.Content {
				if p.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("key %q: nested pattern: %w", e.Key, ErrBadFormat)
				}
				e.Patterns = append(e.Patterns, p.Value)
			}
		default:
			return nil, fmt.Errorf("key %q: patterns must be a list: %w", e.Key, ErrBadFormat)
		}
		entries = append(entries, e)
	}
	return New(entries...)
}

// Len returns the number of keys.
func (d *Dictionary) Len() int { return len(d.entries) }

// Keys returns the dictionary keys in document order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Key
	}
	return out
}

// Entries returns a deep copy of the entries in document order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{Key: e.Key, Patterns: append([]string(nil), e.Patterns...)}
	}
	return out
}

// Lookup resolves every key's patterns (glob kind) against the given
// vocabulary and returns the per-key identifier sets; Keys() gives the
// iteration order. Keys matching nothing map to empty sets.
func (d *Dictionary) Lookup(types []string, caseInsensitive bool) (map[string][]vocab.TypeID, error) {
	out := make(map[string][]vocab.TypeID, len(d.entries))
	for _, e := range d.entries {
		ids, err := pattern.Resolve(e.Patterns, types, pattern.Glob, caseInsensitive)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		out[e.Key] = ids
	}
	return out, nil
}

// Apply collapses the matrix to one column per dictionary key, in key
// order: each cell is the sum of the row's values over the key's matched
// feature columns. Features matched by several keys count toward each.
// Row labels and row count are preserved.
func (d *Dictionary) Apply(m *dfm.Matrix, caseInsensitive bool) (*dfm.Matrix, error) {
	if m == nil {
		return nil, dfm.ErrNilMatrix
	}
	lookup, err := d.Lookup(m.ColNames(), caseInsensitive)
	if err != nil {
		return nil, err
	}

	// Feature column → dictionary columns it feeds.
	feeds := make(map[int][]int)
	for kc, e := range d.entries {
		for _, id := range lookup[e.Key] {
			feeds[int(id)] = append(feeds[int(id)], kc)
		}
	}

	acc := make(map[[2]int]float64)
	for _, t := range m.Triples() {
		for _, kc := range feeds[t.Col] {
			acc[[2]int{t.Row, kc}] += t.Value
		}
	}
	triples := make([]dfm.Triple, 0, len(acc))
	for rc, v := range acc {
		triples = append(triples, dfm.Triple{Row: rc[0], Col: rc[1], Value: v})
	}
	return dfm.FromTriples(m.RowNames(), d.Keys(), triples)
}
