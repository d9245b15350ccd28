// SPDX-License-Identifier: MIT

package tokens

import (
	"fmt"

	"github.com/lexora/lexora/vocab"
)

// Table returns the vocabulary table shared by this store's documents.
func (s *Store) Table() *vocab.Table { return s.table }

// Len returns the number of documents.
func (s *Store) Len() int { return len(s.docs) }

// Names returns a copy of the document name list, in document order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// IDs returns a copy of document i's token identifier sequence, Pad
// markers included. An out-of-range index is an invariant violation (the
// caller holds a corrupted document reference) and panics.
func (s *Store) IDs(i int) []vocab.TypeID {
	s.check(i)
	out := make([]vocab.TypeID, len(s.docs[i]))
	copy(out, s.docs[i])
	return out
}

// Words returns document i's tokens as strings; Pad markers render as the
// empty string. Panics on an out-of-range index, like IDs.
func (s *Store) Words(i int) []string {
	s.check(i)
	out := make([]string, len(s.docs[i]))
	for j, id := range s.docs[i] {
		if id == vocab.Pad {
			continue // leave ""
		}
		w, err := s.table.Type(id)
		if err != nil {
			// A stored id missing from the table is internal corruption.
			panic(fmt.Sprintf("tokens: document %d references unknown type %d", i, id))
		}
		out[j] = w
	}
	return out
}

// check panics on an out-of-range document index.
func (s *Store) check(i int) {
	if i < 0 || i >= len(s.docs) {
		panic(fmt.Sprintf("tokens: document index %d out of range [0,%d)", i, len(s.docs)))
	}
}

// derive builds a new Store over the same table and names with fresh
// document content.
func (s *Store) derive(docs [][]vocab.TypeID) *Store {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &Store{table: s.table, docs: docs, names: names}
}
