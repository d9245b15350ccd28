// SPDX-License-Identifier: MIT

package vocab

import "fmt"

// NewTable creates an empty Table.
// Complexity: O(1).
func NewTable() *Table {
	return &Table{
		types: make([]string, 0),
		index: make(map[string]TypeID),
	}
}

// FromTypes builds a Table whose identifiers follow the order of the given
// strings: types[i] receives id i. Returns ErrDuplicateType (wrapped with
// the offending string) if the slice contains a repeat.
// Complexity: O(len(types)).
func FromTypes(types []string) (*Table, error) {
	t := NewTable()
	for _, s := range types {
		if _, dup := t.index[s]; dup {
			return nil, fmt.Errorf("%q: %w", s, ErrDuplicateType)
		}
		t.index[s] = TypeID(len(t.types))
		t.types = append(t.types, s)
	}
	return t, nil
}

// Intern returns the identifier of s, assigning the next dense identifier
// and appending s to the arena if it was not seen before. Repeated calls
// with the same string always return the same identifier.
// Complexity: O(1) amortized.
func (t *Table) Intern(s string) TypeID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[s]; ok {
		return id
	}
	id := TypeID(len(t.types))
	t.types = append(t.types, s)
	t.index[s] = id
	return id
}

// ID returns the identifier previously assigned to s, or ErrTypeNotFound.
// Complexity: O(1).
func (t *Table) ID(s string) (TypeID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.index[s]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrTypeNotFound)
	}
	return id, nil
}

// Type returns the string owning identifier id, or ErrTypeNotFound for any
// id outside 0..Len()-1 (including Pad, which has no string form).
// Complexity: O(1).
func (t *Table) Type(id TypeID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.types) {
		return "", fmt.Errorf("id %d: %w", id, ErrTypeNotFound)
	}
	return t.types[id], nil
}

// Has reports whether s has been interned.
// Complexity: O(1).
func (t *Table) Has(s string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.index[s]
	return ok
}

// Len returns the number of distinct types in the table.
// Complexity: O(1).
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.types)
}

// Types returns a copy of the arena in identifier order, so Types()[id]
// is the string owning id. Mutating the returned slice does not affect
// the table.
// Complexity: O(Len).
func (t *Table) Types() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.types))
	copy(out, t.types)
	return out
}

// Clone returns an independent deep copy of the table.
// Complexity: O(Len).
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := &Table{
		types: make([]string, len(t.types)),
		index: make(map[string]TypeID, len(t.index)),
	}
	copy(c.types, t.types)
	for s, id := range t.index {
		c.index[s] = id
	}
	return c
}

// Merge interns every type of other into t and returns the remap table
// translating other's identifiers to t's. Types already present keep their
// existing identifier in t; new ones are appended, preserving other's
// relative order. The Pad marker maps to itself and is not part of the
// returned map.
//
// Merge is how two independently tokenized corpora are combined without
// identifier collisions: documents of the second corpus are rewritten
// through the remap before joining the first corpus's structures.
// Complexity: O(other.Len).
func (t *Table) Merge(other *Table) (map[TypeID]TypeID, error) {
	if other == nil {
		return nil, ErrNilTable
	}
	remap := make(map[TypeID]TypeID, other.Len())
	for id, s := range other.Types() {
		remap[TypeID(id)] = t.Intern(s)
	}
	return remap, nil
}
