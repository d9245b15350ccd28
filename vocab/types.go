// SPDX-License-Identifier: MIT

// Package vocab: domain types and sentinel errors.
// This file declares TypeID, the Pad marker and the Table container.
// All vocab APIs return the sentinels below; callers match via errors.Is.
package vocab

import (
	"errors"
	"sync"
)

// Sentinel errors for type-table operations.
var (
	// ErrTypeNotFound indicates a lookup referenced a string or identifier
	// that is not present in the table.
	ErrTypeNotFound = errors.New("vocab: type not found")

	// ErrDuplicateType indicates a pre-built type list contained the same
	// string twice; table entries must be unique.
	ErrDuplicateType = errors.New("vocab: duplicate type")

	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("vocab: nil table")
)

// TypeID identifies one distinct word form within a Table.
// Identifiers are dense: the i-th distinct string interned receives id i.
type TypeID int32

// Pad is the reserved padding marker. It stands for a token that was
// removed while its position was kept, so multi-word adjacency is not
// fabricated across the gap. Pad never resolves to a string and is never
// stored in a Table.
const Pad TypeID = -1

// Table is an append-only interned vocabulary.
//
// The zero value is not usable; construct with NewTable or FromTypes.
// mu guards both the arena slice and the reverse index; Intern takes the
// write lock, all queries take the read lock.
type Table struct {
	mu    sync.RWMutex
	types []string          // id → canonical string, dense 0..N-1
	index map[string]TypeID // canonical string → id
}
