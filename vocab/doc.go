// Package vocab implements the interned type table shared by every other
// layer of the library.
//
// A Table is an append-only arena of distinct word forms ("types"). Each
// type receives a dense integer identifier equal to its position of first
// insertion; the identifier is stable for the lifetime of the table and is
// never reused for a different string. Every other structure in the library
// (token stores, feature matrices, resolved pattern sets) holds only these
// integer identifiers, so equality checks are integer comparisons and no
// string is stored twice.
//
// The reserved Pad identifier marks a removed token whose position must be
// preserved, so that phrase adjacency is not falsely created across a
// deletion gap. Pad is never present in the table itself.
//
// Tables are safe for concurrent use: Intern is serialized under a write
// lock, lookups take a read lock.
package vocab
