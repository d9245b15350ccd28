// Package tokens implements the tokenized document store: per-document
// ordered sequences of type identifiers backed by a shared vocab.Table.
//
// Tokenize turns raw texts into a Store; every other operation derives a
// new Store from an existing one — inputs are never mutated in place,
// though the vocabulary table is shared and may be extended (compounding
// and stemming intern new word forms).
//
// The transforms are:
//
//   - Select   — keep or remove token sets, optionally leaving Pad markers
//     so phrase adjacency is not fabricated across deletion gaps.
//   - Compound — merge contiguous runs matching resolved phrases into a
//     single synthetic token.
//   - Stem     — Porter2 (snowball) English stemming.
//   - Ngrams   — adjacent token n-grams; pads break adjacency.
//
// All transforms preserve document count and order: a document whose
// tokens are all removed becomes an empty document, never a dropped one.
package tokens
