// Package lexora is your in-memory toolkit for quantitative text analysis —
// from raw texts to sparse document-feature matrices ready for statistical
// modelling.
//
// 🚀 What is lexora?
//
//	A deterministic, pure-Go library that brings together:
//		• Interned vocabularies: dense integer ids, every string stored once
//		• Tokenized document stores: positional token sequences with padding
//		• Pattern resolution: fixed, glob, regex and multi-word phrases
//		• Sparse document-feature matrices: build, select, trim, group, weight
//		• Seed-word dictionaries: YAML concept lexicons mapped onto columns
//
// ✨ Why choose lexora?
//
//   - Functional transforms – every operation derives a new value, inputs stay intact
//   - Stable alignment – row and column order is deterministic and documented
//   - Pure Go – no cgo, no services, no persistence
//   - Interchange-ready – coordinate triples and gonum dense export for
//     external linear-algebra collaborators
//
// Under the hood, everything is organized under six subpackages:
//
//	vocab/     — interned type table: dense ids, merge/remap, the Pad marker
//	tokens/    — tokenization and token transforms (select, compound, stem, ngrams)
//	pattern/   — fixed/glob/regex/phrase resolution against vocabularies
//	dfm/       — sparse document-feature matrix and its derivations
//	dict/      — YAML seed-word dictionaries
//	stopwords/ — built-in stop-word lists
//
// Quick pipeline sketch:
//
//	texts ──tokens.Tokenize──▶ Store ──dfm.Build──▶ Matrix
//	                             │                    │
//	                      pattern.Resolve      Select/Trim/Weight
//	                             │                    │
//	                      Compound/Select      Triples/ToDense ─▶ your model
//
// Dive into the examples directory for complete scenarios: seed-dictionary
// classification and matrix export for document scaling.
//
//	go get github.com/lexora/lexora
package lexora
