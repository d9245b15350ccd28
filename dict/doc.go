// Package dict implements seed-word dictionaries: ordered keys, each
// carrying a list of glob patterns, used by downstream models to map
// concept lexicons onto the columns of a document-feature matrix.
//
// Dictionaries parse from the conventional YAML interchange form
//
//	economy: [econom*, inflation, market*]
//	military: [army, navy, war*]
//
// with key order preserved. Lookup resolves every key's patterns against a
// vocabulary; Apply collapses a matrix to one column per key by summing
// the matched feature columns.
package dict
