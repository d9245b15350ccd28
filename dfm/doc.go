// Package dfm implements the sparse document-feature matrix: rows are
// documents, columns are features (types), cells are counts or weighted
// values.
//
// Storage is compressed sparse row: per-row ascending column indices,
// parallel value slice, no explicit zeros. These invariants are enforced
// at every mutating boundary, not just at construction. Row labels are
// document names in corpus order; column labels are feature strings,
// unique, ordered by first occurrence over the document scan.
//
// Build counts a tokens.Store; Select, Trim, Group and Weight derive new
// matrices without touching their input. Row count is invariant under
// Select, Trim and Weight, and changes only under Group (to the number of
// distinct grouping keys). A matrix of zero documents is a valid empty
// result everywhere, never an error.
//
// For interchange with external linear-algebra routines the matrix exports
// its labels plus a coordinate list of (row, col, value) triples, and can
// ingest the same triple form back via FromTriples. ToDense converts to a
// gonum mat.Dense for direct use in decomposition routines.
package dfm
