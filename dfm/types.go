// SPDX-License-Identifier: MIT

// Package dfm: domain types and build/select/weight enums.
package dfm

// Matrix is a sparse document-feature matrix in compressed sparse row
// form.
//
// Invariants (enforced at every mutating boundary):
//   - len(rowPtr) == len(rowNames)+1; rowPtr is non-decreasing.
//   - colInd entries within one row are strictly ascending.
//   - values holds no explicit zeros.
//   - rowNames and colNames are duplicate-free.
//
// The zero value is not usable; construct with Build, FromTriples or a
// deriving operation.
type Matrix struct {
	rowNames []string
	colNames []string
	rowPtr   []int
	colInd   []int
	values   []float64
}

// Triple is one non-zero cell in coordinate-list form, the interchange
// format consumed and produced by external linear-algebra routines.
type Triple struct {
	Row   int
	Col   int
	Value float64
}

// Mode chooses between retaining and discarding matched columns.
type Mode int

const (
	// Keep retains only columns whose index is in the match set.
	Keep Mode = iota

	// Remove retains only columns whose index is not in the match set.
	Remove
)

// Scheme selects a cell re-weighting rule.
type Scheme int

const (
	// Count is the identity scheme: raw frequency counts.
	Count Scheme = iota

	// Boolean replaces every non-zero cell with 1.
	Boolean

	// Prop divides each cell by its document (row) total.
	Prop

	// PropMax divides each cell by its document (row) maximum.
	PropMax

	// IDF replaces each cell by the column's inverse document frequency,
	// log10(N/df). Columns present in every document weight to exactly
	// zero and their cells are dropped.
	IDF

	// TFIDF multiplies each cell by the column's inverse document
	// frequency.
	TFIDF
)

// String returns the scheme's name, for diagnostics.
func (s Scheme) String() string {
	switch s {
	case Count:
		return "count"
	case Boolean:
		return "boolean"
	case Prop:
		return "prop"
	case PropMax:
		return "propmax"
	case IDF:
		return "idf"
	case TFIDF:
		return "tfidf"
	default:
		return "unknown"
	}
}
