// SPDX-License-Identifier: MIT

// Package dfm: column selection, trimming and row grouping.
// All three derive a new Matrix; the receiver is never mutated. Row count
// is preserved by Select and Trim and changes only under Group.
package dfm

import (
	"fmt"
	"math"

	"github.com/lexora/lexora/vocab"
)

// Select derives a matrix retaining (Keep) or discarding (Remove) the
// columns whose index is in matches. Matches are indices into ColNames,
// exactly what pattern.Resolve returns when resolved against that list.
// Row labels and row count are untouched; a row losing all its cells
// becomes an all-zero row.
//
// A match index outside the column range is an invariant violation — the
// resolver can only produce in-range indices — and panics.
// Complexity: O(cols + nnz).
func (m *Matrix) Select(matches []vocab.TypeID, mode Mode) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if mode != Keep && mode != Remove {
		return nil, fmt.Errorf("mode %d: %w", mode, ErrUnknownMode)
	}
	matched := make([]bool, len(m.colNames))
	for _, id := range matches {
		if id < 0 || int(id) >= len(m.colNames) {
			panic(fmt.Sprintf("dfm: match index %d out of column range [0,%d)", id, len(m.colNames)))
		}
		matched[id] = true
	}
	keep := make([]bool, len(m.colNames))
	for c := range keep {
		keep[c] = matched[c] == (mode == Keep)
	}
	return m.subsetCols(keep), nil
}

// TrimOptions bounds per-column aggregates. Zero-value minima disable the
// lower bounds; DefaultTrimOptions disables the upper bounds too.
type TrimOptions struct {
	// MinTermFreq / MaxTermFreq bound the column's total count across all
	// documents.
	MinTermFreq float64
	MaxTermFreq float64

	// MinDocFreq / MaxDocFreq bound the number of documents in which the
	// column is non-zero.
	MinDocFreq int
	MaxDocFreq int
}

// DefaultTrimOptions returns options that keep every column.
func DefaultTrimOptions() TrimOptions {
	return TrimOptions{
		MaxTermFreq: math.Inf(1),
		MaxDocFreq:  math.MaxInt,
	}
}

// Trim derives a matrix dropping every column whose aggregates fall
// outside the configured bounds. Aggregates are recomputed from the
// current cells at call time, never cached from an earlier pass. Row
// labels and row count are untouched.
//
// Returns ErrBadThreshold for negative or inverted bounds.
// Complexity: O(cols + nnz).
func (m *Matrix) Trim(opts TrimOptions) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if opts.MinTermFreq < 0 || opts.MinDocFreq < 0 {
		return nil, fmt.Errorf("negative minimum: %w", ErrBadThreshold)
	}
	if opts.MaxTermFreq < opts.MinTermFreq || opts.MaxDocFreq < opts.MinDocFreq {
		return nil, fmt.Errorf("max below min: %w", ErrBadThreshold)
	}

	sums := m.colSums()
	dfs := m.docFreqs()
	keep := make([]bool, len(m.colNames))
	for c := range keep {
		keep[c] = sums[c] >= opts.MinTermFreq && sums[c] <= opts.MaxTermFreq &&
			dfs[c] >= opts.MinDocFreq && dfs[c] <= opts.MaxDocFreq
	}
	return m.subsetCols(keep), nil
}

// Group derives a matrix summing all rows sharing a grouping key into one
// row per distinct key. Output row order follows first occurrence of each
// key; the column structure is preserved unchanged.
//
// Returns ErrDimensionMismatch when len(keys) differs from the row count.
// Complexity: O(rows + nnz + groups·cols).
func (m *Matrix) Group(keys []string) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(keys) != len(m.rowNames) {
		return nil, fmt.Errorf("%d keys for %d rows: %w", len(keys), len(m.rowNames), ErrDimensionMismatch)
	}

	groupOf := make(map[string]int)
	var order []string
	for _, k := range keys {
		if _, known := groupOf[k]; !known {
			groupOf[k] = len(order)
			order = append(order, k)
		}
	}

	// Accumulate dense per-group rows, then compress.
	acc := make([][]float64, len(order))
	for g := range acc {
		acc[g] = make([]float64, len(m.colNames))
	}
	for i := range m.rowNames {
		g := groupOf[keys[i]]
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			acc[g][m.colInd[k]] += m.values[k]
		}
	}

	out := &Matrix{
		rowNames: order,
		colNames: m.ColNames(),
		rowPtr:   make([]int, len(order)+1),
	}
	for g, rowVals := range acc {
		n := 0
		for c, v := range rowVals {
			if v != 0 {
				out.colInd = append(out.colInd, c)
				out.values = append(out.values, v)
				n++
			}
		}
		out.rowPtr[g+1] = out.rowPtr[g] + n
	}
	out.checkInvariants()
	return out, nil
}

// subsetCols rebuilds the matrix keeping only the flagged columns, in
// their original relative order.
func (m *Matrix) subsetCols(keep []bool) *Matrix {
	remap := make([]int, len(m.colNames))
	var cols []string
	for c, k := range keep {
		if !k {
			remap[c] = -1
			continue
		}
		remap[c] = len(cols)
		cols = append(cols, m.colNames[c])
	}

	out := &Matrix{
		rowNames: m.RowNames(),
		colNames: cols,
		rowPtr:   make([]int, len(m.rowNames)+1),
	}
	for i := range m.rowNames {
		n := 0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			nc := remap[m.colInd[k]]
			if nc < 0 {
				continue
			}
			out.colInd = append(out.colInd, nc)
			out.values = append(out.values, m.values[k])
			n++
		}
		out.rowPtr[i+1] = out.rowPtr[i] + n
	}
	out.checkInvariants()
	return out
}
