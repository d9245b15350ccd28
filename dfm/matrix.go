// SPDX-License-Identifier: MIT

package dfm

import "fmt"

// NRows returns the number of documents (rows).
// Complexity: O(1).
func (m *Matrix) NRows() int { return len(m.rowNames) }

// NCols returns the number of features (columns).
// Complexity: O(1).
func (m *Matrix) NCols() int { return len(m.colNames) }

// NNZ returns the number of stored (non-zero) cells.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// RowNames returns a copy of the document labels in row order.
// Complexity: O(rows).
func (m *Matrix) RowNames() []string {
	out := make([]string, len(m.rowNames))
	copy(out, m.rowNames)
	return out
}

// ColNames returns a copy of the feature labels in column order.
// Complexity: O(cols).
func (m *Matrix) ColNames() []string {
	out := make([]string, len(m.colNames))
	copy(out, m.colNames)
	return out
}

// At returns the cell value at (row i, column j); absent cells are zero.
// Returns ErrOutOfRange for indices outside the matrix bounds.
// Complexity: O(log nnz_row) via binary search within the row.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.rowNames) || j < 0 || j >= len(m.colNames) {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, len(m.rowNames), len(m.colNames), ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.colInd[mid] == j:
			return m.values[mid], nil
		case m.colInd[mid] < j:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, nil
}

// Clone returns an independent deep copy.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rowNames: make([]string, len(m.rowNames)),
		colNames: make([]string, len(m.colNames)),
		rowPtr:   make([]int, len(m.rowPtr)),
		colInd:   make([]int, len(m.colInd)),
		values:   make([]float64, len(m.values)),
	}
	copy(c.rowNames, m.rowNames)
	copy(c.colNames, m.colNames)
	copy(c.rowPtr, m.rowPtr)
	copy(c.colInd, m.colInd)
	copy(c.values, m.values)
	return c
}

// colSums returns per-column aggregate counts, recomputed from the current
// cells.
func (m *Matrix) colSums() []float64 {
	sums := make([]float64, len(m.colNames))
	for k, c := range m.colInd {
		sums[c] += m.values[k]
	}
	return sums
}

// docFreqs returns per-column document frequencies (number of rows with a
// non-zero cell), recomputed from the current cells.
func (m *Matrix) docFreqs() []int {
	dfs := make([]int, len(m.colNames))
	for _, c := range m.colInd {
		dfs[c]++
	}
	return dfs
}

// checkInvariants panics if the CSR structure is corrupt: it is called at
// every mutating boundary, and a violation means an internal bug, not bad
// user input.
func (m *Matrix) checkInvariants() {
	if len(m.rowPtr) != len(m.rowNames)+1 || len(m.colInd) != len(m.values) {
		panic("dfm: inconsistent sparse structure")
	}
	for i := 0; i < len(m.rowNames); i++ {
		if m.rowPtr[i] > m.rowPtr[i+1] {
			panic("dfm: row pointers not monotone")
		}
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.colInd[k] < 0 || m.colInd[k] >= len(m.colNames) {
				panic(fmt.Sprintf("dfm: column index %d out of range in row %d", m.colInd[k], i))
			}
			if k > m.rowPtr[i] && m.colInd[k-1] >= m.colInd[k] {
				panic(fmt.Sprintf("dfm: unsorted or duplicate column in row %d", i))
			}
			if m.values[k] == 0 {
				panic(fmt.Sprintf("dfm: explicit zero stored at row %d", i))
			}
		}
	}
}
