// SPDX-License-Identifier: MIT

// Package dfm: interchange with external linear-algebra routines.
// The coordinate-list (triple) form is the interface both directions:
// Triples exports it, FromTriples ingests results coming back.
package dfm

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Triples returns the non-zero cells as a coordinate list, row-major with
// ascending columns inside each row.
// Complexity: O(nnz).
func (m *Matrix) Triples() []Triple {
	out := make([]Triple, 0, len(m.values))
	for i := range m.rowNames {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			out = append(out, Triple{Row: i, Col: m.colInd[k], Value: m.values[k]})
		}
	}
	return out
}

// ToDense converts the matrix to a gonum dense matrix for consumption by
// decomposition routines (SVD and friends live outside this library).
// A zero-row or zero-column matrix returns nil, since gonum rejects empty
// shapes.
// Complexity: O(rows·cols).
func (m *Matrix) ToDense() *mat.Dense {
	if len(m.rowNames) == 0 || len(m.colNames) == 0 {
		return nil
	}
	d := mat.NewDense(len(m.rowNames), len(m.colNames), nil)
	for i := range m.rowNames {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			d.Set(i, m.colInd[k], m.values[k])
		}
	}
	return d
}

// FromTriples builds a matrix from labels and a coordinate list, the form
// external routines hand results back in. Duplicate coordinates are
// summed; entries summing to exactly zero are dropped. Label lists must be
// duplicate-free (ErrDuplicateLabel); coordinates must lie inside the
// label grid (ErrOutOfRange); values must be non-negative
// (ErrNegativeValue).
// Complexity: O(nnz·log nnz + rows + cols).
func FromTriples(rowNames, colNames []string, triples []Triple) (*Matrix, error) {
	if err := checkUnique("row", rowNames); err != nil {
		return nil, err
	}
	if err := checkUnique("column", colNames); err != nil {
		return nil, err
	}

	acc := make(map[[2]int]float64, len(triples))
	for _, t := range triples {
		if t.Row < 0 || t.Row >= len(rowNames) || t.Col < 0 || t.Col >= len(colNames) {
			return nil, fmt.Errorf("(%d,%d) in %dx%d: %w", t.Row, t.Col, len(rowNames), len(colNames), ErrOutOfRange)
		}
		if t.Value < 0 {
			return nil, fmt.Errorf("(%d,%d)=%v: %w", t.Row, t.Col, t.Value, ErrNegativeValue)
		}
		acc[[2]int{t.Row, t.Col}] += t.Value
	}

	coords := make([][2]int, 0, len(acc))
	for rc, v := range acc {
		if v == 0 {
			continue
		}
		coords = append(coords, rc)
	}
	sort.Slice(coords, func(a, b int) bool {
		if coords[a][0] != coords[b][0] {
			return coords[a][0] < coords[b][0]
		}
		return coords[a][1] < coords[b][1]
	})

	m := &Matrix{
		rowNames: append([]string(nil), rowNames...),
		colNames: append([]string(nil), colNames...),
		rowPtr:   make([]int, len(rowNames)+1),
	}
	counts := make([]int, len(rowNames))
	for _, rc := range coords {
		m.colInd = append(m.colInd, rc[1])
		m.values = append(m.values, acc[rc])
		counts[rc[0]]++
	}
	for i := 0; i < len(rowNames); i++ {
		m.rowPtr[i+1] = m.rowPtr[i] + counts[i]
	}
	m.checkInvariants()
	return m, nil
}

func checkUnique(kind string, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%s %q: %w", kind, l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}
	return nil
}
