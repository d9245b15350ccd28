// SPDX-License-Identifier: MIT

package dfm

import (
	"fmt"
	"math"
)

// Weight derives a matrix with every cell rescaled by the scheme. The
// sparsity pattern is preserved except where a weight reduces a value to
// exactly zero, in which case the cell is dropped to keep the no-explicit-
// zeros invariant (IDF weighting of a column present in every document is
// the canonical case).
//
// Row-relative schemes (Prop, PropMax) use the row's own aggregates;
// column schemes (IDF, TFIDF) use document frequencies recomputed at call
// time. Count is the identity and returns a plain clone.
// Complexity: O(cols + nnz).
func (m *Matrix) Weight(scheme Scheme) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	var idf []float64
	switch scheme {
	case Count:
		return m.Clone(), nil
	case Boolean, Prop, PropMax:
		// no precomputation
	case IDF, TFIDF:
		n := float64(len(m.rowNames))
		idf = make([]float64, len(m.colNames))
		for c, df := range m.docFreqs() {
			if df > 0 {
				idf[c] = math.Log10(n / float64(df))
			}
		}
	default:
		return nil, fmt.Errorf("scheme %d: %w", scheme, ErrUnknownScheme)
	}

	out := &Matrix{
		rowNames: m.RowNames(),
		colNames: m.ColNames(),
		rowPtr:   make([]int, len(m.rowNames)+1),
	}
	for i := range m.rowNames {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]

		var rowSum, rowMax float64
		for k := lo; k < hi; k++ {
			rowSum += m.values[k]
			if m.values[k] > rowMax {
				rowMax = m.values[k]
			}
		}

		n := 0
		for k := lo; k < hi; k++ {
			v := m.values[k]
			switch scheme {
			case Boolean:
				v = 1
			case Prop:
				v /= rowSum
			case PropMax:
				v /= rowMax
			case IDF:
				v = idf[m.colInd[k]]
			case TFIDF:
				v *= idf[m.colInd[k]]
			}
			if v == 0 {
				continue // weight hit exactly zero: drop the cell
			}
			out.colInd = append(out.colInd, m.colInd[k])
			out.values = append(out.values, v)
			n++
		}
		out.rowPtr[i+1] = out.rowPtr[i] + n
	}
	out.checkInvariants()
	return out, nil
}
