// SPDX-License-Identifier: MIT

package dfm

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lexora/lexora/tokens"
	"github.com/lexora/lexora/vocab"
)

// DEFAULTS — single source of truth for build behavior.
const (
	// DefaultWorkers runs the per-document counting serially.
	DefaultWorkers = 1
)

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	workers int
	columns []string
}

func defaultBuildOptions() buildOptions {
	return buildOptions{workers: DefaultWorkers}
}

// WithWorkers counts documents on up to n goroutines. Per-document
// counting is independent; results are scattered into a slice indexed by
// document position, so the output row order always equals the input
// document order. Build rejects n < 1 with ErrBadWorkers.
func WithWorkers(n int) BuildOption {
	return func(o *buildOptions) { o.workers = n }
}

// WithColumns fixes the column set and order in advance instead of
// discovering it from the store. Types outside the set are not counted;
// names never observed stay as all-zero columns. The list must be
// duplicate-free.
func WithColumns(cols []string) BuildOption {
	return func(o *buildOptions) { o.columns = cols }
}

// Build counts occurrences of each (document, type) pair of the store,
// skipping Pad markers, and returns one row per document and one column
// per distinct observed type. Columns follow first-occurrence order over
// the document scan (or the WithColumns order when pre-specified). A
// document with zero tokens yields an all-zero row, never an omitted one;
// a store of zero documents yields a zero-row matrix.
//
// A store token referencing a type unknown to its own table is internal
// corruption and panics.
// Complexity: O(total tokens + nnz·log nnz_row).
func Build(store *tokens.Store, opts ...BuildOption) (*Matrix, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("workers=%d: %w", o.workers, ErrBadWorkers)
	}

	colNames, idToCol, err := resolveColumns(store, o.columns)
	if err != nil {
		return nil, err
	}

	n := store.Len()
	type row struct {
		cols []int
		vals []float64
	}
	rows := make([]row, n)
	count := func(d int) {
		freq := make(map[int]float64)
		for _, id := range store.IDs(d) {
			if id == vocab.Pad {
				continue
			}
			col, counted := idToCol[id]
			if !counted {
				continue // outside a pre-specified column set
			}
			freq[col]++
		}
		cols := make([]int, 0, len(freq))
		for c := range freq {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		vals := make([]float64, len(cols))
		for i, c := range cols {
			vals[i] = freq[c]
		}
		rows[d] = row{cols: cols, vals: vals}
	}

	if o.workers == 1 {
		for d := 0; d < n; d++ {
			count(d)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for d := 0; d < n; d++ {
			d := d
			g.Go(func() error {
				count(d)
				return nil
			})
		}
		// Counting cannot fail; Wait only joins the workers.
		_ = g.Wait()
	}

	m := &Matrix{
		rowNames: store.Names(),
		colNames: colNames,
		rowPtr:   make([]int, n+1),
	}
	for d, r := range rows {
		m.rowPtr[d+1] = m.rowPtr[d] + len(r.cols)
		m.colInd = append(m.colInd, r.cols...)
		m.values = append(m.values, r.vals...)
	}
	m.checkInvariants()
	return m, nil
}

// resolveColumns materializes the column name list and the type→column
// lookup, either by first-occurrence discovery over the documents or from
// a pre-specified set.
func resolveColumns(store *tokens.Store, fixed []string) ([]string, map[vocab.TypeID]int, error) {
	table := store.Table()
	if fixed != nil {
		seen := make(map[string]struct{}, len(fixed))
		idToCol := make(map[vocab.TypeID]int, len(fixed))
		cols := make([]string, len(fixed))
		for i, name := range fixed {
			if _, dup := seen[name]; dup {
				return nil, nil, fmt.Errorf("column %q: %w", name, ErrDuplicateLabel)
			}
			seen[name] = struct{}{}
			cols[i] = name
			if id, err := table.ID(name); err == nil {
				idToCol[id] = i
			}
		}
		return cols, idToCol, nil
	}

	var cols []string
	idToCol := make(map[vocab.TypeID]int)
	for d := 0; d < store.Len(); d++ {
		for _, id := range store.IDs(d) {
			if id == vocab.Pad {
				continue
			}
			if _, known := idToCol[id]; known {
				continue
			}
			name, err := table.Type(id)
			if err != nil {
				panic(fmt.Sprintf("dfm: document %d references unknown type %d", d, id))
			}
			idToCol[id] = len(cols)
			cols = append(cols, name)
		}
	}
	return cols, idToCol, nil
}
