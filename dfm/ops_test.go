package dfm_test

import (
	"testing"

	"github.com/lexora/lexora/dfm"
	"github.com/lexora/lexora/pattern"
	"github.com/lexora/lexora/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSample returns a 3x4 matrix over a fixed vocabulary:
//
//	        whale song sea ice
//	text1      2    1   0   0
//	text2      1    0   1   0
//	text3      0    0   1   1
func buildSample(t *testing.T) *dfm.Matrix {
	t.Helper()
	s := mustStore(t, "whale whale song", "whale sea", "sea ice")
	m, err := dfm.Build(s)
	require.NoError(t, err)
	require.Equal(t, []string{"whale", "song", "sea", "ice"}, m.ColNames())
	return m
}

// TestSelect_KeepRemovePartition: keep and remove with the same match set
// partition the columns with no overlap, and their union reconstructs the
// original column set.
func TestSelect_KeepRemovePartition(t *testing.T) {
	m := buildSample(t)
	matches, err := pattern.Resolve([]string{"s*"}, m.ColNames(), pattern.Glob, false)
	require.NoError(t, err)

	kept, err := m.Select(matches, dfm.Keep)
	require.NoError(t, err)
	removed, err := m.Select(matches, dfm.Remove)
	require.NoError(t, err)

	assert.Equal(t, []string{"song", "sea"}, kept.ColNames())
	assert.Equal(t, []string{"whale", "ice"}, removed.ColNames())
	assert.Equal(t, m.NCols(), kept.NCols()+removed.NCols())

	union := append(kept.ColNames(), removed.ColNames()...)
	assert.ElementsMatch(t, m.ColNames(), union, "set union law")
}

// TestSelect_RowCountInvariant: selection never drops rows, even when a
// row loses every cell.
func TestSelect_RowCountInvariant(t *testing.T) {
	m := buildSample(t)
	matches, err := pattern.Resolve([]string{"whale", "song"}, m.ColNames(), pattern.Fixed, false)
	require.NoError(t, err)

	kept, err := m.Select(matches, dfm.Keep)
	require.NoError(t, err)
	assert.Equal(t, m.NRows(), kept.NRows())
	// text3 has neither whale nor song: all-zero row, still present.
	assert.Equal(t, 0.0, cell(t, kept, 2, 0))
	assert.Equal(t, 0.0, cell(t, kept, 2, 1))
}

// TestSelect_UnknownMode rejects enum misuse.
func TestSelect_UnknownMode(t *testing.T) {
	m := buildSample(t)
	_, err := m.Select(nil, dfm.Mode(7))
	assert.ErrorIs(t, err, dfm.ErrUnknownMode)
}

// TestSelect_OutOfRangeMatchPanics: a match index beyond the column range
// signals internal corruption and must fail fast.
func TestSelect_OutOfRangeMatchPanics(t *testing.T) {
	m := buildSample(t)
	assert.Panics(t, func() {
		_, _ = m.Select([]vocab.TypeID{99}, dfm.Keep)
	})
}

// TestTrim_MinTermFreq: every column with total < k goes, none with
// total >= k.
func TestTrim_MinTermFreq(t *testing.T) {
	m := buildSample(t)
	sums := map[string]float64{"whale": 3, "song": 1, "sea": 2, "ice": 1}

	for _, k := range []float64{0, 1, 2, 3, 4} {
		opts := dfm.DefaultTrimOptions()
		opts.MinTermFreq = k
		trimmed, err := m.Trim(opts)
		require.NoError(t, err)

		for _, name := range trimmed.ColNames() {
			assert.GreaterOrEqual(t, sums[name], k, "kept column %q at k=%v", name, k)
		}
		for name, total := range sums {
			if total >= k {
				assert.Contains(t, trimmed.ColNames(), name, "column %q must survive k=%v", name, k)
			}
		}
		assert.Equal(t, m.NRows(), trimmed.NRows(), "row count invariant under trim")
	}
}

// TestTrim_DocFreq bounds by the number of documents containing the term.
func TestTrim_DocFreq(t *testing.T) {
	m := buildSample(t)
	opts := dfm.DefaultTrimOptions()
	opts.MinDocFreq = 2
	trimmed, err := m.Trim(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"whale", "sea"}, trimmed.ColNames())
}

// TestTrim_RecomputesAggregates: trimming a trimmed matrix uses current
// values, not anything cached from the first pass.
func TestTrim_RecomputesAggregates(t *testing.T) {
	m := buildSample(t)
	weighted, err := m.Weight(dfm.Boolean)
	require.NoError(t, err)

	opts := dfm.DefaultTrimOptions()
	opts.MinTermFreq = 2
	trimmed, err := weighted.Trim(opts)
	require.NoError(t, err)
	// Under boolean weighting whale and sea total 2; song and ice total 1.
	assert.Equal(t, []string{"whale", "sea"}, trimmed.ColNames())
}

// TestTrim_BadThresholds rejects negative and inverted bounds.
func TestTrim_BadThresholds(t *testing.T) {
	m := buildSample(t)

	opts := dfm.DefaultTrimOptions()
	opts.MinTermFreq = -1
	_, err := m.Trim(opts)
	assert.ErrorIs(t, err, dfm.ErrBadThreshold)

	opts = dfm.DefaultTrimOptions()
	opts.MinTermFreq = 5
	opts.MaxTermFreq = 2
	_, err = m.Trim(opts)
	assert.ErrorIs(t, err, dfm.ErrBadThreshold)
}

// TestGroup sums rows by key in first-occurrence order and preserves the
// column structure.
func TestGroup(t *testing.T) {
	m := buildSample(t)
	grouped, err := m.Group([]string{"north", "south", "north"})
	require.NoError(t, err)

	assert.Equal(t, []string{"north", "south"}, grouped.RowNames())
	assert.Equal(t, m.ColNames(), grouped.ColNames())
	// north = text1 + text3.
	assert.Equal(t, 2.0, cell(t, grouped, 0, 0))
	assert.Equal(t, 1.0, cell(t, grouped, 0, 1))
	assert.Equal(t, 1.0, cell(t, grouped, 0, 2))
	assert.Equal(t, 1.0, cell(t, grouped, 0, 3))
	// south = text2.
	assert.Equal(t, 1.0, cell(t, grouped, 1, 0))
	assert.Equal(t, 1.0, cell(t, grouped, 1, 2))
}

// TestGroup_DimensionMismatch rejects a key list of the wrong length.
func TestGroup_DimensionMismatch(t *testing.T) {
	m := buildSample(t)
	_, err := m.Group([]string{"only", "two"})
	assert.ErrorIs(t, err, dfm.ErrDimensionMismatch)
}

// TestGroup_ChangesRowCount: group is the only operation that changes the
// row count, to the number of distinct keys.
func TestGroup_ChangesRowCount(t *testing.T) {
	m := buildSample(t)
	grouped, err := m.Group([]string{"g", "g", "g"})
	require.NoError(t, err)
	assert.Equal(t, 1, grouped.NRows())
	assert.Equal(t, 3.0, cell(t, grouped, 0, 0), "whale total collapses into one row")
}
