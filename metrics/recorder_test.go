// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/metrics"
	"github.com/katalvlaran/phylotree/seqdist"
	"github.com/katalvlaran/phylotree/upgma"
)

func TestRecorder_Build(t *testing.T) {
	r := metrics.NewRecorder()
	in := []*seqdist.Species{
		seqdist.NewSpecies("A", "AAAA"),
		seqdist.NewSpecies("B", "AAAT"),
		seqdist.NewSpecies("C", "TTTT"),
		seqdist.NewSpecies("D", "TTTA"),
	}

	tr, err := r.Build(in)
	require.NoError(t, err)
	require.NotNil(t, tr)

	_, err = r.Build(nil)
	assert.ErrorIs(t, err, upgma.ErrEmptyInput)

	expected := `
# HELP phylotree_merges_total Agglomeration steps performed.
# TYPE phylotree_merges_total counter
phylotree_merges_total 3
# HELP phylotree_builds_total Tree builds by result.
# TYPE phylotree_builds_total counter
phylotree_builds_total{result="error"} 1
phylotree_builds_total{result="ok"} 1
# HELP phylotree_tree_leaves Leaves of the most recently built tree.
# TYPE phylotree_tree_leaves gauge
phylotree_tree_leaves 4
`
	err = testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"phylotree_builds_total", "phylotree_merges_total", "phylotree_tree_leaves")
	assert.NoError(t, err)

	n, err := testutil.GatherAndCount(r.Registry(), "phylotree_merge_distance", "phylotree_build_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_BuildKeepsCallerOptions(t *testing.T) {
	r := metrics.NewRecorder()
	in := []*seqdist.Species{
		seqdist.NewSpecies("A", "AAAA"),
		seqdist.NewSpecies("B", "AAAT"),
		seqdist.NewSpecies("C", "TTTT"),
	}

	var calls int
	opts := make([]upgma.Option, 1, 4)
	opts[0] = upgma.WithOnMerge(func(upgma.Merge) { calls++ })

	_, err := r.Build(in, opts...)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	for i, opt := range opts[1:cap(opts)] {
		assert.Nil(t, opt, "spare slot %d written", i+1)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.OnMerge(upgma.Merge{Distance: 0.25})

	path := filepath.Join(t.TempDir(), "phylotree.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phylotree_merges_total 1")
	assert.Contains(t, string(data), "phylotree_merge_distance_count 1")
	assert.Contains(t, string(data), "phylotree_merge_distance_sum 0.25")
}
