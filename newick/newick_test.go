// SPDX-License-Identifier: MIT

package newick_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/seqdist"
	"github.com/katalvlaran/phylotree/tree"
	"github.com/katalvlaran/phylotree/upgma"
)

func build(t *testing.T, pairs ...string) *tree.Tree {
	t.Helper()
	var in []*seqdist.Species
	for i := 0; i+1 < len(pairs); i += 2 {
		in = append(in, seqdist.NewSpecies(pairs[i], pairs[i+1]))
	}
	tr, err := upgma.Build(in)
	require.NoError(t, err)

	return tr
}

func TestString_ThreeSpecies(t *testing.T) {
	tr := build(t, "A", "AAAA", "B", "AAAT", "C", "TTTT")
	assert.Equal(t, "(C:0.43750,(B:0.12500,A:0.12500):0.43750)", newick.String(tr))

	var buf bytes.Buffer
	require.NoError(t, newick.Write(&buf, tr))
	assert.Equal(t, newick.String(tr), buf.String())
}

func TestString_Weighted(t *testing.T) {
	tr := build(t, "D", "TTTTTTTT", "C", "AAAAAATT", "B", "AAAAAAAT", "A", "AAAAAAAA")
	assert.Equal(t,
		"(D:0.43750,(C:0.09375,(B:0.06250,A:0.06250):0.09375):0.43750)",
		newick.String(tr))
}

func TestString_SingleLeaf(t *testing.T) {
	tr := build(t, "Solo", "ACGT")
	assert.Equal(t, "Solo", newick.String(tr))
}

func TestParse_Grammar(t *testing.T) {
	root, err := newick.Parse(" ((A:1,B:2.5)AB:0.5,C:3e-1)root; ")
	require.NoError(t, err)

	assert.Equal(t, "root", root.Label)
	assert.Nil(t, root.Length)
	require.Len(t, root.Children, 2)
	ab := root.Children[0]
	assert.Equal(t, "AB", ab.Label)
	require.NotNil(t, ab.Length)
	assert.Equal(t, 0.5, *ab.Length)
	assert.Equal(t, 0.3, *root.Children[1].Length)

	var labels []string
	for _, l := range root.Leaves() {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"A", "B", "C"}, labels)
	assert.Equal(t, "((A:1,B:2.5)AB:0.5,C:0.3)root", root.String())

	leaf, err := newick.Parse("Solo")
	require.NoError(t, err)
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, "Solo", leaf.Label)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"(A,B",
		"(A,)",
		"(A:,B)",
		"(A:x,B)",
		"(A,B))",
		"(A,B);;",
		"(A:1.2.3,B)",
	} {
		_, err := newick.Parse(in)
		assert.ErrorIs(t, err, newick.ErrSyntax, "input %q", in)
	}
}

// edgeWeights maps each leaf label to the weight of its parent edge.
func edgeWeights(leaves []*tree.Node) map[string]float64 {
	out := make(map[string]float64, len(leaves))
	for _, l := range leaves {
		out[l.Label()] = l.Parent().EdgeWeight()
	}

	return out
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const alphabet = "ACGT"

	for _, n := range []int{2, 3, 8, 25} {
		in := make([]*seqdist.Species, n)
		for i := range in {
			seq := make([]byte, 30)
			for j := range seq {
				seq[j] = alphabet[rng.Intn(len(alphabet))]
			}
			in[i] = &seqdist.Species{Name: fmt.Sprintf("sp%d", i), Sequence: seq}
		}
		tr, err := upgma.Build(in)
		require.NoError(t, err)

		parsed, err := newick.Parse(newick.String(tr))
		require.NoError(t, err, "n=%d", n)

		want := edgeWeights(tr.Leaves())
		got := parsed.Leaves()
		require.Len(t, got, n)

		var names []string
		for _, l := range got {
			names = append(names, l.Label)
			require.NotNil(t, l.Length)
			assert.InDelta(t, want[l.Label], *l.Length, 1e-5, "leaf %s", l.Label)
		}
		sort.Strings(names)
		var wantNames []string
		for _, s := range in {
			wantNames = append(wantNames, s.Name)
		}
		sort.Strings(wantNames)
		assert.Equal(t, wantNames, names)

		// internal edges: every non-root parsed node with children has a length
		var check func(p *newick.Node, depth int)
		check = func(p *newick.Node, depth int) {
			if depth > 0 {
				assert.NotNil(t, p.Length)
			}
			if !p.IsLeaf() {
				assert.Len(t, p.Children, 2, "strictly binary")
			}
			for _, c := range p.Children {
				check(c, depth+1)
			}
		}
		check(parsed, 0)
		assert.Nil(t, parsed.Length, "root carries no weight")
	}
}
