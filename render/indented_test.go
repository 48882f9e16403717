// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/render"
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

func dots(k int) string { return strings.Repeat(".", k) }

func TestIndented_Weighted(t *testing.T) {
	tr := build(t, "D", "TTTTTTTT", "C", "AAAAAATT", "B", "AAAAAAAT", "A", "AAAAAAAA")

	want := strings.Join([]string{
		dots(14) + "D",
		"[NONTERM 0.44]",
		dots(17) + "C",
		dots(14) + "[NONTERM 0.09]",
		dots(20) + "B",
		dots(17) + "[NONTERM 0.06]",
		dots(20) + "A",
	}, "\n") + "\n"

	assert.Equal(t, want, render.Indented(tr, render.WithWidth(20)))
}

func TestIndented_FillAndDefaults(t *testing.T) {
	tr := build(t, "D", "TTTTTTTT", "C", "AAAAAATT", "B", "AAAAAAAT", "A", "AAAAAAAA")

	out := render.Indented(tr, render.WithWidth(20), render.WithFill('-'))
	assert.True(t, strings.HasPrefix(out, strings.Repeat("-", 14)+"D\n"))

	lines := strings.Split(strings.TrimSuffix(render.Indented(tr), "\n"), "\n")
	require.Len(t, lines, 2*tr.CountLeaves()-1)
	assert.Equal(t, dots(render.DefaultWidth)+"A", lines[len(lines)-1], "deepest leaf gets the full width")
}

func TestIndented_ZeroWeightedHeight(t *testing.T) {
	solo := build(t, "Solo", "ACGT")
	assert.Equal(t, "Solo\n", render.Indented(solo))

	same := build(t, "A", "ACGT", "B", "ACGT")
	assert.Equal(t, "B\n[NONTERM 0.00]\nA\n", render.Indented(same, render.WithWidth(5)))
}

// expectedLines lists the indented view of n in right, node, left order,
// each indent computed directly from WeightedDepth.
func expectedLines(n *tree.Node, width int, wh float64) []string {
	if n == nil {
		return nil
	}
	k := 0
	if wh > 0 {
		k = int(math.Floor(float64(width) * tree.WeightedDepth(n) / wh))
	}
	text := n.Label()
	if !n.IsLeaf() {
		text = fmt.Sprintf("[NONTERM %.2f]", n.EdgeWeight())
	}
	out := expectedLines(n.Right(), width, wh)
	out = append(out, dots(k)+text)

	return append(out, expectedLines(n.Left(), width, wh)...)
}

func TestIndented_MatchesWeightedDepth(t *testing.T) {
	const alphabet = "ACGT"
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 500; iter++ {
		n := 3 + rng.Intn(12)
		length := 5 + rng.Intn(40)
		in := make([]*seqdist.Species, n)
		for i := range in {
			seq := make([]byte, length)
			for j := range seq {
				seq[j] = alphabet[rng.Intn(len(alphabet))]
			}
			in[i] = &seqdist.Species{Name: fmt.Sprintf("S%02d", i), Sequence: seq}
		}
		tr, err := upgma.Build(in)
		require.NoError(t, err)
		width := 10 + rng.Intn(91)

		got := strings.Split(strings.TrimSuffix(render.Indented(tr, render.WithWidth(width)), "\n"), "\n")
		want := expectedLines(tr.Root(), width, tr.WeightedHeight())
		require.Equal(t, want, got, "iter %d width %d", iter, width)
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("disk full")
	}
	f.n--

	return len(p), nil
}

func TestWriteIndented(t *testing.T) {
	tr := build(t, "A", "AAAA", "B", "AAAT", "C", "TTTT")

	var buf bytes.Buffer
	require.NoError(t, render.WriteIndented(&buf, tr, render.WithWidth(10)))
	assert.Equal(t, render.Indented(tr, render.WithWidth(10)), buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), ".......C\n[NONTERM 0.44]\n"))

	err := render.WriteIndented(&failWriter{n: 2}, tr)
	assert.EqualError(t, err, "disk full")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithWidth(0) })
	assert.Panics(t, func() { render.WithFill('\n') })
}
