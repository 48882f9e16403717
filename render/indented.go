// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/phylotree/tree"
)

// Defaults for Indented.
const (
	DefaultWidth = 80
	DefaultFill  = '.'
)

// Option configures Indented and WriteIndented.
type Option func(*options)

type options struct {
	width int
	fill  rune
}

// WithWidth sets the number of fill characters used for the deepest leaf.
// Panics if width <= 0.
func WithWidth(width int) Option {
	if width <= 0 {
		panic("render: WithWidth(width<=0)")
	}

	return func(o *options) { o.width = width }
}

// WithFill sets the indentation character. Panics on a control character.
func WithFill(fill rune) Option {
	if fill < ' ' || fill == 0x7f {
		panic("render: WithFill(control character)")
	}

	return func(o *options) { o.fill = fill }
}

// Indented returns the indented view of t.
func Indented(t *tree.Tree, opts ...Option) string {
	var sb strings.Builder
	_ = WriteIndented(&sb, t, opts...)

	return sb.String()
}

// WriteIndented writes the indented view of t to w, one line per node.
func WriteIndented(w io.Writer, t *tree.Tree, opts ...Option) error {
	o := options{width: DefaultWidth, fill: DefaultFill}
	for _, opt := range opts {
		opt(&o)
	}

	r := &indenter{
		w:         w,
		width:     float64(o.width),
		fill:      string(o.fill),
		maxWeight: t.WeightedHeight(),
	}
	r.node(t.Root())

	return r.err
}

type indenter struct {
	w         io.Writer
	width     float64
	fill      string
	maxWeight float64
	err       error
}

// indent returns the fill prefix for n:
// floor(width * WeightedDepth(n) / WeightedHeight(root)) fill characters.
func (r *indenter) indent(n *tree.Node) string {
	if r.maxWeight <= 0 {
		return ""
	}
	k := int(math.Floor(r.width * tree.WeightedDepth(n) / r.maxWeight))

	return strings.Repeat(r.fill, k)
}

// node renders the subtree of n: right child, n itself, left child.
// Complexity: O(n·depth).
func (r *indenter) node(n *tree.Node) {
	if r.err != nil {
		return
	}
	if n.IsLeaf() {
		_, r.err = fmt.Fprintf(r.w, "%s%s\n", r.indent(n), n.Label())

		return
	}

	r.node(n.Right())
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, "%s[NONTERM %.2f]\n", r.indent(n), n.EdgeWeight())
	}
	r.node(n.Left())
}
