// SPDX-License-Identifier: MIT

package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/phylotree/tree"
)

// weightPrecision is the number of decimals written for every edge weight.
const weightPrecision = 5

// String returns the Newick-like rendering of t.
func String(t *tree.Tree) string {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	writeNode(bw, t.Root(), t.Root())
	_ = bw.Flush()

	return sb.String()
}

// Write writes the Newick-like rendering of t to w.
func Write(w io.Writer, t *tree.Tree) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, t.Root(), t.Root())

	return bw.Flush()
}

func writeNode(w *bufio.Writer, n, root *tree.Node) {
	if n.IsLeaf() {
		w.WriteString(n.Label())
	} else {
		w.WriteByte('(')
		writeNode(w, n.Right(), root)
		w.WriteByte(',')
		writeNode(w, n.Left(), root)
		w.WriteByte(')')
	}
	if n == root {
		return
	}
	w.WriteByte(':')
	w.WriteString(strconv.FormatFloat(n.Parent().EdgeWeight(), 'f', weightPrecision, 64))
}
