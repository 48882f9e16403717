// SPDX-License-Identifier: MIT

/*
Package newick writes phylogenetic trees in a compact Newick-like form and
reads that form back.

Writing follows the right-then-left convention of the clustering output:

	leaf      label:w          w = weight of the edge to the parent, 5 decimals
	internal  (right,left):w   ":w" omitted for the overall root

Internal nodes are unlabeled and no ';' terminator is written. A tree made of
a single leaf is written as its bare label.

The reader accepts the same grammar plus an optional trailing ';', optional
internal labels and optional branch lengths, and any number of children per
node. Quoted labels and comments are not supported, so labels must not
contain whitespace or any of "(),:;".
*/
package newick
