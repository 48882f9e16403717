// SPDX-License-Identifier: MIT

// Package render draws a phylogenetic tree as an indented, vertically laid
// out text view scaled by weighted depth.
//
// Traversal is right child, node, left child. Every node produces one line:
//
//	internal  <k fills>[NONTERM w]   w = edge weight, 2 decimals
//	leaf      <k fills>label
//
// with k = floor(width · WeightedDepth(node) / WeightedHeight(root)). When
// the root's weighted height is 0 (a single leaf, or identical sequences)
// every k is 0.
//
// Example (width 10, fill '.'):
//
//	.......C
//	[NONTERM 0.44]
//	..........B
//	.......[NONTERM 0.12]
//	..........A
package render
