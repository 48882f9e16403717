// SPDX-License-Identifier: MIT

// Package tree defines the strictly binary phylogenetic tree produced by
// agglomerative clustering, and the read-only queries over it.
//
// Node model:
//
//   - A leaf carries a species label and a pointer to its seqdist.Species.
//   - An internal node carries a synthesized label, exactly two children
//     (Left, Right) and one edge weight shared by both child edges.
//   - Every non-root node points to its parent. The pointer is a
//     back-reference only: children are attached exclusively through
//     NewInternal, which refuses a child that already has a parent.
//   - LeafCount is cached at construction (leaf = 1, internal = sum).
//
// Queries (nil-safe package functions):
//
//	Depth(n)                   -1 for nil, 0 for the root, edges to the root otherwise
//	Height(n)                  -1 for nil, 0 for a leaf, 1 + max over children
//	WeightedDepth(n)           -Inf for nil, sum of edge weights up to the root
//	WeightedHeight(n)          -Inf for nil, heaviest downward path weight
//	FindByLabel(root, label)   DFS, right subtree before left
//	LeastCommonAncestor(a, b)  depth-equalizing parent walk
//	EvolutionaryDistance(a, b) +Inf for nil, weights summed along that walk
//
// EvolutionaryDistance satisfies
//
//	EvolutionaryDistance(a, b) == WeightedDepth(a) + WeightedDepth(b) - 2*WeightedDepth(LCA(a, b))
//
// Tree wraps a root and the species list it was built from and exposes the
// label-based query surface (FindNode, FindLeastCommonAncestor, …).
//
// Concurrency: a built tree is never mutated by any query, so any number of
// goroutines may query it concurrently without locking.
package tree
