// SPDX-License-Identifier: MIT

package tree

import "math"

// Depth returns the number of edges between n and the root.
// Returns -1 for nil and 0 for the root.
// Complexity: O(depth).
func Depth(n *Node) int {
	if n == nil {
		return -1
	}
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// Height returns the number of edges on the longest downward path from n
// to a leaf. Returns -1 for nil and 0 for a leaf.
// Complexity: O(size of subtree).
func Height(n *Node) int {
	if n == nil {
		return -1
	}
	if n.IsLeaf() {
		return 0
	}

	return 1 + max(Height(n.left), Height(n.right))
}

// WeightedDepth returns the sum of edge weights from the root down to n.
// Returns -Inf for nil and 0 for the root.
// Complexity: O(depth).
func WeightedDepth(n *Node) float64 {
	if n == nil {
		return math.Inf(-1)
	}
	sum := 0.0
	for p := n.parent; p != nil; p = p.parent {
		sum += p.weight
	}

	return sum
}

// WeightedHeight returns the weight of the heaviest downward path from n to
// any leaf. This need not be the path with the most edges.
// Returns -Inf for nil and 0 for a leaf.
// Complexity: O(size of subtree).
func WeightedHeight(n *Node) float64 {
	if n == nil {
		return math.Inf(-1)
	}
	if n.IsLeaf() {
		return 0
	}

	return n.weight + math.Max(WeightedHeight(n.left), WeightedHeight(n.right))
}

// FindByLabel searches the subtree rooted at n depth-first, right subtree
// before left, and returns the node carrying label, or nil.
// Labels are unique within a tree built by upgma.
// Complexity: O(size of subtree).
func FindByLabel(n *Node, label string) *Node {
	if n == nil {
		return nil
	}
	if n.label == label {
		return n
	}
	if found := FindByLabel(n.right, label); found != nil {
		return found
	}

	return FindByLabel(n.left, label)
}

// LeastCommonAncestor returns the deepest node that is an ancestor of both
// a and b (a node is its own ancestor). Returns nil if either is nil or the
// nodes belong to different trees.
//
// The deeper node is walked up until both sit at equal depth, then both walk
// up together until they meet. Every internal node has two children, so the
// meeting point is the unique LCA.
// Complexity: O(depth(a) + depth(b)).
func LeastCommonAncestor(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	da, db := Depth(a), Depth(b)
	for ; da > db; da-- {
		a = a.parent
	}
	for ; db > da; db-- {
		b = b.parent
	}
	for a != b {
		a, b = a.parent, b.parent
		if a == nil || b == nil {
			return nil
		}
	}

	return a
}

// EvolutionaryDistance returns the total edge weight on the path between a
// and b through their least common ancestor. Returns +Inf if either is nil
// or the nodes belong to different trees.
// Complexity: O(depth(a) + depth(b)).
func EvolutionaryDistance(a, b *Node) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	sum := 0.0
	da, db := Depth(a), Depth(b)
	for ; da > db; da-- {
		a = a.parent
		sum += a.weight
	}
	for ; db > da; db-- {
		b = b.parent
		sum += b.weight
	}
	for a != b {
		a, b = a.parent, b.parent
		if a == nil || b == nil {
			return math.Inf(1)
		}
		sum += a.weight + b.weight
	}

	return sum
}
