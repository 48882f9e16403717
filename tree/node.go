// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phylotree/seqdist"
)

// Sentinel errors for node and tree construction.
var (
	// ErrNilChild indicates NewInternal received a nil child.
	ErrNilChild = errors.New("tree: child is nil")

	// ErrSameChild indicates NewInternal received the same node twice.
	ErrSameChild = errors.New("tree: left and right child are the same node")

	// ErrAlreadyOwned indicates a child is already attached to a parent.
	ErrAlreadyOwned = errors.New("tree: child already has a parent")

	// ErrBadWeight indicates a NaN, infinite or negative edge weight.
	ErrBadWeight = errors.New("tree: edge weight must be finite and non-negative")

	// ErrNilRoot indicates New received a nil root.
	ErrNilRoot = errors.New("tree: root is nil")

	// ErrNotRoot indicates New received a node that has a parent.
	ErrNotRoot = errors.New("tree: node is not a root")
)

// Node is a leaf or an internal node of a phylogenetic tree.
// Fields are unexported; a Node is immutable once it has a parent.
type Node struct {
	label   string
	species *seqdist.Species // leaves only

	parent      *Node // back-reference; nil for the root
	left, right *Node // both nil for a leaf, both set otherwise

	weight    float64 // distance to either child
	leafCount int
}

// NewLeaf returns a leaf for s, labeled with s.Name.
func NewLeaf(s *seqdist.Species) *Node {
	return &Node{label: s.Name, species: s, leafCount: 1}
}

// NewInternal joins left and right under a new node with the given label and
// edge weight, and points both children at it.
//
// Errors: ErrNilChild, ErrSameChild, ErrAlreadyOwned, ErrBadWeight.
// Complexity: O(1).
func NewInternal(label string, left, right *Node, weight float64) (*Node, error) {
	if left == nil || right == nil {
		return nil, ErrNilChild
	}
	if left == right {
		return nil, ErrSameChild
	}
	if left.parent != nil || right.parent != nil {
		return nil, fmt.Errorf("NewInternal(%q): %w", label, ErrAlreadyOwned)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return nil, fmt.Errorf("NewInternal(%q,%v): %w", label, weight, ErrBadWeight)
	}

	n := &Node{
		label:     label,
		left:      left,
		right:     right,
		weight:    weight,
		leafCount: left.leafCount + right.leafCount,
	}
	left.parent = n
	right.parent = n

	return n, nil
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Label returns the node label.
func (n *Node) Label() string {
	return n.label
}

// Parent returns the parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Left returns the left child (lexicographically smaller label), nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Children returns [left, right], or nil for a leaf.
func (n *Node) Children() []*Node {
	if n.IsLeaf() {
		return nil
	}

	return []*Node{n.left, n.right}
}

// EdgeWeight returns the distance from n to either child.
// Only meaningful for internal nodes; leaves report 0.
func (n *Node) EdgeWeight() float64 {
	return n.weight
}

// LeafCount returns the number of leaves in the subtree rooted at n.
func (n *Node) LeafCount() int {
	return n.leafCount
}

// Species returns the record of a leaf, nil for an internal node.
func (n *Node) Species() *seqdist.Species {
	return n.species
}

// String returns the label.
func (n *Node) String() string {
	return n.label
}
