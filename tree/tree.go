// SPDX-License-Identifier: MIT

package tree

import (
	"math"
	"slices"

	"github.com/katalvlaran/phylotree/seqdist"
)

// Tree owns a root node and the species records its leaves were built from.
type Tree struct {
	root    *Node
	species []*seqdist.Species
}

// New wraps root. species is copied and returned by Species in this order.
// Errors: ErrNilRoot, ErrNotRoot.
func New(root *Node, species []*seqdist.Species) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if root.parent != nil {
		return nil, ErrNotRoot
	}

	return &Tree{root: root, species: slices.Clone(species)}, nil
}

// Root returns the overall root.
func (t *Tree) Root() *Node {
	return t.root
}

// Height returns the unweighted height of the tree.
func (t *Tree) Height() int {
	return Height(t.root)
}

// WeightedHeight returns the weight of the heaviest root-to-leaf path.
func (t *Tree) WeightedHeight() float64 {
	return WeightedHeight(t.root)
}

// CountLeaves returns the number of species in the tree.
func (t *Tree) CountLeaves() int {
	return t.root.LeafCount()
}

// Species returns a copy of the species list, in input order.
func (t *Tree) Species() []*seqdist.Species {
	return slices.Clone(t.species)
}

// Leaves returns the leaf nodes in right-to-left order.
func (t *Tree) Leaves() []*Node {
	leaves := make([]*Node, 0, t.CountLeaves())
	_ = Walk(t.root, WithOnVisit(func(n *Node, _ int) error {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}

		return nil
	}))

	return leaves
}

// FindNode returns the node with the given label, or nil.
func (t *Tree) FindNode(label string) *Node {
	return FindByLabel(t.root, label)
}

// FindLeastCommonAncestor returns the LCA of the nodes labeled label1 and
// label2, or nil if either label is absent.
func (t *Tree) FindLeastCommonAncestor(label1, label2 string) *Node {
	return LeastCommonAncestor(t.FindNode(label1), t.FindNode(label2))
}

// FindEvolutionaryDistance returns the path weight between the nodes labeled
// label1 and label2, or +Inf if either label is absent.
func (t *Tree) FindEvolutionaryDistance(label1, label2 string) float64 {
	a, b := t.FindNode(label1), t.FindNode(label2)
	if a == nil || b == nil {
		return math.Inf(1)
	}

	return EvolutionaryDistance(a, b)
}
