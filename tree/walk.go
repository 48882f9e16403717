// SPDX-License-Identifier: MIT

package tree

import "errors"

// ErrStopWalk may be returned by a hook to end Walk early without error.
var ErrStopWalk = errors.New("tree: stop walk")

// WalkOption configures Walk.
type WalkOption func(*walkOptions)

type walkOptions struct {
	onVisit   func(n *Node, depth int) error
	onExit    func(n *Node, depth int) error
	leftFirst bool
}

// WithOnVisit installs a pre-order hook, called when a node is entered.
// Panics on nil.
func WithOnVisit(fn func(n *Node, depth int) error) WalkOption {
	if fn == nil {
		panic("tree: WithOnVisit(nil)")
	}

	return func(o *walkOptions) { o.onVisit = fn }
}

// WithOnExit installs a post-order hook, called after both subtrees.
// Panics on nil.
func WithOnExit(fn func(n *Node, depth int) error) WalkOption {
	if fn == nil {
		panic("tree: WithOnExit(nil)")
	}

	return func(o *walkOptions) { o.onExit = fn }
}

// WithLeftFirst visits the left subtree before the right one.
// The default is right first, the order both renderings use.
func WithLeftFirst() WalkOption {
	return func(o *walkOptions) { o.leftFirst = true }
}

// Walk traverses the subtree rooted at root depth-first. depth passed to
// hooks is relative to root. A hook error aborts the walk and is returned,
// except ErrStopWalk which ends it with a nil error.
func Walk(root *Node, opts ...WalkOption) error {
	var o walkOptions
	for _, opt := range opts {
		opt(&o)
	}

	err := walk(root, 0, &o)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}

	return err
}

func walk(n *Node, depth int, o *walkOptions) error {
	if n == nil {
		return nil
	}
	if o.onVisit != nil {
		if err := o.onVisit(n, depth); err != nil {
			return err
		}
	}

	first, second := n.right, n.left
	if o.leftFirst {
		first, second = second, first
	}
	if err := walk(first, depth+1, o); err != nil {
		return err
	}
	if err := walk(second, depth+1, o); err != nil {
		return err
	}

	if o.onExit != nil {
		return o.onExit(n, depth)
	}

	return nil
}
