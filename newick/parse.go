// SPDX-License-Identifier: MIT

package newick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates malformed Newick input.
var ErrSyntax = errors.New("newick: syntax error")

// Node is one parsed Newick node.
type Node struct {
	// Label is empty for unlabeled nodes.
	Label string

	// Length is the branch length to the parent; nil when absent.
	Length *float64

	// Children is empty for leaves, in input order.
	Children []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the leaf nodes in input order.
func (n *Node) Leaves() []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}

	return out
}

// String renders n back to Newick with the lengths as parsed, full precision.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if !n.IsLeaf() {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			c.write(sb)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(n.Label)
	if n.Length != nil {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
}

// parser is a recursive-descent reader over the input string.
type parser struct {
	src string
	pos int
}

// Parse reads exactly one tree from s. Surrounding whitespace and one
// trailing ';' are allowed.
func Parse(s string) (*Node, error) {
	p := &parser{src: s}
	p.skipSpace()
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == ';' {
		p.pos++
		p.skipSpace()
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after tree", p.src[p.pos])
	}

	return root, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

// peek returns the next byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

// node := [ "(" node { "," node } ")" ] [label] [":" length]
func (p *parser) node() (*Node, error) {
	n := &Node{}
	if p.peek() == '(' {
		p.pos++
		for {
			p.skipSpace()
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++

				continue
			}
			if p.peek() != ')' {
				return nil, p.errorf("expected ',' or ')'")
			}
			p.pos++

			break
		}
	}

	n.Label = p.label()
	if n.IsLeaf() && n.Label == "" {
		return nil, p.errorf("leaf without label")
	}

	p.skipSpace()
	if p.peek() == ':' {
		p.pos++
		p.skipSpace()
		length, err := p.length()
		if err != nil {
			return nil, err
		}
		n.Length = &length
	}

	return n, nil
}

func (p *parser) label() string {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte("(),:; \t\r\n", p.src[p.pos]) < 0 {
		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) length() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte("0123456789+-.eE", p.src[p.pos]) >= 0 {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("missing branch length")
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.pos = start

		return 0, p.errorf("bad branch length %q", text)
	}

	return v, nil
}
