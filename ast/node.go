package ast

import (
	"fmt"

	"github.com/xiam/sexpression/lexer"
)

// Node represents a parsed expression: a symbol, an integer, a float, a
// string or a list of nodes.
type Node struct {
	nt  NodeType
	pos lexer.Position

	text     Text
	i        int64
	f        float64
	children []*Node
}

// NewSymbol creates a node of type symbol
func NewSymbol(pos lexer.Position, text Text) *Node {
	return &Node{nt: NodeTypeSymbol, pos: pos, text: text}
}

// NewString creates a node of type string, text is the decoded value.
func NewString(pos lexer.Position, text Text) *Node {
	return &Node{nt: NodeTypeString, pos: pos, text: text}
}

// NewInt creates a node of type int
func NewInt(pos lexer.Position, v int64) *Node {
	return &Node{nt: NodeTypeInt, pos: pos, i: v}
}

// NewFloat creates a node of type float
func NewFloat(pos lexer.Position, v float64) *Node {
	return &Node{nt: NodeTypeFloat, pos: pos, f: v}
}

// NewList creates a node of type list holding the given children. The slice
// is kept as is; a nil slice is an empty list.
func NewList(pos lexer.Position, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{nt: NodeTypeList, pos: pos, children: children}
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Pos returns the location of the first character of the node in the
// source buffer.
func (n *Node) Pos() lexer.Position {
	return n.pos
}

// Text returns the characters of a symbol or the decoded value of a string.
func (n *Node) Text() string {
	return n.text.String()
}

// TextValue returns the Text of a symbol or string node, which tells whether
// the characters are borrowed from the source.
func (n *Node) TextValue() Text {
	return n.text
}

// Int returns the value of an int node.
func (n *Node) Int() int64 {
	return n.i
}

// Float returns the value of a float node. Int nodes are converted.
func (n *Node) Float() float64 {
	if n.nt == NodeTypeInt {
		return float64(n.i)
	}
	return n.f
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children of a list node.
func (n *Node) Len() int {
	return len(n.children)
}

// Value returns the Go value of the node: string, int64, float64 or []*Node.
func (n *Node) Value() interface{} {
	switch n.nt {
	case NodeTypeInt:
		return n.i
	case NodeTypeFloat:
		return n.f
	case NodeTypeSymbol, NodeTypeString:
		return n.text.String()
	case NodeTypeList:
		return n.children
	}
	return nil
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// IsNumber returns true for int and float nodes.
func (n *Node) IsNumber() bool {
	return n.nt == NodeTypeInt || n.nt == NodeTypeFloat
}

// Is returns true if the node matches the given type
func (n *Node) Is(nt NodeType) bool {
	return n.nt == nt
}

func (n *Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %s", n.nt, Encode(n))
}

// Detach returns a deep copy of the node whose texts are all owned, so it no
// longer keeps the source buffer alive.
func (n *Node) Detach() *Node {
	c := *n
	switch n.nt {
	case NodeTypeSymbol, NodeTypeString:
		c.text = n.text.Clone()
	case NodeTypeList:
		c.children = make([]*Node, len(n.children))
		for i := range n.children {
			c.children[i] = n.children[i].Detach()
		}
	}
	return &c
}

// Equal reports whether a and b are structurally equal. Positions and the
// borrowed/owned state of texts are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	switch a.nt {
	case NodeTypeInt:
		return a.i == b.i
	case NodeTypeFloat:
		return a.f == b.f
	case NodeTypeSymbol, NodeTypeString:
		return a.text.String() == b.text.String()
	case NodeTypeList:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}
