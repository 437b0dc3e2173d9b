// Package sexpr reads S-expressions into trees of ast.Node values.
//
// Atoms keep pointing into the source text whenever they can, so the tree
// returned by Read must not outlive the string it was read from unless it is
// detached first with (*ast.Node).Detach.
package sexpr

import (
	"errors"
	"fmt"
	"io"

	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/parser"
)

// Read parses exactly one expression out of src.
func Read(src string) (*ast.Node, error) {
	return parser.Parse(src)
}

// ReadBytes is like Read but takes a byte slice. The input is copied once, so
// the returned tree does not alias in.
func ReadBytes(in []byte) (*ast.Node, error) {
	return parser.Parse(string(in))
}

// ReadWithOptions is like Read with explicit parser options.
func ReadWithOptions(src string, opts parser.Options) (*ast.Node, error) {
	return parser.ParseWithOptions(src, opts)
}

// MustRead is like Read but panics if src cannot be parsed. It is meant for
// inputs known to be well formed, such as literals in tests.
func MustRead(src string) *ast.Node {
	node, err := Read(src)
	if err != nil {
		panic(fmt.Sprintf("sexpr: MustRead(%q): %v", src, err))
	}
	return node
}

// Reader reads a sequence of top-level expressions out of one source buffer.
type Reader struct {
	p *parser.Parser
}

// NewReader creates a Reader over src.
func NewReader(src string, opts parser.Options) *Reader {
	return &Reader{p: parser.New(src, opts)}
}

// Next returns the next expression. It returns io.EOF once the input is
// exhausted. After any other error every call returns that same error.
func (r *Reader) Next() (*ast.Node, error) {
	return r.p.Next()
}

// ReadAll parses every top-level expression in src.
func ReadAll(src string) ([]*ast.Node, error) {
	r := NewReader(src, parser.Options{})

	nodes := []*ast.Node{}
	for {
		node, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nodes, nil
			}
			return nil, err
		}
		nodes = append(nodes, node)
	}
}
