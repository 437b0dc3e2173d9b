package ast

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xiam/sexpression/lexer"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	_ = Fprint(os.Stdout, n)
}

// Fprint writes an indented dump of the tree to w.
func Fprint(w io.Writer, n *Node) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) error {
	if n == nil {
		_, err := fmt.Fprintf(w, ":nil\n")
		return err
	}
	indent := strings.Repeat("    ", level)
	if _, err := fmt.Fprintf(w, "%s(%s): ", indent, n.Type()); err != nil {
		return err
	}

	if n.IsVector() {
		if _, err := fmt.Fprintf(w, "[%d] (%v)\n", n.Len(), n.Pos()); err != nil {
			return err
		}
		for _, child := range n.List() {
			if err := printLevel(w, child, level+1); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := fmt.Fprintf(w, "%s (%v)\n", encodeValue(n), n.Pos())
	return err
}

// Encode transforms a node into its canonical text representation. Reading
// the result back yields a tree equal to n.
func Encode(n *Node) []byte {
	var buf bytes.Buffer
	encodeNode(&buf, n)
	return buf.Bytes()
}

func encodeNode(buf *bytes.Buffer, n *Node) {
	if n == nil {
		return
	}
	if !n.IsVector() {
		buf.WriteString(encodeValue(n))
		return
	}
	buf.WriteByte('(')
	for i, child := range n.List() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		encodeNode(buf, child)
	}
	buf.WriteByte(')')
}

func encodeValue(n *Node) string {
	switch n.Type() {
	case NodeTypeInt:
		return strconv.FormatInt(n.Int(), 10)
	case NodeTypeFloat:
		return formatFloat(n.Float())
	case NodeTypeString:
		return lexer.EncodeString(n.Text())
	case NodeTypeSymbol:
		return n.Text()
	}
	panic("unknown node type")
}

// formatFloat always keeps a fraction or an exponent so the literal is read
// back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}
