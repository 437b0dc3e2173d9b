package ast

import (
	"strings"
)

// Text is the character data of a symbol or string node. It is either a view
// into the parsed source buffer (borrowed) or a string of its own (owned),
// used when the source had to be transformed, like decoding escapes. Both
// read the same way through String.
type Text struct {
	s     string
	owned bool
}

// Borrow wraps a slice of the source buffer.
func Borrow(s string) Text {
	return Text{s: s}
}

// Own wraps a string that does not alias the source buffer.
func Own(s string) Text {
	return Text{s: s, owned: true}
}

func (t Text) String() string {
	return t.s
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// Borrowed reports whether the text still references the source buffer.
func (t Text) Borrowed() bool {
	return !t.owned
}

// Clone returns an owned copy of the text.
func (t Text) Clone() Text {
	if t.owned {
		return t
	}
	return Own(strings.Clone(t.s))
}
