package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). The lexeme
// is a view into the source buffer.
type Token struct {
	tt     TokenType
	lexeme string

	span    Span
	line    int
	col     int
	escaped bool
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, pos Position) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		span:   Span{Start: pos.Offset, End: pos.Offset + len(lexeme)},
		line:   pos.Line,
		col:    pos.Column,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Position returns the full location of the first character of the token.
func (t Token) Position() Position {
	return Position{Offset: t.span.Start, Line: t.line, Column: t.col}
}

// Span returns the byte offsets covered by the token.
func (t Token) Span() Span {
	return t.span
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Escaped reports whether a string token contains escape sequences, in which
// case its value must be decoded with DecodeString.
func (t Token) Escaped() bool {
	return t.escaped
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
