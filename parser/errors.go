package parser

import (
	"github.com/xiam/sexpression/lexer"
)

// Error is a positioned parse failure, shared with the lexer.
type Error = lexer.Error

// ErrorKind classifies a parse failure.
type ErrorKind = lexer.ErrorKind

var (
	ErrUnexpectedEOF      = lexer.ErrUnexpectedEOF
	ErrUnbalancedParens   = lexer.ErrUnbalancedParens
	ErrTrailingInput      = lexer.ErrTrailingInput
	ErrInvalidNumber      = lexer.ErrInvalidNumber
	ErrUnterminatedString = lexer.ErrUnterminatedString
	ErrInvalidEscape      = lexer.ErrInvalidEscape
	ErrNestingTooDeep     = lexer.ErrNestingTooDeep
)

func parserError(kind lexer.ErrorKind, tok lexer.Token) error {
	return lexer.NewError(kind, tok.Position(), tok.Text())
}
