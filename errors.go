package sexpr

import (
	"github.com/xiam/sexpression/parser"
)

// Error is the positioned error returned by every read function.
type Error = parser.Error

// Sentinels matched with errors.Is against errors returned by this package.
var (
	ErrUnexpectedEOF      = parser.ErrUnexpectedEOF
	ErrUnbalancedParens   = parser.ErrUnbalancedParens
	ErrTrailingInput      = parser.ErrTrailingInput
	ErrInvalidNumber      = parser.ErrInvalidNumber
	ErrUnterminatedString = parser.ErrUnterminatedString
	ErrInvalidEscape      = parser.ErrInvalidEscape
	ErrNestingTooDeep     = parser.ErrNestingTooDeep
)
