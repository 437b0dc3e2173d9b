package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxContext is the longest excerpt of source text kept in an Error.
const maxContext = 32

// ErrorKind classifies a parse failure.
type ErrorKind uint8

// Kinds of parse failures
const (
	UnexpectedEOF      ErrorKind = iota + 1 // Input ended where a token was required
	UnbalancedParens                        // A list was opened and never closed, or closed and never opened
	TrailingInput                           // Content after the single top-level expression
	InvalidNumber                           // Numeric lexeme outside of the number grammar
	UnterminatedString                      // String literal without closing quote
	InvalidEscape                           // Unknown escape sequence inside a string
	NestingTooDeep                          // List nesting beyond the configured limit
)

// Sentinel errors, one per kind. Every *Error unwraps to one of them.
var (
	ErrUnexpectedEOF      = errors.New("unexpected EOF")
	ErrUnbalancedParens   = errors.New("unbalanced parentheses")
	ErrTrailingInput      = errors.New("trailing input")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
	ErrNestingTooDeep     = errors.New("nesting too deep")
)

var errorKinds = map[ErrorKind]error{
	UnexpectedEOF:      ErrUnexpectedEOF,
	UnbalancedParens:   ErrUnbalancedParens,
	TrailingInput:      ErrTrailingInput,
	InvalidNumber:      ErrInvalidNumber,
	UnterminatedString: ErrUnterminatedString,
	InvalidEscape:      ErrInvalidEscape,
	NestingTooDeep:     ErrNestingTooDeep,
}

var errorKindNames = map[ErrorKind]string{
	UnexpectedEOF:      "unexpected_eof",
	UnbalancedParens:   "unbalanced_parens",
	TrailingInput:      "trailing_input",
	InvalidNumber:      "invalid_number",
	UnterminatedString: "unterminated_string",
	InvalidEscape:      "invalid_escape",
	NestingTooDeep:     "nesting_too_deep",
}

func (k ErrorKind) String() string {
	if v, ok := errorKindNames[k]; ok {
		return v
	}
	return "unknown"
}

// Err returns the sentinel error of the kind.
func (k ErrorKind) Err() error {
	if err, ok := errorKinds[k]; ok {
		return err
	}
	return errors.New("unknown parse error")
}

// Error is a parse failure located in the source buffer. It is created once,
// at the first point of failure, and never modified afterwards.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Context string
}

// NewError creates a positioned parse error.
func NewError(kind ErrorKind, pos Position, context string) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Context: excerpt(context),
	}
}

func excerpt(s string) string {
	if len(s) <= maxContext {
		return s
	}
	cut := maxContext
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func (e *Error) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%v: %v", e.Pos, e.Kind.Err())
	}
	return fmt.Sprintf("%v: %v: %q", e.Pos, e.Kind.Err(), e.Context)
}

// Unwrap returns the sentinel error of the kind, so errors.Is can be used
// against ErrUnbalancedParens and friends.
func (e *Error) Unwrap() error {
	return e.Kind.Err()
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
