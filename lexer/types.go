package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenSymbol               // Identifier or operator
	TokenNumber               // Numeric lexeme, converted later
	TokenString               // Double quoted string, escapes included
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenLeftParen:  "left_paren",
	TokenRightParen: "right_paren",
	TokenSymbol:     "symbol",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

const (
	runeLeftParen    = '('
	runeRightParen   = ')'
	runeDoubleQuote  = '"'
	runeBackslash    = '\\'
	runeComment      = ';'
	runeNewLine      = '\n'
	runeExponent     = 'e'
	runeExponentBig  = 'E'
	runeDecimalPoint = '.'
)

// operators that are emitted without the general symbol scan when they stand
// alone.
var singleRuneSymbols = []rune("+-*/<>=!")

func isSingleRuneSymbol(r rune) bool {
	for _, v := range singleRuneSymbols {
		if v == r {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAritmeticSign(r rune) bool {
	return r == '+' || r == '-'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isBoundary reports whether r ends an atom.
func isBoundary(r rune) bool {
	return isWhitespace(r) || r == runeLeftParen || r == runeRightParen || r == runeDoubleQuote
}

func isNumericRun(r rune) bool {
	return isDigit(r) || isAritmeticSign(r) || r == runeDecimalPoint || r == runeExponent || r == runeExponentBig
}
