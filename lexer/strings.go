package lexer

import (
	"strings"
)

// Escapes are ASCII, so strings are walked byte by byte and any other byte,
// valid UTF-8 or not, is copied through untouched.
var escapeValues = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
}

func isEscapable(r rune) bool {
	if r >= 0x80 {
		return false
	}
	_, ok := escapeValues[byte(r)]
	return ok
}

// DecodeString returns the value of a string literal body (the text between
// the quotes). The body is expected to have been validated by the lexer;
// unknown escapes are copied verbatim.
func DecodeString(body string) string {
	if strings.IndexByte(body, runeBackslash) < 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != runeBackslash || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		if v, ok := escapeValues[body[i]]; ok {
			b.WriteByte(v)
			continue
		}
		b.WriteByte(runeBackslash)
		b.WriteByte(body[i])
	}
	return b.String()
}

// EncodeString quotes s so that the lexer reads it back as the same value.
func EncodeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte(runeDoubleQuote)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(runeDoubleQuote)
	return b.String()
}
