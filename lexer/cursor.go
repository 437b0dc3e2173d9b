package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in the source buffer. Offset counts bytes from the
// beginning of the buffer, Line and Column are 1-based and Column counts
// runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a [Start, End) pair of byte offsets.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cursor tracks a read position over an immutable source buffer.
type Cursor struct {
	src string
	pos Position
}

// NewCursor creates a cursor placed at the beginning of src.
func NewCursor(src string) *Cursor {
	return &Cursor{
		src: src,
		pos: Position{Offset: 0, Line: 1, Column: 1},
	}
}

// EOF reports whether the whole buffer has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos.Offset >= len(c.src)
}

// Peek returns the rune under the cursor without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.EOF() {
		return 0, false
	}
	r, _ := c.decode(c.pos.Offset)
	return r, true
}

// Peek2 returns the rune under the cursor and the one after it.
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.EOF() {
		return 0, 0, false
	}
	r0, size := c.decode(c.pos.Offset)
	if c.pos.Offset+size >= len(c.src) {
		return r0, 0, false
	}
	r1, _ = c.decode(c.pos.Offset + size)
	return r0, r1, true
}

// Advance consumes the rune under the cursor and returns it.
func (c *Cursor) Advance() (rune, bool) {
	if c.EOF() {
		return 0, false
	}
	r, size := c.decode(c.pos.Offset)
	c.pos.Offset += size
	if r == runeNewLine {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r, true
}

// Position returns the current location of the cursor.
func (c *Cursor) Position() Position {
	return c.pos
}

// Slice returns src[start:end] without copying.
func (c *Cursor) Slice(start, end int) string {
	return c.src[start:end]
}

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int {
	return len(c.src) - c.pos.Offset
}

func (c *Cursor) decode(off int) (rune, int) {
	if b := c.src[off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.src[off:])
}
