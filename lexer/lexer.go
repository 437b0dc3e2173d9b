package lexer

type lexState func(*Lexer) lexState

// Options tunes the lexer.
type Options struct {
	// DisableFastPaths routes every atom through the general scan. Token
	// streams are identical either way.
	DisableFastPaths bool
}

// Lexer represents a lexical analyzer. It is a forward-only producer: every
// call to Next runs the state machine until exactly one token is emitted.
type Lexer struct {
	in   *Cursor
	opts Options

	start   Position
	escaped bool

	tok     Token
	lastErr error
}

// New initializes a Lexer over src.
func New(src string, opts Options) *Lexer {
	return &Lexer{
		in:   NewCursor(src),
		opts: opts,
	}
}

// Next returns the next token. Once TokenEOF has been returned every further
// call returns TokenEOF again; once an error has been returned every further
// call returns the same error.
func (lx *Lexer) Next() (Token, error) {
	if lx.lastErr != nil {
		return Token{}, lx.lastErr
	}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return Token{}, lx.lastErr
	}
	return lx.tok, nil
}

// Remaining returns the number of unread bytes.
func (lx *Lexer) Remaining() int {
	return lx.in.Remaining()
}

// Position returns the location the lexer will read from next.
func (lx *Lexer) Position() Position {
	return lx.in.Position()
}

func (lx *Lexer) emit(tt TokenType) lexState {
	end := lx.in.Position().Offset
	lx.tok = Token{
		tt:     tt,
		lexeme: lx.in.Slice(lx.start.Offset, end),

		span:    Span{Start: lx.start.Offset, End: end},
		line:    lx.start.Line,
		col:     lx.start.Column,
		escaped: lx.escaped,
	}
	return nil
}

func (lx *Lexer) startsNumber() bool {
	r0, r1, ok := lx.in.Peek2()
	if isDigit(r0) {
		return true
	}
	return ok && isAritmeticSign(r0) && isDigit(r1)
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start = lx.in.Position()
	lx.escaped = false

	r, ok := lx.in.Peek()
	if !ok {
		return lx.emit(TokenEOF)
	}

	switch {
	case isWhitespace(r):
		return lexWhitespace
	case r == runeComment:
		return lexComment
	case r == runeLeftParen:
		lx.in.Advance()
		return lx.emit(TokenLeftParen)
	case r == runeRightParen:
		lx.in.Advance()
		return lx.emit(TokenRightParen)
	case r == runeDoubleQuote:
		return lexString
	}

	if lx.opts.DisableFastPaths {
		return lexAtom
	}

	switch {
	case lx.startsNumber():
		return lexNumber
	case isSingleRuneSymbol(r):
		return lexOperator
	}
	return lexAtom
}

func lexWhitespace(lx *Lexer) lexState {
	for {
		r, ok := lx.in.Peek()
		if !ok || !isWhitespace(r) {
			return lexDefaultState
		}
		lx.in.Advance()
	}
}

func lexComment(lx *Lexer) lexState {
	for {
		r, ok := lx.in.Advance()
		if !ok || r == runeNewLine {
			return lexDefaultState
		}
	}
}

// lexNumber is the digit fast path: it consumes the numeric run in one go and
// only falls back to the general scan when the run is glued to other atom
// characters.
func lexNumber(lx *Lexer) lexState {
	lx.in.Advance()
	for {
		r, ok := lx.in.Peek()
		if !ok || isBoundary(r) {
			return lx.emit(TokenNumber)
		}
		if !isNumericRun(r) {
			return lexAtomRest(TokenNumber)
		}
		lx.in.Advance()
	}
}

// lexOperator is the single-rune symbol fast path.
func lexOperator(lx *Lexer) lexState {
	lx.in.Advance()
	r, ok := lx.in.Peek()
	if !ok || isBoundary(r) {
		return lx.emit(TokenSymbol)
	}
	return lexAtomRest(TokenSymbol)
}

func lexAtom(lx *Lexer) lexState {
	if lx.startsNumber() {
		return lexAtomRest(TokenNumber)
	}
	return lexAtomRest(TokenSymbol)
}

func lexAtomRest(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for {
			r, ok := lx.in.Peek()
			if !ok || isBoundary(r) {
				return lx.emit(tt)
			}
			lx.in.Advance()
		}
	}
}

func lexString(lx *Lexer) lexState {
	lx.in.Advance()
	for {
		escPos := lx.in.Position()

		r, ok := lx.in.Advance()
		if !ok {
			return lx.unterminated()
		}

		switch r {
		case runeDoubleQuote:
			return lx.emit(TokenString)
		case runeBackslash:
			e, ok := lx.in.Advance()
			if !ok {
				return lx.unterminated()
			}
			if !isEscapable(e) {
				context := lx.in.Slice(escPos.Offset, lx.in.Position().Offset)
				return lexStateError(NewError(InvalidEscape, escPos, context))
			}
			lx.escaped = true
		}
	}
}

func (lx *Lexer) unterminated() lexState {
	context := lx.in.Slice(lx.start.Offset, lx.in.Position().Offset)
	return lexStateError(NewError(UnterminatedString, lx.start, context))
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// All drains the lexer, returning every token up to and including TokenEOF.
func (lx *Lexer) All() ([]Token, error) {
	tokens := make([]Token, 0, lx.in.Remaining()/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}

// Tokenize takes a source buffer and returns all the tokens within it, or an
// error if a token can't be identified.
func Tokenize(src string) ([]Token, error) {
	return New(src, Options{}).All()
}
