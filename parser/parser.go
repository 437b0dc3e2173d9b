package parser

import (
	"io"

	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/lexer"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1024

// listCapacityLimit caps the capacity reserved up front for list children.
const listCapacityLimit = 8

// Options tunes the parser.
type Options struct {
	// MaxDepth is the maximum number of nested lists. Zero means
	// DefaultMaxDepth.
	MaxDepth int

	// DisableFastPaths is handed to the lexer.
	DisableFastPaths bool
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Parser builds expression trees out of the tokens of a single source
// buffer.
type Parser struct {
	lx   *lexer.Lexer
	opts Options

	depth   int
	nextTok *lexer.Token

	lastErr error
}

// New creates a parser over src.
func New(src string, opts Options) *Parser {
	opts = opts.withDefaults()
	return &Parser{
		lx:   lexer.New(src, lexer.Options{DisableFastPaths: opts.DisableFastPaths}),
		opts: opts,
	}
}

// Parse reads exactly one expression. Anything but whitespace and comments
// after it is reported as TrailingInput.
func (p *Parser) Parse() (*ast.Node, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	node, err := p.parse()
	if err != nil {
		return nil, p.fail(err)
	}

	tok, err := p.next()
	if err != nil {
		return nil, p.fail(err)
	}
	if !tok.Is(lexer.TokenEOF) {
		return nil, p.fail(parserError(lexer.TrailingInput, tok))
	}

	return node, nil
}

// Next reads the next expression of a buffer holding a sequence of them. It
// returns io.EOF once only whitespace and comments are left.
func (p *Parser) Next() (*ast.Node, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	tok, err := p.peek()
	if err != nil {
		return nil, p.fail(err)
	}
	if tok.Is(lexer.TokenEOF) {
		return nil, io.EOF
	}

	node, err := p.parse()
	if err != nil {
		return nil, p.fail(err)
	}
	return node, nil
}

func (p *Parser) fail(err error) error {
	p.lastErr = err
	return err
}

func (p *Parser) peek() (lexer.Token, error) {
	if p.nextTok != nil {
		return *p.nextTok, nil
	}

	tok, err := p.lx.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	p.nextTok = &tok
	return tok, nil
}

func (p *Parser) next() (lexer.Token, error) {
	if p.nextTok != nil {
		tok := *p.nextTok
		p.nextTok = nil
		return tok, nil
	}
	return p.lx.Next()
}

func (p *Parser) parse() (*ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.parseExpression(tok)
}

func (p *Parser) parseExpression(tok lexer.Token) (*ast.Node, error) {
	switch tok.Type() {
	case lexer.TokenLeftParen:
		return p.parseList(tok)

	case lexer.TokenRightParen:
		// a closing paren with no list open
		return nil, parserError(lexer.UnbalancedParens, tok)

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok.Position(), ast.Borrow(tok.Text())), nil

	case lexer.TokenNumber:
		return parseNumberNode(tok)

	case lexer.TokenString:
		return parseStringNode(tok), nil

	default:
		return nil, parserError(lexer.UnexpectedEOF, tok)
	}
}

func (p *Parser) parseList(open lexer.Token) (*ast.Node, error) {
	if p.depth >= p.opts.MaxDepth {
		return nil, parserError(lexer.NestingTooDeep, open)
	}

	p.depth++
	defer func() {
		p.depth--
	}()

	children := make([]*ast.Node, 0, listCapacity(p.lx.Remaining()))
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenRightParen:
			return ast.NewList(open.Position(), children), nil
		case lexer.TokenEOF:
			return nil, parserError(lexer.UnbalancedParens, open)
		}

		child, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// listCapacity guesses how many children a list will hold out of the number
// of bytes left: every child takes at least two bytes with its separator.
func listCapacity(remaining int) int {
	c := remaining / 2
	if c > listCapacityLimit {
		return listCapacityLimit
	}
	return c
}

func parseNumberNode(tok lexer.Token) (*ast.Node, error) {
	v, err := ParseNumber(tok.Text())
	if err != nil {
		return nil, parserError(lexer.InvalidNumber, tok)
	}

	switch n := v.(type) {
	case int64:
		return ast.NewInt(tok.Position(), n), nil
	case float64:
		return ast.NewFloat(tok.Position(), n), nil
	}
	return nil, parserError(lexer.InvalidNumber, tok)
}

func parseStringNode(tok lexer.Token) *ast.Node {
	raw := tok.Text()
	body := raw[1 : len(raw)-1]
	if tok.Escaped() {
		return ast.NewString(tok.Position(), ast.Own(lexer.DecodeString(body)))
	}
	return ast.NewString(tok.Position(), ast.Borrow(body))
}

// Parse reads exactly one expression out of src.
func Parse(src string) (*ast.Node, error) {
	return New(src, Options{}).Parse()
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(src string, opts Options) (*ast.Node, error) {
	return New(src, opts).Parse()
}
