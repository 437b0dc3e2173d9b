package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].tt)
	}
	return tt
}

func getTokenTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, tokens[i].Text())
	}
	return texts
}

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a :b
			c-d-e-f
			"g
			hi"
		)`,

		`(set foo (+ 3 3))`,

		`(define (factorial n) (if (= n 0) 1 (* n (factorial (- n 1)))))`,

		`(
			"hello world!" "brave new " :world
		)`,

		`(fn1 (:A "😊"))`,

		`(fn1 (:robot 🤖))`,

		"; leading comment\n(a b) ; trailing comment",
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type())
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In    string
		Out   []TokenType
		Texts []string
	}{
		{
			`1`,
			[]TokenType{TokenNumber, TokenEOF},
			[]string{"1", ""},
		},
		{
			"+\n\t\t1",
			[]TokenType{TokenSymbol, TokenNumber, TokenEOF},
			[]string{"+", "1", ""},
		},
		{
			`-1.23`,
			[]TokenType{TokenNumber, TokenEOF},
			[]string{"-1.23", ""},
		},
		{
			`(+ 1 2)`,
			[]TokenType{TokenLeftParen, TokenSymbol, TokenNumber, TokenNumber, TokenRightParen, TokenEOF},
			[]string{"(", "+", "1", "2", ")", ""},
		},
		{
			`(a(b)c)`,
			[]TokenType{TokenLeftParen, TokenSymbol, TokenLeftParen, TokenSymbol, TokenRightParen, TokenSymbol, TokenRightParen, TokenEOF},
			[]string{"(", "a", "(", "b", ")", "c", ")", ""},
		},
		{
			`abc"def"ghi`,
			[]TokenType{TokenSymbol, TokenString, TokenSymbol, TokenEOF},
			[]string{"abc", `"def"`, "ghi", ""},
		},
		{
			`-> -x +5 1e10 1.5e-3 <= !`,
			[]TokenType{TokenSymbol, TokenSymbol, TokenNumber, TokenNumber, TokenNumber, TokenSymbol, TokenSymbol, TokenEOF},
			[]string{"->", "-x", "+5", "1e10", "1.5e-3", "<=", "!", ""},
		},
		{
			`123abc 1. .5`,
			[]TokenType{TokenNumber, TokenNumber, TokenSymbol, TokenEOF},
			[]string{"123abc", "1.", ".5", ""},
		},
		{
			"a;b ; comment\nc",
			[]TokenType{TokenSymbol, TokenSymbol, TokenEOF},
			[]string{"a;b", "c", ""},
		},
		{
			"; only a comment",
			[]TokenType{TokenEOF},
			[]string{""},
		},
		{
			"",
			[]TokenType{TokenEOF},
			[]string{""},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input %q", testCases[i].In)
		assert.Equal(t, testCases[i].Texts, getTokenTexts(tokens), "input %q", testCases[i].In)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
				{5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3}, {3, 8},
			},
		},
		{
			"(ü \"ñ\" x)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 4}, {1, 8}, {1, 9}, {1, 10},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			line, col := tokens[i].Pos()
			ret = append(ret, [2]int{line, col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input %q", testCases[i].In)
	}
}

func TestTokenSpan(t *testing.T) {
	src := "(ab \"c\\\"d\")"
	tokens, err := Tokenize(src)
	require.NoError(t, err)

	expected := []Token{
		NewToken(TokenLeftParen, "(", Position{Offset: 0, Line: 1, Column: 1}),
		NewToken(TokenSymbol, "ab", Position{Offset: 1, Line: 1, Column: 2}),
		NewToken(TokenString, "\"c\\\"d\"", Position{Offset: 4, Line: 1, Column: 5}),
		NewToken(TokenRightParen, ")", Position{Offset: 10, Line: 1, Column: 11}),
		NewToken(TokenEOF, "", Position{Offset: 11, Line: 1, Column: 12}),
	}
	require.Len(t, tokens, len(expected))

	for i, tok := range tokens {
		sp := tok.Span()
		assert.Equal(t, tok.Text(), src[sp.Start:sp.End])
		assert.Equal(t, sp.Start, tok.Position().Offset)

		assert.Equal(t, expected[i].Type(), tok.Type())
		assert.Equal(t, expected[i].Span(), sp)
		assert.Equal(t, expected[i].Position(), tok.Position())
		assert.Equal(t, len(tok.Text()), sp.Len())
	}
	assert.Equal(t, 6, tokens[2].Span().Len())

	assert.True(t, tokens[2].Is(TokenString))
	assert.True(t, tokens[2].Escaped())
	assert.False(t, tokens[1].Escaped())
}

func TestStringErrors(t *testing.T) {
	testCases := []struct {
		In      string
		Kind    ErrorKind
		Pos     Position
		Context string
	}{
		{
			`"abc`,
			UnterminatedString,
			Position{Offset: 0, Line: 1, Column: 1},
			`"abc`,
		},
		{
			"(a\n  \"b\\",
			UnterminatedString,
			Position{Offset: 5, Line: 2, Column: 3},
			"\"b\\",
		},
		{
			`"ab\qc"`,
			InvalidEscape,
			Position{Offset: 3, Line: 1, Column: 4},
			`\q`,
		},
		{
			`("\x")`,
			InvalidEscape,
			Position{Offset: 2, Line: 1, Column: 3},
			`\x`,
		},
	}

	for i := range testCases {
		_, err := Tokenize(testCases[i].In)
		require.Error(t, err)

		perr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, testCases[i].Kind, perr.Kind)
		assert.Equal(t, testCases[i].Pos, perr.Pos)
		assert.Equal(t, testCases[i].Context, perr.Context)
	}
}

func TestLexerStickyEnd(t *testing.T) {
	lx := New("a", Options{})

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.True(t, tok.Is(TokenSymbol))

	for i := 0; i < 3; i++ {
		tok, err = lx.Next()
		require.NoError(t, err)
		assert.True(t, tok.Is(TokenEOF))
	}

	lx = New(`"open`, Options{})
	_, err1 := lx.Next()
	_, err2 := lx.Next()
	assert.ErrorIs(t, err1, ErrUnterminatedString)
	assert.Same(t, err1, err2)
}

func TestFastPathEquivalence(t *testing.T) {
	testCases := []string{
		`(+ 1 2)`,
		`(- -1 +2 -a +b - + * / < > = !)`,
		`(1e10 1E+10 1.5e-3 -0.25 12abc 1+2 1-e 3.14.15)`,
		`(+a -> <= >= != == ** // +. -.5)`,
		`("a\"b" c"d"e (f))`,
		`; comment
		(x ; inner
		  y)`,
		`+`,
		`-`,
		`-(`,
		`1(2)3`,
		strings.Repeat("(1 -2 +x ", 50) + strings.Repeat(")", 50),
	}

	for i := range testCases {
		fast, err := New(testCases[i], Options{}).All()
		require.NoError(t, err)

		general, err := New(testCases[i], Options{DisableFastPaths: true}).All()
		require.NoError(t, err)

		if diff := cmp.Diff(general, fast, cmp.AllowUnexported(Token{})); diff != "" {
			t.Errorf("fast path diverged for %q (-general +fast):\n%s", testCases[i], diff)
		}
	}
}

func TestDecodeString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`he said \"hi\"`, `he said "hi"`},
		{`a\\b`, `a\b`},
		{`line\nnext\ttab`, "line\nnext\ttab"},
		{`ü\"ñ`, `ü"ñ`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, DecodeString(testCases[i].In))
		assert.Equal(t, `"`+testCases[i].In+`"`, EncodeString(testCases[i].Out))
	}
}
