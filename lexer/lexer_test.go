/*
File : rocket/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestLexer_PunctuationAndIdents(t *testing.T) {
	toks := allTokens(t, `{ } ( ) [ ] , ; : . = abc a12 _x9`)
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		LBRACE, RBRACE, LPAREN, RPAREN, LBRACKET, RBRACKET,
		COMMA, SEMI, COLON, DOT, ASSIGN,
		IDENT, IDENT, IDENT, EOF,
	}, types)
}

func TestLexer_Keywords(t *testing.T) {
	toks := allTokens(t, `let fn if else while for of return break continue null true false`)
	want := []TokenType{LET, FN, IF, ELSE, WHILE, FOR, OF, RETURN, BREAK, CONTINUE, NULL, TRUE, FALSE, EOF}
	for i, tok := range toks {
		assert.Equal(t, want[i], tok.Type)
	}
}

func TestLexer_NumberLiterals(t *testing.T) {
	toks := allTokens(t, `42 3.14 0 0.5`)
	require.Len(t, toks, 5)
	assert.Equal(t, INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, INT, toks[2].Type)
	assert.Equal(t, FLOAT, toks[3].Type)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\nb\t\"c\\d"`)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\nb\t\"c\\d", toks[0].Literal)
}

func TestLexer_Comments(t *testing.T) {
	toks := allTokens(t, "1 // trailing comment\n/* block\ncomment */ 2")
	require.Len(t, toks, 3)
	assert.Equal(t, "1", toks[0].Literal)
	assert.Equal(t, "2", toks[1].Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`"abc`)
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LexError")
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	l := New(`/* never closed`)
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LexError")
}

func TestLexer_UnknownCharacter(t *testing.T) {
	l := New(`@`)
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LexError")
}

// TestLexer_PositionsMonotonic verifies the testable property from the
// language spec: lexing then reading each token's position yields
// monotonically non-decreasing (line, column) order.
func TestLexer_PositionsMonotonic(t *testing.T) {
	src := "let x = 1;\nfn f(a, b) {\n  return add(a, b);\n}\nprint(f(x, 2));"
	toks := allTokens(t, src)
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Pos, toks[i].Pos
		if cur.Line == prev.Line {
			assert.GreaterOrEqual(t, cur.Col, prev.Col)
		} else {
			assert.Greater(t, cur.Line, prev.Line)
		}
	}
}
