package lexer

import (
	"strings"
	"testing"

	"github.com/bmatsuo/qlisp/parser/token"
	"github.com/stretchr/testify/assert"
)

func lexAll(text string) []*token.Token {
	lex := New(token.NewScanner("test", strings.NewReader(text)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		switch tok.Type {
		case token.EOF, token.ERROR, token.INVALID:
			return toks
		}
	}
}

func TestLexer(t *testing.T) {
	toks := lexAll("(+ -1 x_2) ; note\n{\\ &}")
	var types []token.Type
	var text []string
	for _, tok := range toks {
		types = append(types, tok.Type)
		text = append(text, tok.Text)
	}
	assert.Equal(t, []token.Type{
		token.PAREN_L, token.SYMBOL, token.NEGATIVE, token.NUMBER, token.SYMBOL, token.PAREN_R,
		token.COMMENT,
		token.BRACE_L, token.SYMBOL, token.SYMBOL, token.BRACE_R,
		token.EOF,
	}, types)
	assert.Equal(t, []string{"(", "+", "-", "1", "x_2", ")", "; note", "{", `\`, "&", "}", ""}, text)

	assert.Equal(t, "test:2:1", toks[7].Source.String())
	assert.Equal(t, "test:1:4", toks[2].Source.String())
}

func TestLexerSymbols(t *testing.T) {
	for _, text := range []string{"-", "-x", "+", "*", "/", "=", "abc123", "_"} {
		toks := lexAll(text)
		if assert.Len(t, toks, 2, text) {
			assert.Equal(t, token.SYMBOL, toks[0].Type, text)
			assert.Equal(t, text, toks[0].Text)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	for _, text := range []string{"0", "12", "1.5", "2e10", "2.5E-3", "3e+2"} {
		toks := lexAll(text)
		if assert.Len(t, toks, 2, text) {
			assert.Equal(t, token.NUMBER, toks[0].Type, text)
			assert.Equal(t, text, toks[0].Text)
		}
	}
	for _, text := range []string{"1.", "1.e5", "1e", "1e+", "2-3", "1abc", "4_", "1e5x"} {
		toks := lexAll(text)
		assert.Equal(t, token.ERROR, toks[len(toks)-1].Type, text)
	}
}

func TestLexerInvalid(t *testing.T) {
	toks := lexAll("(a \xff)")
	assert.Equal(t, token.ERROR, toks[len(toks)-1].Type)
	toks = lexAll("[")
	assert.Equal(t, token.INVALID, toks[0].Type)
}
