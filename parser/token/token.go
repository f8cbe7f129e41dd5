package token

import "fmt"

// Token is a lexical unit of source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	if tok.Type == EOF {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Text)
}

// Type identifies the kind of a Token.
type Type uint

// Type constants used by the qlisp lexer and parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	SYMBOL
	NUMBER

	COMMENT

	// NEGATIVE is a '-' immediately followed by a number.
	NEGATIVE

	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

var typeStrings = [numTokenTypes]string{
	INVALID:  "invalid",
	ERROR:    "error",
	EOF:      "EOF",
	SYMBOL:   "symbol",
	NUMBER:   "number",
	COMMENT:  ";",
	NEGATIVE: "-",
	PAREN_L:  "(",
	PAREN_R:  ")",
	BRACE_L:  "{",
	BRACE_R:  "}",
}

func (typ Type) String() string {
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location is a position in a named source.
type Location struct {
	File string
	Pos  int // byte offset, starting at 0
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	file := loc.File
	if file == "" {
		file = "<input>"
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", file, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", file, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", file, loc.Line, loc.Col)
	}
}
