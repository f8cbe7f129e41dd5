package rdparser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser/lexer"
	"github.com/bmatsuo/qlisp/parser/token"
)

// Conditions reported by SyntaxError.
const (
	CondUnmatched  = "unmatched-syntax"
	CondUnexpected = "unexpected-token"
	CondScan       = "scan-error"
	CondNumber     = "invalid-number"
)

// SyntaxError is returned when source text is not a valid program.
type SyntaxError struct {
	Condition string
	Source    *token.Location
	Msg       string
}

func (err *SyntaxError) Error() string {
	if err.Source == nil {
		return fmt.Sprintf("%s: %s", err.Condition, err.Msg)
	}
	return fmt.Sprintf("%v: %s: %s", err.Source, err.Condition, err.Msg)
}

// Incomplete returns true if the error was caused by the input ending inside
// an unterminated expression.
func (err *SyntaxError) Incomplete() bool {
	return err.Condition == CondUnmatched
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser is a recursive descent lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses every expression in the input and returns them in order.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses the next expression in the input.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseNumber()
	case token.NEGATIVE:
		return p.ParseNegative()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.parseList(token.PAREN_L, token.PAREN_R, lisp.SExpr)
	case token.BRACE_L:
		return p.parseList(token.BRACE_L, token.BRACE_R, lisp.QExpr)
	case token.EOF:
		p.ReadToken()
		return nil, p.errorf(CondUnmatched, "unexpected EOF")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf(CondScan, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf(CondUnexpected, "unexpected %s", p.Token().Type)
	}
}

// ParseNumber parses a number literal.
func (p *Parser) ParseNumber() (*lisp.LVal, error) {
	if !p.expect(token.NUMBER) {
		return nil, p.errorf(CondUnexpected, "invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf(CondNumber, "invalid number literal: %v", text)
	}
	return lisp.Number(x), nil
}

// ParseNegative parses a negated number literal.
func (p *Parser) ParseNegative() (*lisp.LVal, error) {
	if !p.expect(token.NEGATIVE) {
		return nil, p.errorf(CondUnexpected, "invalid negative: %v", p.PeekType())
	}
	switch p.PeekType() {
	case token.NUMBER:
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf(CondScan, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf(CondUnexpected, "unexpected %s following -", p.Token().Type)
	}
	p.peek.Source = p.curr.Source
	p.peek.Text = "-" + p.peek.Text
	return p.ParseNumber()
}

// ParseSymbol parses a symbol.
func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf(CondUnexpected, "invalid symbol: %v", p.PeekType())
	}
	return lisp.Symbol(p.Token().Text), nil
}

func (p *Parser) parseList(open, end token.Type, ctor func([]*lisp.LVal) *lisp.LVal) (*lisp.LVal, error) {
	if !p.expect(open) {
		return nil, p.errorf(CondUnexpected, "expected %s: %v", open, p.PeekType())
	}
	openTok := p.Token()
	var cells []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			err := p.errorf(CondUnmatched, "unmatched %s", openTok.Text)
			err.Source = openTok.Source
			return nil, err
		}
		if p.expect(end) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	return ctor(cells), nil
}

// ReadToken advances the parser one token and returns the new current token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the current token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the token following the current token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the token following the current token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *SyntaxError {
	var src *token.Location
	if p.curr != nil {
		src = p.curr.Source
	}
	return &SyntaxError{
		Condition: condition,
		Source:    src,
		Msg:       fmt.Sprintf(format, v...),
	}
}
