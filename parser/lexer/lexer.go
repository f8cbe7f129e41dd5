package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bmatsuo/qlisp/parser/token"
)

// wordSymbols are the non-alphanumeric runes allowed in a symbol.
const wordSymbols = `_+-*/\=&`

// Lexer splits the runes read by a token.Scanner into tokens.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// readErr is the error that stopped the scanner, if any
	readErr error
}

// New returns a Lexer that reads runes from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// NextToken returns the next token in the input.  After the input has been
// consumed NextToken returns EOF tokens indefinitely.  If the input cannot be
// read NextToken returns ERROR tokens.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if lex.skipWhitespace() != nil {
		return lex.emitError(lex.readErr, true)
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '{':
		return lex.scanner.EmitToken(token.BRACE_L)
	case '}':
		return lex.scanner.EmitToken(token.BRACE_R)
	case ';':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				break
			}
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '-':
		if isDigit(lex.peekRune()) {
			return lex.scanner.EmitToken(token.NEGATIVE)
		}
		return lex.readSymbol()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		if isWordStart(lex.ch) {
			return lex.readSymbol()
		}
		return lex.emit(token.INVALID, fmt.Sprintf("unexpected text starting with %q", lex.ch))
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emit(token.ERROR, fmt.Sprintf(format, v...))
}

func (lex *Lexer) readSymbol() *token.Token {
	for isWord(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

// readNumber scans decimal notation with an optional fraction and exponent.
// A number must not run into a symbol.  The text may still overflow a float64,
// which is found at parse time.
func (lex *Lexer) readNumber() *token.Token {
	if !lex.readDigits() {
		return lex.emitError(lex.readErr, false)
	}
	if lex.peekRune() == '.' {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid number literal: %v", lex.scanner.Text())
		}
		if !lex.readDigits() {
			return lex.emitError(lex.readErr, false)
		}
	}
	switch lex.peekRune() {
	case 'e', 'E':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		switch lex.peekRune() {
		case '+', '-':
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid number literal: %v", lex.scanner.Text())
		}
		if !lex.readDigits() {
			return lex.emitError(lex.readErr, false)
		}
	}
	if isWord(lex.peekRune()) {
		for isWord(lex.peekRune()) {
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
		return lex.errorf("invalid number literal: %v", lex.scanner.Text())
	}
	return lex.scanner.EmitToken(token.NUMBER)
}

func (lex *Lexer) readDigits() bool {
	for isDigit(lex.peekRune()) {
		if lex.readChar() != nil {
			return false
		}
	}
	return true
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.readErr
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(wordSymbols, c)
}

func isWord(c rune) bool {
	return isWordStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
