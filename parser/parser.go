/*
Package parser provides a lisp parser.

	program  := <expr>*
	expr     := <sexpr> | <qexpr> | <number> | <symbol>
	sexpr    := '(' <expr>* ')'
	qexpr    := '{' <expr>* '}'
	number   := '-'? /[0-9]+/ <fraction>? <exponent>?
	fraction := '.' /[0-9]+/
	exponent := [eE] [+-]? /[0-9]+/
	symbol   := /[[:alnum:]_+\-*\/\\=&]+/

A ';' begins a comment that extends to the end of the line.
*/
package parser

import (
	"errors"
	"strings"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser/rdparser"
	"github.com/bmatsuo/qlisp/parser/token"
)

// Parse parses text and returns a single S-expression whose cells are the
// top-level expressions in text.  Evaluating the returned value evaluates the
// program the way an interactive prompt would evaluate a line of input.
func Parse(text string) (*lisp.LVal, error) {
	exprs, err := ParseExprs("", text)
	if err != nil {
		return nil, err
	}
	return lisp.SExpr(exprs), nil
}

// ParseExprs parses the top-level expressions in text, which is named by
// file in syntax errors.
func ParseExprs(file string, text string) ([]*lisp.LVal, error) {
	p := rdparser.New(token.NewScanner(file, strings.NewReader(text)))
	return p.ParseProgram()
}

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// IsIncomplete returns true if err was caused by input ending inside an
// unterminated expression, meaning more input could make it valid.
func IsIncomplete(err error) bool {
	var serr *rdparser.SyntaxError
	return errors.As(err, &serr) && serr.Incomplete()
}
