package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// Scanner tracks the line and column of every rune it scans.
type Scanner struct {
	file string
	r    *bufio.Reader

	readErr error
	peek    *Rune

	// next is the location of the rune following c.
	next  Location
	start *Location
	text  strings.Builder
	c     rune
}

// NewScanner initializes and returns a new Scanner that reads source text for
// file from r.
func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file: file,
		r:    bufio.NewReader(r),
		next: Location{File: file, Line: 1, Col: 1},
	}
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.text.Reset()
	s.start = nil
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return s.text.String()
}

// Rune returns the last rune scanned.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or EOF prevents futher runes from being scanned Peek returns
// a false second value and the next call to ScanRune returns the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.peek != nil {
		return s.peek.C, true
	}
	if s.readErr != nil {
		return 0, false
	}
	c, n, err := s.r.ReadRune()
	if err != nil {
		s.readErr = err
		return 0, false
	}
	r := Rune{c, n}
	if r.IsRuneError() {
		s.readErr = fmt.Errorf("%v: invalid utf-8 sequence in source text", &s.next)
		return utf8.RuneError, false
	}
	s.peek = &r
	return c, true
}

// ScanRune scans the next rune from the input for inclusion in the current
// token.  ScanRune returns io.EOF at the end of the input.
func (s *Scanner) ScanRune() error {
	if _, ok := s.Peek(); !ok {
		return s.readErr
	}
	r := *s.peek
	s.peek = nil
	if s.start == nil {
		loc := s.next
		s.start = &loc
	}
	s.text.WriteRune(r.C)
	s.c = r.C
	s.next.Pos += r.N
	if r.C == '\n' {
		s.next.Line++
		s.next.Col = 1
	} else {
		s.next.Col++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	if s.start != nil {
		loc := *s.start
		return &loc
	}
	return s.Loc()
}

// Loc returns a Location referencing the position of the next rune to be
// scanned.
func (s *Scanner) Loc() *Location {
	loc := s.next
	return &loc
}

// Rune contains a rune that read by Scanner during peeking operations.
type Rune struct {
	C rune
	N int
}

// IsRuneError returns true if Rune represents an invalid utf-8 sequence.
func (r Rune) IsRuneError() bool {
	return r.C == utf8.RuneError && r.N == 1
}
