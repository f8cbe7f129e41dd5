// Package lisptest runs table-driven sequences of lisp expressions against
// fresh environments.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.LEnv.  Each Expr is evaluated the way a line typed
// at the interactive prompt is.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns an environment with the default builtins and a reader,
// configured additionally by config.
func NewEnv(config ...lisp.Config) *lisp.LEnv {
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	return lisp.NewGlobalEnv(config...)
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs
// constructed with config.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for i, test := range tests {
		env := NewEnv(config...)
		for j, expr := range test.TestSequence {
			v, err := parser.Parse(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			lval := env.Eval(v)
			result := lval.String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
				if lval.Type == lisp.LError && lval.Stack != nil {
					var buf bytes.Buffer
					lval.Stack.DebugPrint(&buf)
					t.Log(buf.String())
				}
			}
			if env.Runtime.Stack.Height() != 0 {
				t.Errorf("test %d %q: expr %d: call stack not unwound: %d frames", i, test.Name, j, env.Runtime.Stack.Height())
			}
		}
	}
}
