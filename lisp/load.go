package lisp

import (
	"fmt"
	"io"
	"strings"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  The returned LVals are evaluated in order as top-level
	// expressions.
	Read(name string, r io.Reader) ([]*LVal, error)
}

// Load reads the expressions of the named source from r and evaluates them in
// order.  Load returns the value of the last expression.  Evaluation stops at
// the first expression that produces an error, which is returned as the value.
// A non-nil error is returned only when r cannot be read and parsed, in which
// case nothing is evaluated.  The env must have been configured with a
// Reader.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("%s: no reader for environment runtime", name)
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return ret, nil
		}
	}
	return ret, nil
}

// LoadString evaluates the expressions in source, named name.
func (env *LEnv) LoadString(name, source string) (*LVal, error) {
	return env.Load(name, strings.NewReader(source))
}

// DebugPrintError writes a description of lerr and the call stack at the time
// it was created to the runtime's stderr.
func (env *LEnv) DebugPrintError(lerr *LVal) {
	w := env.Runtime.getStderr()
	fmt.Fprintln(w, lerr)
	if lerr.Stack != nil {
		lerr.Stack.DebugPrint(w)
	}
}
