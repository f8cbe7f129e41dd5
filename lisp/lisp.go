package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LError
	LSymbol
	LSExpr
	LQExpr
	LFun
	LLambda
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LError:   "error",
	LSymbol:  "symbol",
	LSExpr:   "sexpr",
	LQExpr:   "qexpr",
	LFun:     "builtin",
	LLambda:  "lambda",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a function that performs executes a lisp function.  The
// operands of the call are the Cells of args.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  LVal values are not modified after they are
// constructed, functions which need a different value build a new one.
type LVal struct {
	Type LValType

	// Num is the value of an LNumber.
	Num float64

	// Str is the name of an LSymbol or LFun, or the message of an LError.
	Str string

	// Cells are the elements of an LSExpr or LQExpr.
	Cells []*LVal

	// Errno classifies an LError.
	Errno Errno

	// Stack is a copy of the call stack at the time an LError was created.
	Stack *CallStack

	// Variables needed for function values
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
	Env     Scope
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a symbolic expression.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// QExpr returns an LVal representing an Q-expression, a quoted expression, a
// list.
func QExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LQExpr,
		Cells: cells,
	}
}

// Nil returns the empty S-expression, the value of expressions that have
// nothing to return.
func Nil() *LVal {
	return SExpr(nil)
}

// Fun returns an LVal representing the builtin function fn, bound to name.
// The formals document the arguments fn expects.
func Fun(name string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Formals: formals,
		Builtin: fn,
	}
}

// Lambda returns anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The returned function owns scope, its frame of bindings, which may be nil.
func Lambda(formals *LVal, body *LVal, scope Scope) *LVal {
	if scope == nil {
		scope = make(Scope)
	}
	return &LVal{
		Type:    LLambda,
		Formals: formals,
		Body:    body,
		Env:     scope,
	}
}

// Formals returns a QExpr of symbols used to document builtin arguments.
func Formals(argSymbols ...string) *LVal {
	cells := make([]*LVal, len(argSymbols))
	for i, name := range argSymbols {
		cells[i] = Symbol(name)
	}
	return QExpr(cells)
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// IsNil returns true if v is the empty S-expression.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// IsCallable returns true if v may be applied to arguments.
func (v *LVal) IsCallable() bool {
	return v.Type == LFun || v.Type == LLambda
}

// IsNiladic returns true if v is a function that takes no arguments.
func (v *LVal) IsNiladic() bool {
	return v.IsCallable() && v.Formals != nil && len(v.Formals.Cells) == 0
}

// Copy creates a copy of the receiver that may be bound without affecting v.
// Cells are shallow copied because LVals are never modified in place, but a
// function's frame is copied so the copy can receive its own bindings.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v
	if v.Cells != nil {
		cp.Cells = make([]*LVal, len(v.Cells))
		copy(cp.Cells, v.Cells)
	}
	if v.Formals != nil {
		cp.Formals = QExpr(append([]*LVal(nil), v.Formals.Cells...))
	}
	if v.Env != nil {
		cp.Env = v.Env.Copy()
	}
	return cp
}

// Equal returns true if a and b represent the same value.  Builtin functions
// are considered equal to each other regardless of which function they
// reference.
func Equal(a, b *LVal) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LNumber:
		return a.Num == b.Num
	case LSymbol:
		return a.Str == b.Str
	case LError:
		return a.Errno == b.Errno && a.Str == b.Str
	case LSExpr, LQExpr:
		return cellsEqual(a.Cells, b.Cells)
	case LFun:
		return true
	case LLambda:
		if !Equal(a.Formals, b.Formals) || !Equal(a.Body, b.Body) {
			return false
		}
		if len(a.Env) != len(b.Env) {
			return false
		}
		for k, v := range a.Env {
			if !Equal(v, b.Env[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func cellsEqual(a, b []*LVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		if v.Num == 0 {
			// negative zero prints without a sign
			return "0"
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LError:
		return v.Str
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v.Cells, "(", ")")
	case LQExpr:
		return exprString(v.Cells, "{", "}")
	case LFun:
		return "<builtin>"
	case LLambda:
		return fmt.Sprintf(`(\ %v %v)`, v.Formals, v.Body)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(cells []*LVal, left string, right string) string {
	if len(cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
