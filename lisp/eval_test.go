package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sexpr(cells ...*LVal) *LVal { return SExpr(cells) }
func qexpr(cells ...*LVal) *LVal { return QExpr(cells) }

func TestEvalSelf(t *testing.T) {
	env := NewGlobalEnv()
	for _, v := range []*LVal{
		Number(3),
		Error(ErrnoDivByZero),
		qexpr(Symbol("undefined")),
		Fun("f", nil, builtinList),
	} {
		assert.Same(t, v, env.Eval(v))
	}
}

func TestEvalShortCircuit(t *testing.T) {
	var called bool
	env := NewGlobalEnv(WithBuiltins(NewBuiltin("mark", Formals(), func(env *LEnv, args *LVal) *LVal {
		called = true
		return Nil()
	})))
	v := env.Eval(sexpr(Symbol("list"), Symbol("undefined"), sexpr(Symbol("mark"))))
	assert.Equal(t, ErrnoUnboundSymbol, v.Errno)
	assert.False(t, called)

	v = env.Eval(sexpr(Symbol("list"), sexpr(Symbol("mark")), Symbol("undefined")))
	assert.Equal(t, ErrnoUnboundSymbol, v.Errno)
	assert.True(t, called)
}

func TestEvalDoesNotModify(t *testing.T) {
	env := NewGlobalEnv()
	expr := sexpr(Symbol("+"), Number(1), sexpr(Symbol("*"), Number(2), Number(3)))
	before := expr.String()
	v := env.Eval(expr)
	assert.Equal(t, "7", v.String())
	assert.Equal(t, before, expr.String())
}

func TestCallBuiltin(t *testing.T) {
	env := NewGlobalEnv()
	add, ok := env.Lookup("+")
	require.True(t, ok)
	v := env.Call(add, qexpr())
	assert.Equal(t, ErrnoIncorrectParamCount, v.Errno)
	assert.Equal(t, "+: incorrect number of arguments: expected at least 1, got 0", v.String())

	v = env.Call(Number(1), qexpr())
	assert.Equal(t, ErrnoBadOp, v.Errno)
}

func TestCallLambda(t *testing.T) {
	env := NewGlobalEnv()
	body := qexpr(Symbol("+"), Symbol("a"), Symbol("b"))
	lam := Lambda(Formals("a", "b"), body, nil)

	v := env.Call(lam, qexpr(Number(2), Number(3)))
	assert.Equal(t, "5", v.String())

	part := env.Call(lam, qexpr(Number(2)))
	require.Equal(t, LLambda, part.Type)
	assert.Equal(t, "{b}", part.Formals.String())
	assert.Equal(t, "2", part.Env["a"].String())
	assert.Empty(t, lam.Env)
	assert.Equal(t, 2, lam.Formals.Len())

	v = env.Call(part, qexpr(Number(4)))
	assert.Equal(t, "6", v.String())

	v = env.Call(lam, qexpr(Number(1), Number(2), Number(3)))
	assert.Equal(t, "lambda: incorrect number of arguments: expected 2, got 3", v.String())

	v = env.Call(Lambda(Formals(), nil, nil), qexpr())
	assert.True(t, v.IsNil())
	assert.Equal(t, 1, env.Depth())
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestCallVariadic(t *testing.T) {
	env := NewGlobalEnv()
	lam := Lambda(Formals("x", VarArgSymbol, "xs"), qexpr(Symbol("xs")), nil)
	v := env.Call(lam, qexpr(Number(1), Number(2), Number(3)))
	assert.Equal(t, "{2 3}", v.String())
	v = env.Call(lam, qexpr(Number(1)))
	assert.Equal(t, "{}", v.String())
	v = env.Call(lam, qexpr())
	assert.Equal(t, LLambda, v.Type)
}

func TestDynamicScope(t *testing.T) {
	for _, dynamic := range []bool{false, true} {
		var config []Config
		if dynamic {
			config = append(config, WithDynamicScope())
		}
		env := NewGlobalEnv(config...)
		env.PutGlobal("a", Number(100))
		geta := Lambda(Formals(), qexpr(Symbol("a")), nil)
		env.PutGlobal("geta", geta)
		f := Lambda(Formals("a"), qexpr(Symbol("geta")), nil)
		v := env.Call(f, qexpr(Number(1)))
		if dynamic {
			assert.Equal(t, "1", v.String())
		} else {
			assert.Equal(t, "100", v.String())
		}
		assert.Equal(t, 1, env.Depth())
	}
}

func TestDefPersists(t *testing.T) {
	env := NewGlobalEnv()
	env.Push(nil)
	env.Push(nil)
	v := env.Eval(sexpr(Symbol("def"), qexpr(Symbol("x")), Number(10)))
	assert.True(t, v.IsNil())
	env.Pop()
	env.Pop()
	v = env.Eval(Symbol("x"))
	assert.Equal(t, "10", v.String())

	env.Push(nil)
	v = env.Eval(sexpr(Symbol("="), qexpr(Symbol("y")), Number(1)))
	assert.True(t, v.IsNil())
	env.Pop()
	v = env.Eval(Symbol("y"))
	assert.Equal(t, ErrnoUnboundSymbol, v.Errno)
}
