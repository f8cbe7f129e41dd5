package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		v   *LVal
		str string
	}{
		{Number(6), "6"},
		{Number(-5), "-5"},
		{Number(0.5), "0.5"},
		{Number(1e21), "1e+21"},
		{Number(math.Copysign(0, -1)), "0"},
		{Symbol("x"), "x"},
		{Nil(), "()"},
		{QExpr(nil), "{}"},
		{SExpr([]*LVal{Symbol("+"), Number(1), QExpr([]*LVal{Number(2)})}), "(+ 1 {2})"},
		{Fun("head", Formals("lis"), nil), "<builtin>"},
		{Lambda(Formals("a", "b"), QExpr([]*LVal{Symbol("+"), Symbol("a"), Symbol("b")}), nil), `(\ {a b} {+ a b})`},
		{Error(ErrnoEmptyList), "empty list"},
	}
	for _, test := range tests {
		assert.Equal(t, test.str, test.v.String())
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.False(t, Equal(Number(1), Symbol("1")))
	assert.True(t, Equal(QExpr([]*LVal{Number(1)}), QExpr([]*LVal{Number(1)})))
	assert.False(t, Equal(QExpr([]*LVal{Number(1)}), SExpr([]*LVal{Number(1)})))
	assert.False(t, Equal(QExpr([]*LVal{Number(1)}), QExpr([]*LVal{Number(1), Number(2)})))

	// any two builtins are equal
	assert.True(t, Equal(Fun("+", nil, builtinAdd), Fun("head", nil, builtinHead)))

	lam := Lambda(Formals("b"), QExpr([]*LVal{Symbol("b")}), Scope{"a": Number(1)})
	assert.True(t, Equal(lam, lam.Copy()))
	other := lam.Copy()
	other.Env["a"] = Number(2)
	assert.False(t, Equal(lam, other))

	assert.True(t, Equal(Error(ErrnoBadOp), Error(ErrnoBadOp)))
	assert.False(t, Equal(Error(ErrnoBadOp), Error(ErrnoBadNum)))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Nil(), nil))
}

func TestCopy(t *testing.T) {
	lam := Lambda(Formals("a", "b"), QExpr(nil), Scope{"x": Number(1)})
	cp := lam.Copy()
	cp.Env["y"] = Number(2)
	cp.Formals.Cells = cp.Formals.Cells[1:]
	assert.Len(t, lam.Env, 1)
	assert.Equal(t, 2, lam.Formals.Len())

	q := QExpr([]*LVal{Number(1)})
	qcp := q.Copy()
	qcp.Cells[0] = Number(2)
	assert.Equal(t, "{1}", q.String())
	assert.Nil(t, (*LVal)(nil).Copy())
}

func TestPredicates(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, QExpr(nil).IsNil())
	assert.True(t, Fun("die", Formals(), builtinDie).IsNiladic())
	assert.False(t, Fun("head", Formals("lis"), builtinHead).IsNiladic())
	assert.False(t, Fun("f", nil, builtinHead).IsNiladic())
	assert.True(t, Lambda(Formals(), QExpr(nil), nil).IsNiladic())
	assert.False(t, Number(1).IsCallable())
	assert.Equal(t, "qexpr", LQExpr.String())
	assert.Equal(t, "INVALID", LValType(99).String())
}
