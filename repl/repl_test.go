package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	return NewSession(&out, &errw), &out, &errw
}

func TestSession(t *testing.T) {
	s, out, errw := newTestSession()
	assert.False(t, s.Input("(def {x} 2)"))
	assert.False(t, s.Input("+ x 1"))
	assert.False(t, s.Input("   "))
	assert.Equal(t, "()\n3\n", out.String())
	assert.Empty(t, errw.String())
}

func TestSessionContinuation(t *testing.T) {
	s, out, _ := newTestSession()
	assert.False(t, s.Input("(+ 1"))
	assert.True(t, s.Pending())
	assert.False(t, s.Input(""))
	assert.False(t, s.Input("   2)"))
	assert.False(t, s.Pending())
	assert.Equal(t, "3\n", out.String())

	s.Input("{1")
	s.Reset()
	assert.False(t, s.Pending())
}

func TestSessionErrors(t *testing.T) {
	s, out, errw := newTestSession()
	assert.False(t, s.Input("(/ 1 0)"))
	assert.False(t, s.Input(")"))
	assert.False(t, s.Input("1"))
	assert.Equal(t, "1\n", out.String())
	assert.Contains(t, errw.String(), "/: division by zero\n")
	assert.Contains(t, errw.String(), "unexpected-token")
}

func TestSessionStop(t *testing.T) {
	for _, line := range []string{"exit", "(die)", ":quit", "(+ 1 (exit))"} {
		s, _, _ := newTestSession()
		assert.True(t, s.Input(line), line)
	}
}

func TestSessionCommands(t *testing.T) {
	s, out, errw := newTestSession()
	s.Input(":help")
	assert.Contains(t, out.String(), ":env")
	out.Reset()
	s.Input(":env")
	assert.Contains(t, out.String(), "head = <builtin>\n")
	s.Input(":bogus")
	assert.Contains(t, errw.String(), "unknown command :bogus")
}
