package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack(t *testing.T) {
	var s CallStack
	assert.Nil(t, s.Top())
	s.Push("lambda", 2)
	s.Push("head", 1)
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, "head", s.Top().Name)

	cp := s.Copy()
	var buf bytes.Buffer
	_, err := cp.DebugPrint(&buf)
	assert.NoError(t, err)
	assert.Equal(t, `Stack Trace [2 frames -- entrypoint last]:
  height 1: head [1 args]
  height 0: lambda [2 args]
`, buf.String())

	f := s.Pop()
	assert.Equal(t, CallFrame{"head", 1}, f)
	s.Pop()
	assert.Panics(t, func() { s.Pop() })
	assert.Equal(t, 2, cp.Height())
	assert.Equal(t, 0, (*CallStack)(nil).Height())
}
