package lisp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var stderr bytes.Buffer
	env := lisp.NewGlobalEnv(lisp.WithReader(parser.NewReader()), lisp.WithStderr(&stderr))
	v, err := env.LoadString("test", `
; define a helper
(def {double} (\ {x} {* 2 x}))
(double 21)
`)
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	v, err = env.LoadString("test", `(def {y} 1) (head {}) (def {y} 2)`)
	require.NoError(t, err)
	assert.Equal(t, lisp.ErrnoEmptyList, v.Errno)
	y, _ := env.Lookup("y")
	assert.Equal(t, "1", y.String())

	env.DebugPrintError(v)
	assert.True(t, strings.HasPrefix(stderr.String(), "head: empty list\nStack Trace [1 frames"), stderr.String())

	_, err = env.LoadString("test", `(+ 1`)
	assert.Error(t, err)
	assert.True(t, parser.IsIncomplete(err))

	v, err = env.LoadString("test", "")
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	_, err = lisp.NewGlobalEnv().LoadString("test", "1")
	assert.Error(t, err)
}
