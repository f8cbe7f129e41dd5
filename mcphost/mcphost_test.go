package mcphost

import (
	"context"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func eval(t *testing.T, h *Host, expr string) *mcp.CallToolResult {
	t.Helper()
	result, err := h.HandleEval(context.Background(), callRequest("qlisp_eval", map[string]any{"expr": expr}))
	require.NoError(t, err)
	return result
}

func TestEval(t *testing.T) {
	h := New()
	result := eval(t, h, "(def {sq} (\\ {x} {* x x}))")
	assert.False(t, result.IsError)
	assert.Equal(t, "()", resultText(t, result))

	result = eval(t, h, "(sq 4)")
	assert.False(t, result.IsError)
	assert.Equal(t, "16", resultText(t, result))

	result = eval(t, h, "(head {})")
	assert.True(t, result.IsError)
	assert.Equal(t, "head: empty list", resultText(t, result))

	result = eval(t, h, "(+ 1")
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unmatched-syntax")

	result, err := h.HandleEval(context.Background(), callRequest("qlisp_eval", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestEnvAndReset(t *testing.T) {
	h := New()
	eval(t, h, "(def {answer} 42)")
	result, err := h.HandleEnv(context.Background(), callRequest("qlisp_env", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "answer = 42\n")

	_, err = h.HandleReset(context.Background(), callRequest("qlisp_reset", nil))
	require.NoError(t, err)
	result = eval(t, h, "answer")
	assert.True(t, result.IsError)
	assert.Equal(t, "unbound symbol: answer", resultText(t, result))
}

func TestConcurrentEval(t *testing.T) {
	h := New()
	eval(t, h, "(def {n} 0)")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HandleEval(context.Background(), callRequest("qlisp_eval", map[string]any{"expr": "(def {n} (+ n 1))"}))
		}()
	}
	wg.Wait()
	assert.Equal(t, "8", resultText(t, eval(t, h, "n")))
}

func TestServer(t *testing.T) {
	assert.NotNil(t, New().Server())
}
