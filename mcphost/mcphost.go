// Package mcphost exposes a persistent lisp environment as Model Context
// Protocol tools.
package mcphost

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Host owns the environment that tool calls evaluate in.  Tool calls may
// arrive concurrently and are evaluated one at a time.
type Host struct {
	config []lisp.Config

	mu  sync.Mutex
	env *lisp.LEnv
}

// New returns a Host whose environments are configured by config.
func New(config ...lisp.Config) *Host {
	h := &Host{config: config}
	h.env = h.newEnv()
	return h
}

func (h *Host) newEnv() *lisp.LEnv {
	config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, h.config...)
	return lisp.NewGlobalEnv(config...)
}

// Server returns an MCP server with the host's tools registered.
func (h *Host) Server() *server.MCPServer {
	s := server.NewMCPServer(
		"qlisp",
		Version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("qlisp_eval",
			mcp.WithDescription("Evaluate qlisp source in a persistent session. Definitions made with def remain for later calls. Returns the printed value."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Source to evaluate, e.g. (def {sq} (\\ {x} {* x x})) or (sq 4)"),
			),
		),
		h.HandleEval,
	)

	s.AddTool(
		mcp.NewTool("qlisp_env",
			mcp.WithDescription("List the global bindings of the session, one per line."),
		),
		h.HandleEnv,
	)

	s.AddTool(
		mcp.NewTool("qlisp_reset",
			mcp.WithDescription("Discard every definition and start a fresh session."),
		),
		h.HandleReset,
	)

	return s
}

// ServeStdio serves the host's tools over stdin and stdout.
func (h *Host) ServeStdio() error {
	return server.ServeStdio(h.Server())
}

// HandleEval evaluates the expr argument.
func (h *Host) HandleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := parser.Parse(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	v = h.env.Eval(v)
	if v.Type == lisp.LError {
		log.Printf("qlisp_eval: %v", v)
		return mcp.NewToolResultError(v.String()), nil
	}
	return mcp.NewToolResultText(v.String()), nil
}

// HandleEnv lists the session's global bindings.
func (h *Host) HandleEnv(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var buf strings.Builder
	bindings := h.env.Bindings()
	for _, name := range h.env.Names() {
		fmt.Fprintf(&buf, "%s = %v\n", name, bindings[name])
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleReset replaces the session environment with a fresh one.
func (h *Host) HandleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.env = h.newEnv()
	log.Printf("qlisp_reset: session cleared")
	return mcp.NewToolResultText("()"), nil
}
