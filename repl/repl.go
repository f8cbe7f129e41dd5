package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt used for the first line of an expression.
const DefaultPrompt = "lisp> "

const historyFile = ".qlisp_history"

const helpText = `Enter lisp expressions to evaluate them.  An unterminated expression
continues on the following line.

REPL commands:
  :env     Print the bindings in the innermost frame
  :help    Print this message
  :quit    Exit the REPL (as do exit and (die))
`

// Session evaluates lines of input in a persistent environment.  A Session
// has no terminal of its own so it can be driven by any line source.
type Session struct {
	Env *lisp.LEnv
	Out io.Writer
	Err io.Writer

	buf []string
}

// NewSession returns a Session writing values to out and errors to errw.  The
// session environment is configured by config.
func NewSession(out, errw io.Writer, config ...lisp.Config) *Session {
	config = append([]lisp.Config{lisp.WithStderr(errw), lisp.WithReader(parser.NewReader())}, config...)
	return &Session{
		Env: lisp.NewGlobalEnv(config...),
		Out: out,
		Err: errw,
	}
}

// Pending returns true if the session is holding an incomplete expression.
func (s *Session) Pending() bool {
	return len(s.buf) != 0
}

// Reset discards any incomplete expression.
func (s *Session) Reset() {
	s.buf = nil
}

// Input processes one line.  Input returns true when the user has asked for
// the session to end.
func (s *Session) Input(line string) (stop bool) {
	if !s.Pending() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ":") {
			return s.command(trimmed)
		}
	}
	s.buf = append(s.buf, line)
	text := strings.Join(s.buf, "\n")
	expr, err := parser.Parse(text)
	if parser.IsIncomplete(err) {
		return false
	}
	s.buf = nil
	if err != nil {
		fmt.Fprintln(s.Err, err)
		return false
	}
	v := s.Env.Eval(expr)
	if v.Type == lisp.LError {
		fmt.Fprintln(s.Err, v)
		return v.IsInterrupt()
	}
	fmt.Fprintln(s.Out, v)
	return false
}

func (s *Session) command(cmd string) bool {
	switch cmd {
	case ":env":
		bindings := s.Env.Bindings()
		for _, name := range s.Env.Names() {
			fmt.Fprintf(s.Out, "%s = %v\n", name, bindings[name])
		}
	case ":help":
		fmt.Fprint(s.Out, helpText)
	case ":quit":
		return true
	default:
		fmt.Fprintf(s.Err, "unknown command %s. Type :help for help.\n", cmd)
	}
	return false
}

// RunRepl runs a simple repl on the terminal.  Input history is kept in the
// user's home directory.
func RunRepl(prompt string, config ...lisp.Config) error {
	cfg := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, historyFile)
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	s := NewSession(rl.Stdout(), rl.Stderr(), config...)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.Input(line) {
			return nil
		}
		if s.Pending() {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}
