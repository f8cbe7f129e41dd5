package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
	runStack      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := lisp.NewGlobalEnv(append(envConfig(), lisp.WithReader(parser.NewReader()))...)
		err := runSources(env, cmd.OutOrStdout(), args)
		if err != nil {
			log.SetFlags(0)
			log.Print(err)
			os.Exit(1)
		}
	},
}

// runSources evaluates each source named in args in env.  When runPrint is
// set the value of each expression is written to w.
func runSources(env *lisp.LEnv, w io.Writer, args []string) error {
	for _, arg := range args {
		var v *lisp.LVal
		var err error
		if runExpression {
			v, err = runEval(env, w, arg)
		} else {
			v, err = runFile(env, w, arg)
		}
		if err != nil {
			return err
		}
		if v.Type == lisp.LError {
			if runStack {
				env.DebugPrintError(v)
			}
			if v.IsInterrupt() {
				return nil
			}
			return lisp.GoError(v)
		}
	}
	return nil
}

// runEval evaluates an expression argument the way the REPL evaluates a line
// of input.
func runEval(env *lisp.LEnv, w io.Writer, expr string) (*lisp.LVal, error) {
	v, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	v = env.Eval(v)
	if runPrint && v.Type != lisp.LError {
		fmt.Fprintln(w, v)
	}
	return v, nil
}

func runFile(env *lisp.LEnv, w io.Writer, path string) (*lisp.LVal, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !runPrint {
		return env.LoadString(path, string(b))
	}
	exprs, err := parser.ParseExprs(path, string(b))
	if err != nil {
		return nil, err
	}
	v := lisp.Nil()
	for _, expr := range exprs {
		v = env.Eval(expr)
		if v.Type == lisp.LError {
			return v, nil
		}
		fmt.Fprintln(w, v)
	}
	return v, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&runStack, "stack", false,
		"Print a stack trace for errors")
}
