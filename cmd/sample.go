package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/bmatsuo/qlisp/parser"
	"github.com/spf13/cobra"
)

// SampleProgram exercises arithmetic, list manipulation, variadic lambdas and
// partial application.  It evaluates to 144.
const SampleProgram = `
; squares and sums
(def {sq} (\ {x} {* x x}))
(def {sum} (\ {& xs} {eval (join {+ 0} xs)}))

; higher order functions
(def {inc} (\ {x} {+ x 1}))
(def {twice} (\ {f x} {f (f x)}))
(def {compose} (\ {f g x} {f (g x)}))
(def {incsq} (compose inc sq))

(+ (sum 1 2 3 4)
   (twice sq 3)
   (incsq 4)
   (* 2 (+ (* 3 3)
           (- 10 4)
           (/ 12 4))))
`

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Evaluate a built-in sample program",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := runSample(envConfig()...)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		if v.Type == lisp.LError {
			os.Exit(1)
		}
	},
}

func runSample(config ...lisp.Config) (*lisp.LVal, error) {
	env := lisp.NewGlobalEnv(append(config, lisp.WithReader(parser.NewReader()))...)
	return env.LoadString("sample", SampleProgram)
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
