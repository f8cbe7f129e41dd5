package cmd

import (
	"github.com/bmatsuo/qlisp/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lisp session",
	Long: `Start an interactive lisp session.  Evaluate exit or (die) to end the
session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.RunRepl(replPrompt, envConfig()...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"Prompt displayed when reading an expression")
}
