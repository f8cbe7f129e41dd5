package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/qlisp/lisp"
	"github.com/spf13/cobra"
)

var dynamicScope bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qlisp",
	Short: "A small lisp with curried lambdas and quoted expressions",
	Long: `qlisp evaluates a small lisp language.  Called without a command it
starts an interactive REPL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return replCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dynamicScope, "dynamic-scope", false,
		"Evaluate lambda bodies in the caller's environment chain")
}

// envConfig returns the lisp.Config for environments created by commands.
func envConfig() []lisp.Config {
	var config []lisp.Config
	if dynamicScope {
		config = append(config, lisp.WithDynamicScope())
	}
	return config
}
