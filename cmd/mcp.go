package cmd

import (
	"log"

	"github.com/bmatsuo/qlisp/mcphost"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve a lisp session as MCP tools over stdio",
	Long: `Serve a persistent lisp session to a Model Context Protocol client over
stdin and stdout.  Diagnostics are logged to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		log.Printf("qlisp mcp %s serving on stdio", mcphost.Version)
		return mcphost.New(envConfig()...).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
