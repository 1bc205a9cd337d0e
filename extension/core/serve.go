// serve.go implements "minigrep serve", which blocks serving MCP requests
// over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/minigrep/cmd"
	"github.com/jpl-au/minigrep/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Exposes the minigrep_search tool. IGNORE_CASE in the server's environment
applies to every call; the tool's ignore_case argument enables it per call.

With a file argument, searches that file for "serve" instead.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.SearchAs(c, args)
			}
			return mcp.Serve()
		},
	}
}
