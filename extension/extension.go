// Package extension lets features contribute CLI subcommands and MCP tools
// without touching the root command. Extensions register from init() and
// are collected by cmd and internal/mcp at startup.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for minigrep extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns subcommands to attach to the root command.
	Commands() []*cobra.Command

	// MCPTools returns tools to expose from the MCP server.
	MCPTools() []MCPTool
}
