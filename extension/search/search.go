// Package search exposes the single-file search over MCP as the
// minigrep_search tool. The CLI form of the same search is the root command.
package search

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/minigrep/extension"
	"github.com/jpl-au/minigrep/internal/config"
	"github.com/jpl-au/minigrep/internal/log"
	"github.com/jpl-au/minigrep/internal/run"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// ToolName is the MCP tool registered by this extension.
const ToolName = "minigrep_search"

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Commands returns nil; searching is the root command's job.
func (e *Extension) Commands() []*cobra.Command { return nil }

// MCPTools returns the minigrep_search tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool(ToolName,
				mcp.WithDescription("Print every line of a file matching a regular expression (RE2 syntax). Matches anywhere in the line unless anchored."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Regular expression to match against each line")),
				mcp.WithString("file_path", mcp.Required(), mcp.Description("Path of the file to search")),
				mcp.WithBoolean("ignore_case", mcp.Description("Match regardless of letter case. Also enabled when IGNORE_CASE is set in the server environment.")),
			),
			Handler: Handle,
		},
	}
}

// Handle runs a search for an MCP request. Failures are returned as tool
// errors so the client sees the message instead of a transport failure.
func Handle(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	path, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("file_path is required"), nil //nolint:nilerr
	}

	cfg, err := config.Build([]string{ToolName, query, path}, extCtx.Lookup())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if getBool(req, "ignore_case", false) {
		cfg.IgnoreCase = true
	}

	result, err := run.Search(cfg, extCtx.Files())

	log.Event("mcp:"+ToolName, "search").
		Path(path).
		Detail("query", query).
		Detail("ignore_case", cfg.IgnoreCase).
		Detail("count", result.Count()).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(result.Report(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// getBool extracts an optional boolean argument. A missing or non-boolean
// value yields def rather than an error.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}
