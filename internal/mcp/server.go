// Package mcp implements the Model Context Protocol server, exposing the
// tools contributed by registered extensions over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/minigrep/extension"
	"github.com/jpl-au/minigrep/internal/log"
	"github.com/jpl-au/minigrep/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Name is the server name advertised to clients.
const Name = "minigrep"

// NewServer builds an MCP server with every extension tool registered
// against extCtx.
func NewServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithToolCapabilities(true),
	)
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, bind(t.Handler, extCtx))
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
func bind(h extension.MCPHandler, extCtx extension.Context) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, extCtx, req)
	}
}

// Serve runs the MCP server over stdio until the client disconnects.
// Files are read from the local filesystem and IGNORE_CASE is taken from
// the server's environment.
func Serve() error {
	// stdout carries JSON-RPC; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extension.NewContext(nil, nil))

	slog.Info("minigrep MCP server ready", "version", version.Short(), "transport", "stdio", "tools", len(extension.Tools()))

	err := server.ServeStdio(s)
	log.Event("mcp:serve", "serve").Write(ignoreCanceled(err))
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
