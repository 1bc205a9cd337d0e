// Package core provides the core extension for minigrep.
// It registers commands: guide, version, serve.
package core

import (
	"github.com/jpl-au/minigrep/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the supporting commands that sit beside the search.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newGuideCmd(),
		newVersionCmd(),
		newServeCmd(),
	}
}

// MCPTools returns nil; the search tool lives in the search extension.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
