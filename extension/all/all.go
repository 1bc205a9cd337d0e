// Package all imports all built-in minigrep extensions.
// Import this package to register every command and MCP tool.
package all

import (
	_ "github.com/jpl-au/minigrep/extension/core"
	_ "github.com/jpl-au/minigrep/extension/search"
)
