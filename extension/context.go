// context.go defines what extensions may reach from the host process.
//
// Handlers receive a Context instead of calling os directly so that tests
// can substitute an in-memory file reader and a fixed environment.

package extension

import (
	"os"

	"github.com/jpl-au/minigrep/internal/config"
	"github.com/jpl-au/minigrep/internal/run"
)

// Context provides extensions controlled access to host resources.
type Context interface {
	// Files returns the reader used to load searched files.
	Files() run.FileReader

	// Lookup returns the environment lookup used when building configs.
	Lookup() config.LookupFunc
}

type extContext struct {
	files  run.FileReader
	lookup config.LookupFunc
}

// NewContext creates a Context. Nil arguments fall back to the local
// filesystem and the process environment.
func NewContext(files run.FileReader, lookup config.LookupFunc) Context {
	if files == nil {
		files = run.OSFiles{}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &extContext{files: files, lookup: lookup}
}

func (c *extContext) Files() run.FileReader { return c.files }

func (c *extContext) Lookup() config.LookupFunc { return c.lookup }
