// guide.go implements "minigrep guide".
//
// Guides are embedded in the binary. A terminal gets glamour rendering;
// a pipe or redirect gets the raw markdown.

package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/minigrep/cmd"
	"github.com/jpl-au/minigrep/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the minigrep usage guide",
		Long: `Outputs the minigrep guide.

  minigrep guide            # main guide
  minigrep guide patterns   # regular expression syntax
  minigrep guide mcp        # running as an MCP server

An argument that is not a topic is taken as a file to search for "guide".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil || len(args) > 1 {
				return searchGuide(c, args)
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}

// searchGuide searches args[0] for "guide". A missing file error also lists
// the guide topics.
func searchGuide(c *cobra.Command, args []string) error {
	err := cmd.SearchAs(c, args)
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	available, listErr := guide.List()
	if listErr != nil {
		return err
	}
	return fmt.Errorf("%w (no guide topic %q either. Available: %s)", err, args[0], strings.Join(available, ", "))
}
