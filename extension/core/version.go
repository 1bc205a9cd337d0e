// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/minigrep/cmd"
	"github.com/jpl-au/minigrep/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print build tag, build time, git commit, Go version and platform.

With a file argument, searches that file for "version" instead.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.SearchAs(c, args)
			}
			info := version.Get()
			if done, err := cmd.PrintStructured(info); done {
				return err
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
}
