/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command, which is the search itself, and the
// process entry point.
//
// Errors from every layer (usage, file read, pattern compilation) travel up
// unhandled to Execute, which prints one message and exits non-zero.
// Nothing is printed to stdout before a search has fully succeeded.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/jpl-au/minigrep/extension"
	"github.com/jpl-au/minigrep/internal/config"
	"github.com/jpl-au/minigrep/internal/format"
	"github.com/jpl-au/minigrep/internal/log"
	"github.com/jpl-au/minigrep/internal/run"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] <query> <file_path>",
	Short: "Print the lines of a file that match a regular expression",
	Long: `Print every line of a file that matches a regular expression (RE2 syntax).

  minigrep duct poem.txt                 # lines containing "duct"
  minigrep '^sa\w+' poem.txt             # lines starting with "sa" + word chars
  IGNORE_CASE=1 minigrep rust poem.txt   # case-insensitive
  minigrep -i rust poem.txt              # same, via flag
  minigrep -o json duct poem.txt         # structured output

A pattern matches anywhere in a line unless anchored. Zero matches is not
an error. A query that starts with "-" goes after "--":

  minigrep -- -1 numbers.txt

A query spelled like a subcommand (help, guide, version, serve) is searched
for when a file follows it. See 'minigrep guide' for more.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return format.Validate(output)
	},
	RunE: runSearch,
}

func runSearch(c *cobra.Command, args []string) error {
	cfg, err := config.Build(append([]string{c.Root().Name()}, args...), lookupEnv)
	if err != nil {
		return err
	}
	if ignoreCase {
		cfg.IgnoreCase = true
	}

	result, err := run.Run(out, cfg, run.Options{Files: files, Format: output})

	log.Event("cli:search", "search").
		Path(cfg.FilePath).
		Detail("query", cfg.Query).
		Detail("ignore_case", cfg.IgnoreCase).
		Detail("count", result.Count()).
		Write(err)

	return err
}

// SearchAs runs the search with the name of c as the query and args[0] as
// the file, so "minigrep version notes.txt" searches notes.txt for
// "version" rather than rejecting the extra argument.
func SearchAs(c *cobra.Command, args []string) error {
	return runSearch(c, append([]string{c.Name()}, args...))
}

// helpCmd replaces cobra's help command. Given a subcommand name it shows
// that command's help; given anything else it searches for "help".
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return rootCmd.Help()
		}
		if target, _, err := rootCmd.Find(args[:1]); err == nil && target != rootCmd {
			return target.Help()
		}
		return SearchAs(c, args)
	},
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		report(err)
		os.Exit(1)
	}
}

// report prints err for the user, as a JSON object when -o json is set.
func report(err error) {
	if PrintJSONError(err) == nil {
		return
	}
	fmt.Fprintf(errOut, "%s: %v\n", rootCmd.Name(), err)
}

var extensionsOnce sync.Once

// registerExtensions attaches subcommands from all registered extensions.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, c := range ext.Commands() {
				rootCmd.AddCommand(c)
			}
		}
	})
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	// "completion" stays available as a query.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
