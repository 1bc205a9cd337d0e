/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Extensions read flag values through the exported accessors rather than
// the variables, so they never couple to cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/minigrep/extension"
	"github.com/jpl-au/minigrep/internal/config"
	"github.com/jpl-au/minigrep/internal/format"
	"github.com/jpl-au/minigrep/internal/run"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	output     string
	ignoreCase bool
)

// out is the output writer for commands. Tests can replace it.
var out io.Writer = os.Stdout

// errOut receives error messages.
var errOut io.Writer = os.Stderr

// Seams for the two external collaborators of a search.
var (
	lookupEnv config.LookupFunc = os.LookupEnv
	files     run.FileReader    = run.OSFiles{}
)

// Out returns the output writer.
func Out() io.Writer { return out }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == format.JSON }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintStructured writes v as JSON or YAML according to --output and
// reports whether it did. Plain output is left to the caller.
func PrintStructured(v any) (bool, error) {
	switch output {
	case format.JSON:
		return true, PrintJSON(v)
	case format.YAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = out.Write(b)
		return true, err
	}
	return false, nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed, or the original error if not.
func PrintJSONError(err error) error {
	if !JSON() || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, extension.FlagOutput, "o", "", "Output format: json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&ignoreCase, extension.FlagIgnoreCase, "i", false, "Ignore case distinctions (same as setting "+config.EnvIgnoreCase+")")

	_ = rootCmd.RegisterFlagCompletionFunc(extension.FlagOutput, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return format.Formats, cobra.ShellCompDirectiveNoFileComp
	})
}
