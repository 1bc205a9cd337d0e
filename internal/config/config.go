// Package config builds the immutable search configuration from raw process
// arguments and a single environment lookup.
//
// The environment is injected as a LookupFunc rather than read directly so
// that Build is a pure function of its inputs. Callers pass os.LookupEnv in
// production and a map-backed lookup in tests.
package config

import (
	"errors"
	"fmt"
)

// EnvIgnoreCase enables case-insensitive matching when present in the
// environment. Only its existence is checked; the value is ignored.
const EnvIgnoreCase = "IGNORE_CASE"

// Usage is the positional argument synopsis shown on usage errors.
const Usage = "<query> <file_path>"

// ErrNotEnoughArgs is returned when fewer than two positional arguments
// (three including the program name) are supplied.
var ErrNotEnoughArgs = errors.New("not enough arguments")

// LookupFunc reports whether an environment key is set, and its value.
// os.LookupEnv satisfies this signature.
type LookupFunc func(key string) (string, bool)

// Config holds the validated inputs for a single search.
type Config struct {
	Query      string // pattern, compiled later by the searcher
	FilePath   string // file to read, not checked for existence here
	IgnoreCase bool   // set iff IGNORE_CASE is present
}

// Build constructs a Config from args, where args[0] is the program name and
// args[1], args[2] are the query and file path. Extra arguments are ignored.
// A nil lookup is treated as an empty environment.
func Build(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 3 {
		return Config{}, fmt.Errorf("%w: usage: %s %s", ErrNotEnoughArgs, programName(args), Usage)
	}

	ignoreCase := false
	if lookup != nil {
		_, ignoreCase = lookup(EnvIgnoreCase)
	}

	return Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// MapLookup returns a LookupFunc backed by m.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func programName(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "minigrep"
}
