// Package format renders search results for CLI display.
//
// Centralises presentation so the orchestration step only decides what
// matched, not how it is printed. Plain output is the default and carries no
// decoration: one matching line per output line, in source order.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Output format names accepted by -o.
const (
	Plain = ""
	JSON  = "json"
	YAML  = "yaml"
)

// ErrUnknownFormat is returned for an output format outside Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the non-default output formats.
var Formats = []string{JSON, YAML}

// Report is the structured form of a completed search.
type Report struct {
	Path       string   `json:"path" yaml:"path"`
	Query      string   `json:"query" yaml:"query"`
	IgnoreCase bool     `json:"ignore_case" yaml:"ignore_case"`
	Count      int      `json:"count" yaml:"count"`
	Lines      []string `json:"lines" yaml:"lines"`
}

// Validate checks that name is a known output format.
func Validate(name string) error {
	if name == Plain || slices.Contains(Formats, name) {
		return nil
	}
	return fmt.Errorf("%w: %s (valid: %v)", ErrUnknownFormat, name, Formats)
}

// Write renders r to w in the named format.
func Write(w io.Writer, name string, r Report) error {
	switch name {
	case Plain:
		return Lines(w, r.Lines)
	case JSON:
		return writeJSON(w, r)
	case YAML:
		return writeYAML(w, r)
	default:
		return Validate(name)
	}
}

// Lines prints each line followed by a newline.
func Lines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, r Report) error {
	if r.Lines == nil {
		r.Lines = []string{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, r Report) error {
	if r.Lines == nil {
		r.Lines = []string{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
