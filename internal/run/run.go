// Package run wires file loading, matching and output together for a single
// search.
//
// The whole file is read and the whole content scanned before anything is
// written, so a failed run never produces partial output.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jpl-au/minigrep/internal/config"
	"github.com/jpl-au/minigrep/internal/format"
	"github.com/jpl-au/minigrep/internal/grep"
)

// FileReader loads a file's full contents.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSFiles reads from the local filesystem.
type OSFiles struct{}

// ReadFile implements FileReader using os.ReadFile.
func (OSFiles) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ErrInvalidUTF8 is wrapped in a ReadError for a file that is not text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadError reports a file that could not be loaded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Options configures a run.
type Options struct {
	Files  FileReader // nil uses OSFiles
	Format string     // output format, see package format
}

// Result holds the outcome of a successful run. Spans index into Content.
type Result struct {
	Path       string
	Query      string
	IgnoreCase bool
	Content    string
	Spans      []grep.Span
}

// Count returns the number of matching lines.
func (r Result) Count() int { return len(r.Spans) }

// Lines returns the matching lines in source order.
func (r Result) Lines() []string {
	lines := make([]string, len(r.Spans))
	for i, s := range r.Spans {
		lines[i] = s.Text(r.Content)
	}
	return lines
}

// Report converts the result into its printable form.
func (r Result) Report() format.Report {
	return format.Report{
		Path:       r.Path,
		Query:      r.Query,
		IgnoreCase: r.IgnoreCase,
		Count:      r.Count(),
		Lines:      r.Lines(),
	}
}

// Search reads cfg.FilePath and matches it against cfg.Query without
// writing anything.
func Search(cfg config.Config, files FileReader) (Result, error) {
	result := Result{
		Path:       cfg.FilePath,
		Query:      cfg.Query,
		IgnoreCase: cfg.IgnoreCase,
	}

	m, err := grep.Compile(cfg.Query, cfg.IgnoreCase)
	if err != nil {
		return result, err
	}

	if files == nil {
		files = OSFiles{}
	}
	data, err := files.ReadFile(cfg.FilePath)
	if err != nil {
		return result, &ReadError{Path: cfg.FilePath, Err: err}
	}
	if !utf8.Valid(data) {
		return result, &ReadError{Path: cfg.FilePath, Err: ErrInvalidUTF8}
	}

	result.Content = string(data)
	result.Spans = m.Spans(result.Content)
	return result, nil
}

// Run performs the search described by cfg and writes the matching lines
// to w in the requested format.
func Run(w io.Writer, cfg config.Config, opts Options) (Result, error) {
	if err := format.Validate(opts.Format); err != nil {
		return Result{}, err
	}

	result, err := Search(cfg, opts.Files)
	if err != nil {
		return result, err
	}

	if err := format.Write(w, opts.Format, result.Report()); err != nil {
		return result, fmt.Errorf("writing results: %w", err)
	}
	return result, nil
}
