// Package grep provides regex-based line matching over a text blob.
//
// Results are returned as Spans, byte ranges into the searched content,
// so callers hold views rather than copies. A Span is only meaningful
// alongside the content it was produced from.
package grep

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is matched by every PatternError via errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// PatternError reports a query that is not valid RE2 syntax.
type PatternError struct {
	Query string
	Err   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Query, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidPattern) match without losing the
// underlying regexp error from the chain.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// Span is a half-open byte range [Start, End) of a single line, excluding
// its line terminator.
type Span struct {
	Start int
	End   int
}

// Text returns the line the span refers to. The result shares memory with
// content.
func (s Span) Text(content string) string {
	return content[s.Start:s.End]
}

// Lines splits content at "\n" boundaries. A "\r" directly before the "\n"
// is dropped from the line. A trailing newline does not produce an extra
// empty line, and empty content produces no lines.
func Lines(content string) []Span {
	var spans []Span
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		if end > start && content[end-1] == '\r' {
			end--
		}
		spans = append(spans, Span{Start: start, End: end})
		start = i + 1
	}
	if start < len(content) {
		spans = append(spans, Span{Start: start, End: len(content)})
	}
	return spans
}

// Matcher tests lines against a compiled query.
type Matcher struct {
	re         *regexp.Regexp
	query      string
	ignoreCase bool
}

// Compile builds a Matcher for query. With ignoreCase the whole pattern is
// compiled under the (?i) flag, which covers literals and character classes.
func Compile(query string, ignoreCase bool) (*Matcher, error) {
	expr := query
	if ignoreCase {
		expr = "(?i)" + query
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Query: query, Err: err}
	}
	return &Matcher{re: re, query: query, ignoreCase: ignoreCase}, nil
}

// Query returns the pattern as supplied, without the case flag.
func (m *Matcher) Query() string { return m.query }

// IgnoreCase reports whether the matcher was compiled case-insensitively.
func (m *Matcher) IgnoreCase() bool { return m.ignoreCase }

// Match reports whether the pattern occurs anywhere in line.
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// Spans returns the spans of all matching lines, in source order.
func (m *Matcher) Spans(content string) []Span {
	var matches []Span
	for _, s := range Lines(content) {
		if m.Match(s.Text(content)) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Lines returns the matching lines themselves, in source order.
func (m *Matcher) Lines(content string) []string {
	spans := m.Spans(content)
	lines := make([]string, len(spans))
	for i, s := range spans {
		lines[i] = s.Text(content)
	}
	return lines
}

// Search returns every line of content matching query, case-sensitively.
func Search(query, content string) ([]string, error) {
	m, err := Compile(query, false)
	if err != nil {
		return nil, err
	}
	return m.Lines(content), nil
}

// SearchCaseInsensitive returns every line of content matching query,
// ignoring letter case.
func SearchCaseInsensitive(query, content string) ([]string, error) {
	m, err := Compile(query, true)
	if err != nil {
		return nil, err
	}
	return m.Lines(content), nil
}
