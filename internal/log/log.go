// Package log provides audit logging for minigrep invocations.
// Entries are stored in ~/.minigrep/log/minigrep-log.db and record every
// search run from the CLI or the MCP server.
//
// # Fluent API
//
//	log.Event("cli:search", "search").
//		Path(cfg.FilePath).
//		Detail("query", cfg.Query).
//		Detail("count", result.Count()).
//		Write(err)
//
// The source parameter is "cli:{command}" for CLI commands or "mcp:{tool}"
// for MCP tools.
//
// Logging is best effort. Set MINIGREP_NO_LOG to disable it entirely.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// EnvNoLog disables audit logging when present in the environment.
const EnvNoLog = "MINIGREP_NO_LOG"

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g. "cli:search", "mcp:minigrep_search"
	Action string // verb: search, serve, ...
	Path   string // file searched

	Start    time.Time
	Duration time.Duration

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry. Create with [Event], chain setters, then
// call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts a log entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now(),
		},
	}
}

// Path sets the file the operation read.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair such as the query or match count.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.Duration = time.Since(b.entry.Start)
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Enabled reports whether audit logging has not been disabled via
// MINIGREP_NO_LOG.
func Enabled() bool {
	_, off := os.LookupEnv(EnvNoLog)
	return !off
}

// Open initialises the global logger. Safe to call multiple times. Returns
// nil without opening anything when logging is disabled.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil || !Enabled() {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries, typically
// the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. No-op if the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
