package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "cli:search",
			Action:  "search",
			Path:    "poem.txt",
			Success: true,
		})

		db := openDB(t)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, path, project string
		var success int
		err := db.QueryRow("SELECT source, action, path, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:search", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, "poem.txt", path)
		assert.Equal(t, hash("/test/project"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success with detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:search", "search").
			Path("poem.txt").
			Detail("query", "duct").
			Detail("count", 1).
			Write(nil)

		db := openDB(t)

		var success int
		var detail string
		var errMsg sql.NullString
		err := db.QueryRow("SELECT success, detail, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &detail, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 1, success)
		assert.JSONEq(t, `{"query":"duct","count":1}`, detail)
		assert.False(t, errMsg.Valid)
	})

	t.Run("failure records error", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("mcp:minigrep_search", "search").
			Path("missing.txt").
			Write(errors.New("reading missing.txt: file does not exist"))

		db := openDB(t)

		var success int
		var errMsg string
		var detail sql.NullString
		err := db.QueryRow("SELECT success, error, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &detail)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Contains(t, errMsg, "missing.txt")
		assert.False(t, detail.Valid)
	})
}

func TestOpen_Disabled(t *testing.T) {
	useTempDB(t)
	t.Setenv(EnvNoLog, "")

	assert.False(t, Enabled())
	require.NoError(t, Open())
	assert.NoFileExists(t, DBPath())

	// Writes are dropped silently.
	Event("cli:search", "search").Write(nil)
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".minigrep", "log", "minigrep-log.db"), DBPath())
}
