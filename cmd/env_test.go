// The cmd/ tests drive the real binary: argument parsing, environment
// lookup, file reading, matching, output and exit status together.
// Package-level unit tests cover each internal package on its own.

package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the minigrep binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "minigrep-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "minigrep"
		if os.PathSeparator == '\\' {
			binaryName = "minigrep.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
	env    []string
}

// newTestEnv creates a temporary working directory, which is also HOME so
// the audit log stays inside it. IGNORE_CASE is cleared from the inherited
// environment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()

	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "IGNORE_CASE=") || strings.HasPrefix(kv, "MINIGREP_NO_LOG=") ||
			strings.HasPrefix(kv, "HOME=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "HOME="+dir)

	return &testEnv{t: t, dir: dir, binary: binary, env: env}
}

// setenv adds a variable to the environment of subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// write creates a file in the test directory.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// run executes minigrep and returns stdout, failing the test on error.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.runSplit(args...)
	if err != nil {
		e.t.Fatalf("minigrep %v failed: %v\nstderr: %s", args, err, stderr)
	}
	return stdout
}

// runErr executes minigrep and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	stdout, stderr, err := e.runSplit(args...)
	return stdout + stderr, err
}

// runSplit executes minigrep and returns stdout and stderr separately.
func (e *testEnv) runSplit(args ...string) (string, string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks output exactly.
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, expected, output)
}

// exitCode returns the process exit status carried by err.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return -1
}

const poem = `Rust:
safe, fast, productive.
Duct.
Pick three.
`
