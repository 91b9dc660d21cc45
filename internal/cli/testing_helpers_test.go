package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// result captures one invocation of the root command.
type result struct {
	stdout string
	stderr string
	code   int
	err    error
}

// runGrrs executes the root command against fs with the given arguments,
// the same way Execute does, but without exiting the process.
func runGrrs(t *testing.T, fs afero.Fs, args ...string) result {
	t.Helper()

	var stdout bytes.Buffer
	return runGrrsTo(t, fs, &stdout, args...)
}

// runGrrsTo is runGrrs with a caller-supplied stdout.
func runGrrsTo(t *testing.T, fs afero.Fs, stdout io.Writer, args ...string) result {
	t.Helper()

	var stderr bytes.Buffer
	cmd := NewRootCommand(Options{Fs: fs})
	cmd.SetOut(stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	code := report(&stderr, err)

	res := result{stderr: stderr.String(), code: code, err: err}
	if buf, ok := stdout.(*bytes.Buffer); ok {
		res.stdout = buf.String()
	}
	return res
}

// writeTempFile creates a file with content in a fresh temp directory on
// the real filesystem and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
