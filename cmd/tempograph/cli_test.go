package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_WindowCommand exercises the command tree end to end against a
// scenario file on disk, the way an operator would invoke the binary.
func TestRun_WindowCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
events:
  - Root
episodes:
  - name: E1
    start: E1.Start
    end: E1.End
    duration: [1, 5]
constraints:
  - from: Root
    to: E1.Start
    interval: [0, 0]
`), 0o644))

	os.Args = []string{"tempograph", "window", path, "E1.End"}
	code := Run()
	require.Equal(t, exitCodeSuccess, code)
}
