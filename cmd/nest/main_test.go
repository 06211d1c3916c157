package main

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}

	originalArgs := os.Args
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		os.Args = originalArgs
		_ = os.Chdir(originalWd)
	}()

	tmpDir := t.TempDir()
	manifest := `name: e2e
steps:
  - name: touch
    cmd: ["touch", "out.txt"]
`
	require.NoError(t, os.WriteFile(tmpDir+"/nest.yaml", []byte(manifest), 0o600))
	require.NoError(t, os.Chdir(tmpDir))

	os.Args = []string{"nest", "build"}
	assert.Equal(t, 0, run())

	_, err = os.Stat(tmpDir + "/out.txt")
	assert.NoError(t, err, "build step did not run")
}
