package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x4ndy/nansi/internal/nansifile"
)

// forceNonInteractive pins the prompt seam so tests never depend on what
// stdin happens to be under the test runner.
func forceNonInteractive(t *testing.T) {
	t.Helper()

	orig := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = orig })
}

func TestInitWritesCleanScaffold(t *testing.T) {
	forceNonInteractive(t)
	path := filepath.Join(t.TempDir(), "nansi.json")

	require.NoError(t, runInit(initCmd, []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Unset optional fields are omitted, not serialized as null.
	assert.NotContains(t, string(data), "null")

	file, err := nansifile.Load(path)
	require.NoError(t, err)
	require.Len(t, file.ExecList, 1)
	assert.Equal(t, "echo", file.ExecList[0].Exec)
	assert.Equal(t, []string{"hello"}, file.ExecList[0].Args)
	assert.True(t, file.ExecList[0].PrintStatus)
	assert.True(t, file.ExecList[0].PrintOutput)
}

func TestInitRefusesToOverwriteNonInteractively(t *testing.T) {
	forceNonInteractive(t)
	path := filepath.Join(t.TempDir(), "nansi.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	err := runInit(initCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
