package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile writes content to name inside a fresh t.TempDir() and
// returns the full path. The directory is removed when the test completes.
func CreateTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "Failed to create temporary file")

	return path
}
