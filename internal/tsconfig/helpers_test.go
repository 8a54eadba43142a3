package tsconfig

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/tsconfig-paths/internal/storage"
)

// memFS builds an in-memory filesystem holding files (path -> contents) plus
// any extra empty directories.
func memFS(t *testing.T, files map[string]string, dirs ...string) *storage.FileStorage {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return storage.NewFileStorage(fs)
}

func envOf(vars map[string]string) EnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// countingFS records how often each operation reaches the wrapped filesystem.
type countingFS struct {
	FileSystem
	reads map[string]int
}

func newCountingFS(inner FileSystem) *countingFS {
	return &countingFS{FileSystem: inner, reads: make(map[string]int)}
}

func (c *countingFS) ReadConfig(path string) (map[string]any, error) {
	c.reads[path]++
	return c.FileSystem.ReadConfig(path)
}
