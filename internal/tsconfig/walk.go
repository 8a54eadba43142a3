package tsconfig

import "path/filepath"

// WalkUp searches dir and its ancestors for tsconfig.json and returns the
// nearest match. It returns false once the filesystem root has been checked
// without success. A nil exists falls back to the local filesystem.
func WalkUp(dir string, exists func(path string) bool) (string, bool) {
	if exists == nil {
		exists = defaultFileSystem().Exists
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if exists(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
