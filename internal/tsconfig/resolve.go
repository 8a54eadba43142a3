package tsconfig

import (
	"fmt"
	"path/filepath"
)

// ResolvePath returns the absolute path of the config file to load for cwd.
//
// Without an override the result is cwd/tsconfig.json. An override naming a
// directory yields <override>/tsconfig.json, any other override is resolved
// against cwd. Whether the returned file exists is not checked, but the
// override itself must exist: a missing override fails with ErrInvalidOverride.
func ResolvePath(fsys FileSystem, cwd, override string) (string, error) {
	if override == "" {
		return resolve(cwd, FileName), nil
	}

	target := resolve(cwd, override)
	isDir, err := fsys.IsDir(target)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidOverride, override, err)
	}
	if isDir {
		return filepath.Join(target, FileName), nil
	}
	return target, nil
}

// resolve mirrors path.resolve for a single segment: absolute paths win,
// relative ones are joined onto base.
func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
