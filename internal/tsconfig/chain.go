package tsconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/tsconfig-paths/internal/storage"
)

// LoadChain loads the config at path and merges every parent it extends
// beneath it. A missing file yields a nil Object and no error. A nil fsys
// reads the local filesystem.
func LoadChain(fsys FileSystem, path string) (Object, error) {
	if fsys == nil {
		fsys = defaultFileSystem()
	}
	return newChainLoader(fsys, zap.NewNop()).load(filepath.Clean(path))
}

type chainLoader struct {
	fsys   FileSystem
	logger *zap.Logger
	// active holds the files on the current extends path.
	active map[string]struct{}
}

func newChainLoader(fsys FileSystem, logger *zap.Logger) *chainLoader {
	return &chainLoader{
		fsys:   fsys,
		logger: logger,
		active: make(map[string]struct{}),
	}
}

func (c *chainLoader) load(path string) (Object, error) {
	if !c.fsys.Exists(path) {
		c.logger.Debug("tsconfig not found", zap.String("path", path))
		return nil, nil
	}
	if _, ok := c.active[path]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCircularExtends, path)
	}
	c.active[path] = struct{}{}
	defer delete(c.active, path)

	cfg, err := c.fsys.ReadConfig(path)
	if err != nil {
		if errors.Is(err, storage.ErrMalformedDocument) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if cfg == nil {
		cfg = Object{}
	}

	refs, err := extendsRefs(cfg[extendsKey])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedConfig, path, err)
	}
	if len(refs) == 0 {
		return cfg, nil
	}

	dir := filepath.Dir(path)
	base := Object{}
	for _, ref := range refs {
		parentPath := c.parentPath(dir, ref)
		c.logger.Debug("following extends",
			zap.String("from", path),
			zap.String("extends", ref),
			zap.String("resolved", parentPath),
		)

		parent, err := c.load(parentPath)
		if err != nil {
			return nil, err
		}
		base = deepMerge(base, parent)
	}

	return deepMerge(base, cfg), nil
}

// parentPath resolves an extends reference relative to dir. References written
// without the .json suffix fall back to the suffixed file unless the bare
// reference names a regular file.
func (c *chainLoader) parentPath(dir, ref string) string {
	p := resolve(dir, ref)
	if strings.EqualFold(filepath.Ext(p), ".json") || c.isFile(p) {
		return p
	}
	if withExt := p + ".json"; c.isFile(withExt) {
		return withExt
	}
	return p
}

func (c *chainLoader) isFile(path string) bool {
	if !c.fsys.Exists(path) {
		return false
	}
	isDir, err := c.fsys.IsDir(path)
	return err == nil && !isDir
}

func extendsRefs(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		refs := make([]string, 0, len(v))
		for i, item := range v {
			ref, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("extends[%d] must be a string, got %T", i, item)
			}
			if ref != "" {
				refs = append(refs, ref)
			}
		}
		return refs, nil
	default:
		return nil, fmt.Errorf("extends must be a string or an array of strings, got %T", value)
	}
}
