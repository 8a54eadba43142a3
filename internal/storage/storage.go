package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// ErrMalformedDocument indicates a config file whose contents are not valid JSON with comments.
var ErrMalformedDocument = errors.New("config document is not valid JSON")

var utf8BOM = []byte("\xef\xbb\xbf")

// FileStorage reads config documents from an afero filesystem. It holds no
// mutable state and is safe for concurrent use.
type FileStorage struct {
	fs afero.Fs
}

// NewFileStorage wraps fs.
func NewFileStorage(fs afero.Fs) *FileStorage {
	return &FileStorage{fs: fs}
}

// NewOSStorage returns a FileStorage backed by the local filesystem.
func NewOSStorage() *FileStorage {
	return NewFileStorage(afero.NewOsFs())
}

// Exists reports whether a file or directory is present at path.
func (s *FileStorage) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// IsDir reports whether path is a directory without following a final
// symlink when the filesystem supports lstat. Missing paths return an error
// matching os.ErrNotExist.
func (s *FileStorage) IsDir(path string) (bool, error) {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := s.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = s.fs.Stat(path)
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadConfig reads path and decodes it as JSON, tolerating comments, trailing
// commas and a leading byte order mark. A document containing only null
// decodes to a nil map.
func (s *FileStorage) ReadConfig(path string) (map[string]any, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	data = jsonc.ToJSON(bytes.TrimPrefix(data, utf8BOM))

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, path, err)
	}
	return doc, nil
}
