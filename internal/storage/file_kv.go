package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as <dir>/<key>.json. Writes go through a temp file
// and os.Rename so a crash mid-write never leaves a truncated value behind.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns the store.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Dir returns the backing directory.
func (f *FileKV) Dir() string {
	return f.dir
}

func (f *FileKV) keyPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return data, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for key %q: %w", key, err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(value)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return fmt.Errorf("write key %q: %w", key, writeErr)
		}
		return fmt.Errorf("write key %q: %w", key, closeErr)
	}

	if err := os.Rename(tmpPath, f.keyPath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("commit key %q: %w", key, err)
	}
	return nil
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

func (f *FileKV) Close() error {
	return nil
}
