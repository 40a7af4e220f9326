// Package storage persists the application state as JSON values in a durable
// key-value store. Two backends exist: a file-per-key directory store and a
// single-file SQLite store. The Gateway on top maps the six state collections
// onto their fixed keys.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Donne-shi/daily-planner/internal/constants"
)

// KV is the durable key-value collaborator. Get returns (nil, nil) for an
// absent key; values are opaque bytes, JSON encoding is the caller's concern.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open selects a backend from the data path: paths ending in .db (and the
// SQLite :memory: form) open a SQLite store, anything else is treated as a
// FileKV directory.
func Open(path string) (KV, error) {
	if path == "" {
		return nil, fmt.Errorf("empty data path")
	}
	if strings.HasSuffix(path, ".db") || strings.HasPrefix(path, ":memory:") {
		return NewSQLiteKV(path)
	}
	return NewFileKV(path)
}

// DefaultPath returns the per-user data directory for the file backend.
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, constants.AppName, "data"), nil
}
