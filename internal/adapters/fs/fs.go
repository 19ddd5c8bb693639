// Package fs adapts the host filesystem to the rewriter's filesystem
// port.
package fs

import (
	"errors"
	"os"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Open opens a file for reading.
func (lfs *LocalFileSystem) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// Create creates a file, truncating it if it already exists.
func (lfs *LocalFileSystem) Create(path string) (*os.File, error) {
	return os.Create(path)
}

// Exists checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Remove deletes a file.
func (lfs *LocalFileSystem) Remove(path string) error {
	return os.Remove(path)
}
