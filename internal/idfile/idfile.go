// Package idfile persists the ID of the tracked instance.
//
// The file holds the bare ID with no trailing newline. Its existence is
// the only record that an instance is tracked.
package idfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is an identifier file at a fixed path.
type File struct {
	path string
}

// New returns a File for path. Nothing is touched on disk.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Read returns the stored ID verbatim. ok is false when the file does not
// exist; any other read failure is returned as an error.
func (f *File) Read() (id string, ok bool, err error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("idfile: failed to read %s: %w", f.path, err)
	}
	return string(data), true, nil
}

// Write replaces the file contents with id. The new content is written to
// a temporary file in the same directory and renamed into place, so a
// crash never leaves a truncated ID behind.
func (f *File) Write(id string) error {
	dir := filepath.Dir(f.path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("idfile: failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(id); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("idfile: failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("idfile: failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("idfile: failed to close %s: %w", tmpName, err)
	}

	// CreateTemp uses 0600; match what a plain create would give.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("idfile: failed to chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("idfile: failed to replace %s: %w", f.path, err)
	}
	return nil
}

// Remove deletes the file.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil {
		return fmt.Errorf("idfile: failed to remove %s: %w", f.path, err)
	}
	return nil
}
