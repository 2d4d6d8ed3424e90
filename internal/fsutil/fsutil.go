// Package fsutil provides the file-writing primitives shared by the
// scaffolding components.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes content to path, creating missing parent directories.
// When the path already exists and overwrite is false the call is a no-op,
// which is what makes repeat runs safe for files the user has edited.
func WriteFile(path, content string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DirNonEmpty reports whether path is a directory containing at least one
// entry. A missing path is not an error.
func DirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	return len(entries) > 0, nil
}
