// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectDir creates a temporary base directory and returns it together
// with the would-be project root for name. The root itself is not created.
// The temp dir is automatically cleaned up when the test completes.
func ProjectDir(t *testing.T, name string) (baseDir, root string) {
	t.Helper()
	baseDir = t.TempDir()
	root = filepath.Join(baseDir, name)
	return baseDir, root
}

// NonEmptyDir creates a temporary directory containing one file, for
// exercising the pre-existing-target confirmation path.
func NonEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("keep\n"), 0644); err != nil {
		t.Fatalf("failed to seed directory: %v", err)
	}
	return dir
}
