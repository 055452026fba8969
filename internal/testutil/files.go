package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDataFile writes raw snapshot content to dir/name and returns its path.
func WriteDataFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

// ReadDataFile returns the content of path, or "" if it does not exist.
func ReadDataFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	return string(data)
}
