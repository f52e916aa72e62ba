// Package testsupport provides shared filesystem fixtures for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Touch creates an empty file at path, creating parent directories as needed.
func Touch(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, "")
}

// WriteFile fills the target path with content, creating parent directories
// as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
