// Package testutil provides common test helpers for the alienv project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempRoot creates an empty store root directory and returns its path.
// The directory is automatically cleaned up when the test finishes.
func TempRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), ".alienv")
	if err := os.Mkdir(root, 0700); err != nil {
		t.Fatalf("TempRoot: mkdir failed: %v", err)
	}
	return root
}

// SeedEnv creates an environment directory under root whose alias file
// holds the given lines verbatim. It returns the alias file path.
func SeedEnv(t *testing.T, root, env string, lines ...string) string {
	t.Helper()

	dir := filepath.Join(root, env)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("SeedEnv: mkdir failed: %v", err)
	}

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	path := filepath.Join(dir, "aliases")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("SeedEnv: write failed: %v", err)
	}
	return path
}

// ReadFile returns the file content as a string, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// Env is a fake process environment for marker lookups.
type Env map[string]string

// Lookup has the signature of os.LookupEnv.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}
