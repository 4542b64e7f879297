package ioutils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Data-CSV", "nested")

	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists = true for absent path")
	}

	// A directory is not a file.
	if FileExists(dir) {
		t.Error("FileExists = true for directory")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
}
