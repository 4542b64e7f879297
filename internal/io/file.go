// Package ioutils provides file system utilities for putemg-downloader.
package ioutils

import "os"

// EnsureDir creates a directory and all parent directories if they
// don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x). If the directory
// already exists, no error is returned, so repeated calls are
// idempotent.
//
// Example:
//
//	err := EnsureDir("downloads/Data-CSV")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether path exists and is a regular file.
//
// Presence of the target file is the skip-download signal for
// incremental runs, which is why downloads are written atomically: a
// file that exists is always a complete one.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
