// Package fileutil writes output files atomically.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// AtomicFile stages output next to its destination and moves it into place
// on Commit. Until then the destination is untouched.
type AtomicFile struct {
	// Source is the stat of the file being transformed.
	Source os.FileInfo

	dest string
	tmp  *os.File
}

// NewAtomicFile stats src and opens a temporary file in dest's directory.
// Callers must defer Discard.
func NewAtomicFile(src, dest string) (*AtomicFile, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".gaes-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &AtomicFile{Source: info, dest: dest, tmp: tmp}, nil
}

// Executable reports whether the source had any execute bit set.
func (a *AtomicFile) Executable() bool {
	return a.Source.Mode()&executableBits != 0
}

// Write writes data to the staged file.
func (a *AtomicFile) Write(data []byte) (int, error) {
	n, err := a.tmp.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing temporary file: %w", err)
	}

	return n, nil
}

// Commit sets permissions, closes the staged file and renames it over dest.
// The output is owner read/write, plus execute bits when the source had them.
func (a *AtomicFile) Commit() error {
	perm := os.FileMode(ownerReadWrite)
	if a.Executable() {
		perm |= executableBits
	}

	if err := a.tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := a.tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(a.tmp.Name(), a.dest); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// Discard removes the staged file if Commit did not succeed.
func (a *AtomicFile) Discard() {
	a.tmp.Close() //nolint:errcheck,gosec // best-effort cleanup

	if _, err := os.Stat(a.tmp.Name()); err == nil {
		os.Remove(a.tmp.Name()) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Finalize optionally copies modTime onto path and returns its size.
func Finalize(path string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", path, err)
	}

	return info.Size(), nil
}
