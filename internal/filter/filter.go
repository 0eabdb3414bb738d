// Package filter resolves command-line paths into the list of files to process.
// Exclude patterns use find -path semantics: * also matches across /.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/idelchi/gaes/pkg/pathmatch"
)

// ErrNoFiles is returned when nothing is left to process after filtering.
var ErrNoFiles = errors.New("no files matched")

// Filter decides which files found under a directory are processed.
type Filter struct {
	// excludes skips a file when its slash path or its base name matches.
	excludes *pathmatch.Matcher

	// suffix, when set, restricts walked files to those ending in it.
	suffix string
}

// New compiles the exclude patterns and returns a Filter.
func New(excludes []string, suffix string) (*Filter, error) {
	cleaned := make([]string, 0, len(excludes))

	for _, pattern := range excludes {
		cleaned = append(cleaned, strings.TrimPrefix(pattern, "./"))
	}

	matcher, err := pathmatch.NewMatcher(cleaned)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{excludes: matcher, suffix: suffix}, nil
}

// Match reports whether the slash-separated path should be processed.
func (f *Filter) Match(name string) bool {
	if f.suffix != "" && !strings.HasSuffix(name, f.suffix) {
		return false
	}

	return !f.excludes.MatchAny(name, path.Base(name))
}

// Resolve expands args into files. Explicit files are taken as given;
// directories are walked and their files filtered.
// It returns the matched files and the number of candidates seen.
func (f *Filter) Resolve(args []string) (files []string, scanned int, err error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			scanned++

			if f.Match(filepath.ToSlash(filepath.Clean(p))) {
				add(p)
			}

			return nil
		})
		if err != nil {
			return nil, 0, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// validatePath rejects paths that escape the current working directory.
func validatePath(p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("absolute paths are not allowed: %q", p)
	}

	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("paths must be within the current working directory: %q", p)
	}

	return nil
}
