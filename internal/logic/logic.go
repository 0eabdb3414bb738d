// Package logic sequences file resolution, encryption and reporting for the commands.
package logic

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gaes/internal/encryption"
	"github.com/idelchi/gaes/internal/filter"
)

// Stats summarizes a run.
type Stats struct {
	Scanned   int
	Excluded  int
	Processed int
	Errored   int
	Size      int64
	Duration  time.Duration
}

// Run is the main logic of the application.
func Run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	stats := Stats{Scanned: scanned, Excluded: scanned - len(cfg.Files)}

	var runErr error

	if cfg.Dry {
		dryRun(os.Stdout, cfg, &stats)
	} else {
		proc, err := encryption.NewProcessor(cfg)
		if err != nil {
			return fmt.Errorf("creating processor: %w", err)
		}

		stats.Processed, stats.Errored, stats.Size, runErr = proc.ProcessFiles(ctx)
	}

	if cfg.Stats {
		stats.Duration = time.Since(start)
		printStats(os.Stderr, stats)
	}

	if runErr != nil {
		return fmt.Errorf("running logic: %w", runErr)
	}

	return nil
}

// resolveFiles expands directories and applies exclude patterns, replacing
// cfg.Files with the result. Decryption of a directory only picks up files
// carrying the encrypt suffix.
func resolveFiles(cfg *config.Config) (int, error) {
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	var suffix string
	if cfg.Decrypt {
		suffix = cfg.Suffixes.Encrypt
	}

	flt, err := filter.New(excludes, suffix)
	if err != nil {
		return 0, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	files, scanned, err := flt.Resolve(cfg.Files)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without touching any file.
func dryRun(w io.Writer, cfg *config.Config, stats *Stats) {
	stats.Processed = len(cfg.Files)

	for _, file := range cfg.Files {
		out, err := encryption.OutputPath(file, cfg)
		if err != nil {
			stats.Processed--
			stats.Errored++

			fmt.Fprintf(w, "Error processing %q: %v\n", file, err)

			continue
		}

		if !cfg.Quiet {
			fmt.Fprintf(w, "Processed %q -> %q\n", file, out)
		}

		if info, err := os.Stat(file); err == nil {
			stats.Size += info.Size()
		}
	}
}

func printStats(w io.Writer, stats Stats) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", stats.Scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", stats.Excluded)
	fmt.Fprintf(w, "  Processed: %d\n", stats.Processed)
	fmt.Fprintf(w, "  Errors:    %d\n", stats.Errored)
	//nolint:gosec // Size is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, stats.Size))))
	fmt.Fprintf(w, "  Duration:  %s\n", stats.Duration.Round(time.Millisecond))
}
