package encryption

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gaes/internal/fileutil"
	"github.com/idelchi/gaes/internal/keymaterial"
	"github.com/idelchi/gaes/pkg/aes"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// mode is the direction selected by the subcommand
	mode Mode

	// codec holds the expanded key shared by all workers
	codec *aes.Codec

	// stdout and stderr receive progress and error lines
	stdout io.Writer
	stderr io.Writer
}

// NewProcessor reads and normalizes the configured key and prepares the codec.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	key, err := LoadKey(cfg.Key)
	if err != nil {
		return nil, err
	}

	mode := ModeEncrypt
	if cfg.Decrypt {
		mode = ModeDecrypt
	}

	codec, err := aes.NewCodec(key)
	if err != nil {
		return nil, fmt.Errorf("preparing cipher: %w", err)
	}

	return &Processor{
		cfg:    cfg,
		mode:   mode,
		codec:  codec,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, nil
}

// SetOutput redirects progress and error lines, mainly for tests.
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// LoadKey resolves the key from the command line or a key file and fits it to the key size.
func LoadKey(cfg config.Key) (aes.Key, error) {
	size, err := aes.KeySizeFromBits(cfg.Size)
	if err != nil {
		return aes.Key{}, fmt.Errorf("selecting key size: %w", err)
	}

	var raw []byte

	switch {
	case cfg.String != "":
		raw, err = keymaterial.Parse(cfg.String, cfg.Hex)
	case cfg.File != "":
		raw, err = keymaterial.FromFile(cfg.File, cfg.Hex)
	default:
		return aes.Key{}, ErrNoKey
	}

	if err != nil {
		return aes.Key{}, fmt.Errorf("reading key: %w", err)
	}

	key, err := keymaterial.Normalize(raw, size)
	if err != nil {
		return aes.Key{}, fmt.Errorf("normalizing key: %w", err)
	}

	return key, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It returns the number of successfully processed files, the number of errors
// and the total size written.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles(ctx context.Context) (processed, errored int, totalSize int64, err error) {
	// A failing file does not cancel the others.
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	results := make(chan Result, len(p.cfg.Files))
	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	// Blocks of a single file share the workers; several files each get one.
	blockWorkers := 1
	if len(p.cfg.Files) == 1 {
		blockWorkers = p.cfg.Parallel
	}

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			result := Result{Mode: p.mode, Input: file}

			result.Output, result.Error = OutputPath(file, p.cfg)
			if result.Error == nil {
				result.InputSize, result.OutputSize, result.Error = p.processFile(ctx, file, result.Output, blockWorkers)
			}

			results <- result

			return result.Error
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// Transform runs the codec over data in the processor's mode.
func (p *Processor) Transform(ctx context.Context, data []byte, workers int) ([]byte, error) {
	if p.mode == ModeDecrypt {
		out, err := p.codec.DecryptParallel(ctx, data, workers)
		if err != nil {
			return nil, fmt.Errorf("decrypting: %w", err)
		}

		return out, nil
	}

	out, err := p.codec.EncryptParallel(ctx, data, workers)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}

	return out, nil
}

// processFile transforms one file into outPath. Nothing is written to outPath
// unless the whole transformation succeeds.
func (p *Processor) processFile(ctx context.Context, filename, outPath string, workers int) (in, out int64, err error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, 0, fmt.Errorf("%w: %q", ErrSameOutput, outPath)
	}

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, 0, fmt.Errorf("reading input file: %w", err)
	}

	output, err := p.Transform(ctx, input, workers)
	if err != nil {
		return 0, 0, err
	}

	staged, err := fileutil.NewAtomicFile(filename, outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer staged.Discard()

	if _, err := staged.Write(output); err != nil {
		return 0, 0, err //nolint:wrapcheck
	}

	if err := staged.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing output: %w", err)
	}

	size, err := fileutil.Finalize(outPath, p.cfg.PreserveTimestamps, staged.Source.ModTime())
	if err != nil {
		return 0, 0, fmt.Errorf("finalizing output: %w", err)
	}

	return int64(len(input)), size, nil
}

// OutputPath returns where the result for filename is written: the configured
// output if set, otherwise the name with the encrypt suffix appended, or for
// decryption stripped and replaced by the decrypt suffix.
// A decrypt input named only by the encrypt suffix has no name left and is refused.
func OutputPath(filename string, cfg *config.Config) (string, error) {
	if cfg.Output != "" {
		return cfg.Output, nil
	}

	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt

		if filename == "" || os.IsPathSeparator(filename[len(filename)-1]) {
			return "", fmt.Errorf("%w: %q", ErrEmptyName, filename+cfg.Suffixes.Encrypt)
		}
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext), nil
}
