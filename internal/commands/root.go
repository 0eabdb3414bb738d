package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, unmarshal(cfg))

	root.Use = "gaes [flags] command [flags]"
	root.Short = "AES file encryption utility"
	root.Long = `A file encryption utility built on AES-128, AES-192 and AES-256.

Files are padded with PKCS#7 and encrypted block by block (ECB), so equal
16-byte blocks of a file produce equal ciphertext. The key is used directly:
text keys are padded or truncated to the key size without a key derivation
function.`

	// Persistent, so the flags are accepted after the subcommand too.
	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Encryption key, raw text or hex with --hex")
	flags.StringP("key-file", "f", "", "Path to a file holding the encryption key")
	flags.BoolP("hex", "x", false, "Interpret the key as a hex string")
	flags.IntP("key-size", "s", 128, "AES key size in bits: 128, 192 or 256") //nolint:mnd

	flags.StringP("output", "o", "", "Output file, only with a single input file")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("delete", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.Bool("dry", false, "Show what would be processed without writing anything")
	flags.Bool("show", false, "Show the configuration and exit")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")

	flags.StringSliceP("exclude", "e", nil, "Glob patterns of files to skip when walking directories")
	flags.String("exclude-from", "", "JSONC file with an array of exclude patterns")

	flags.String("encrypt-ext", ".aes.enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewGenerateCommand(cfg))

	return root
}
