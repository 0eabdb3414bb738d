package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gaes/internal/keymaterial"
	"github.com/idelchi/gaes/pkg/aes"
)

// NewGenerateCommand creates a command printing a random hex key for use with --hex.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new hex encoded encryption key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := aes.KeySizeFromBits(cfg.Key.Size)
			if err != nil {
				return err //nolint:wrapcheck
			}

			key, err := keymaterial.Generate(size)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)

			return nil
		},
	}
}
