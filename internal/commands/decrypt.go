package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gaes/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// Directories are searched for files carrying the encrypt suffix.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] paths...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, true),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Show {
				return show(cmd, cfg)
			}

			return logic.Run(cmd.Context(), cfg) //nolint:wrapcheck
		},
	}
}
