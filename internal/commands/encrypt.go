package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gaes/internal/config"
	"github.com/idelchi/gaes/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] paths...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Show {
				return show(cmd, cfg)
			}

			return logic.Run(cmd.Context(), cfg) //nolint:wrapcheck
		},
	}
}
