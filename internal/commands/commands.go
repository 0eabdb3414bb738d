package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/showa-93/go-mask"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gaes/internal/config"
)

// unmarshal returns a pre-run step loading the flags and GAES_* environment
// variables bound by the root command into cfg.
func unmarshal(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("unmarshalling config: %w", err)
		}

		return nil
	}
}

// preRun returns a PreRunE handler that records the positional args and the
// direction, then validates the configuration.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Files = args
		cfg.Decrypt = decrypt

		if cfg.Show {
			return nil
		}

		return cfg.Validate() //nolint:wrapcheck
	}
}

// show prints the configuration with the key masked.
func show(cmd *cobra.Command, cfg *config.Config) error {
	masked, err := mask.Mask(*cfg)
	if err != nil {
		return fmt.Errorf("masking configuration: %w", err)
	}

	out, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))

	return nil
}
