package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/gaes/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Key:      config.Key{String: "passphrase", Size: 128},
		Suffixes: config.Suffixes{Encrypt: ".aes.enc"},
		Parallel: 1,
		Files:    []string{"file.txt"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "key file only", mutate: func(c *config.Config) { c.Key.String, c.Key.File = "", "key.txt" }},
		{name: "192 bits", mutate: func(c *config.Config) { c.Key.Size = 192 }},
		{name: "256 bits", mutate: func(c *config.Config) { c.Key.Size = 256 }},
		{
			name:   "bad key size",
			mutate: func(c *config.Config) { c.Key.Size = 512 },
			errMsg: "--key-size must be one of [128 192 256]",
		},
		{
			name:   "key and key file",
			mutate: func(c *config.Config) { c.Key.File = "key.txt" },
			errMsg: "--key is mutually exclusive with --key-file",
		},
		{
			name:   "no key",
			mutate: func(c *config.Config) { c.Key.String = "" },
			errMsg: "one of --key or --key-file is required",
		},
		{
			name:   "no files",
			mutate: func(c *config.Config) { c.Files = nil },
			errMsg: "files must contain at least 1 item",
		},
		{
			name:   "zero parallel",
			mutate: func(c *config.Config) { c.Parallel = 0 },
			errMsg: "--parallel must be 1 or greater",
		},
		{
			name:   "empty encrypt suffix",
			mutate: func(c *config.Config) { c.Suffixes.Encrypt = "" },
			errMsg: "--encrypt-ext is a required field",
		},
		{
			name: "output with several files",
			mutate: func(c *config.Config) {
				c.Output = "out.bin"
				c.Files = []string{"a", "b"}
			},
			errMsg: "--output requires exactly one input file",
		},
		{name: "output with one file", mutate: func(c *config.Config) { c.Output = "out.bin" }},
		{
			name: "several violations",
			mutate: func(c *config.Config) {
				c.Key.String = ""
				c.Parallel = 0
			},
			errMsg: "--parallel must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}

				return
			}

			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}

			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.errMsg)
			}
		})
	}
}
