// Package config holds the runtime configuration of the gaes tool.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrInvalidConfig is returned for any configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Key describes where the key material comes from and how to read it.
type Key struct {
	// String is the key given on the command line.
	String string `mapstructure:"key" validate:"exclusive=--key-file,either=--key-file" label:"--key" mask:"filled"`

	// File is a path to a file holding the key.
	File string `mapstructure:"key-file" label:"--key-file"`

	// Hex selects hex decoding of the key instead of raw text.
	Hex bool `mapstructure:"hex"`

	// Size is the AES key size in bits.
	Size int `mapstructure:"key-size" validate:"oneof=128 192 256" label:"--key-size"`
}

// Suffixes controls output file naming.
type Suffixes struct {
	Encrypt string `mapstructure:"encrypt-ext" validate:"required" label:"--encrypt-ext"`
	Decrypt string `mapstructure:"decrypt-ext" label:"--decrypt-ext"`
}

// Config is the resolved configuration for a single invocation.
type Config struct {
	Key      Key      `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`

	// Output overrides the output path; only valid with a single input file.
	Output string `mapstructure:"output" validate:"single=files" label:"--output"`

	Parallel           int      `mapstructure:"parallel"            validate:"min=1" label:"--parallel"`
	Quiet              bool     `mapstructure:"quiet"`
	Delete             bool     `mapstructure:"delete"`
	Stats              bool     `mapstructure:"stats"`
	Dry                bool     `mapstructure:"dry"`
	Show               bool     `mapstructure:"show"`
	PreserveTimestamps bool     `mapstructure:"preserve-timestamps"`
	Exclude            []string `mapstructure:"exclude"`
	ExcludeFrom        string   `mapstructure:"exclude-from"`

	// Set by the subcommand, not by flags.
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-" validate:"min=1" label:"files"`
}

// Validate checks the configuration against its struct tags and the rules from register.
// It returns a wrapped ErrInvalidConfig if any rule is violated.
func (c *Config) Validate() error {
	validator := validator.NewValidator()

	if err := register(validator); err != nil {
		return fmt.Errorf("registering validations: %w", err)
	}

	errs := validator.Validate(c)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs[0])
	default:
		return fmt.Errorf("%w:\n%w", ErrInvalidConfig, errors.Join(errs...))
	}
}
