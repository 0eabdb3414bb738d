package encryption

import "errors"

var (
	// ErrNoKey is returned when neither a key nor a key file is configured.
	ErrNoKey = errors.New("no key provided")
	// ErrSameOutput is returned when the output path would overwrite the input.
	ErrSameOutput = errors.New("output path equals input path")
	// ErrEmptyName is returned when stripping the encrypt suffix leaves no file name.
	ErrEmptyName = errors.New("no file name left after stripping the encrypt suffix")
)
