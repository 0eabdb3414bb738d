package aes

import "errors"

var (
	// ErrInvalidKeySize is returned when key material is not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrMalformedInput is returned when ciphertext is not block aligned or carries invalid padding.
	ErrMalformedInput = errors.New("malformed input")
)
