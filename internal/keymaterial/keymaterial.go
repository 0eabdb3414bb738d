// Package keymaterial turns user-supplied key text into AES keys.
//
// Keys are used as given: shorter input is padded and longer input is
// truncated to the key size. No key derivation function is applied, so a
// short passphrase yields a weak key.
package keymaterial

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gaes/pkg/aes"
	"github.com/idelchi/gogen/pkg/key"
)

var (
	// ErrEmptyKey is returned when no key bytes were supplied.
	ErrEmptyKey = errors.New("empty key")
	// ErrInvalidHex is returned when a hex key cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex key")
)

// Parse returns the key bytes for text, hex decoding it when isHex is set.
func Parse(text string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(text), nil
	}

	raw, err := key.FromHex(strings.TrimPrefix(strings.TrimSpace(text), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return raw, nil
}

// FromFile reads key text from path. A single trailing newline is ignored.
func FromFile(path string, isHex bool) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")

	return Parse(text, isHex)
}

// Normalize fits raw to size: longer input is truncated, shorter input is
// padded with bytes whose value is the number of bytes added.
func Normalize(raw []byte, size aes.KeySize) (aes.Key, error) {
	if len(raw) == 0 {
		return aes.Key{}, ErrEmptyKey
	}

	if !size.Valid() {
		return aes.Key{}, fmt.Errorf("%w: %d bytes", aes.ErrInvalidKeySize, size)
	}

	fitted := make([]byte, 0, size)

	if len(raw) >= int(size) {
		fitted = append(fitted, raw[:size]...)
	} else {
		missing := int(size) - len(raw)

		fitted = append(fitted, raw...)
		fitted = append(fitted, bytes.Repeat([]byte{byte(missing)}, missing)...)
	}

	fittedKey, err := aes.NewKey(fitted)
	if err != nil {
		return aes.Key{}, fmt.Errorf("building key: %w", err)
	}

	return fittedKey, nil
}

// Generate returns a random hex-encoded key of the given size.
func Generate(size aes.KeySize) (string, error) {
	if !size.Valid() {
		return "", fmt.Errorf("%w: %d bytes", aes.ErrInvalidKeySize, size)
	}

	generated, err := key.New(int(size))
	if err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}

	return generated.AsHex(), nil
}
