package aes

import (
	"bytes"
	"fmt"
)

// pkcs7Pad returns a copy of data extended to a multiple of BlockSize.
// A full block of padding is added when data is already aligned.
func pkcs7Pad(data []byte) []byte {
	padding := BlockSize - len(data)%BlockSize

	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)

	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips PKCS#7 padding from block-aligned data.
func pkcs7Unpad(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrMalformedInput)
	}

	padding := int(data[length-1])
	if padding == 0 || padding > BlockSize || padding > length {
		return nil, fmt.Errorf("%w: invalid padding size %d", ErrMalformedInput, padding)
	}

	for _, b := range data[length-padding:] {
		if b != byte(padding) {
			return nil, fmt.Errorf("%w: invalid padding", ErrMalformedInput)
		}
	}

	return data[:length-padding], nil
}
