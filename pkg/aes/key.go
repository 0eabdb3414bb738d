package aes

import (
	"fmt"
	"strconv"
)

// KeySize selects the AES variant by key length in bytes.
type KeySize int

const (
	// Key128 selects AES-128.
	Key128 KeySize = 16
	// Key192 selects AES-192.
	Key192 KeySize = 24
	// Key256 selects AES-256.
	Key256 KeySize = 32
)

// KeySizeFromBits maps 128, 192 or 256 to the matching KeySize.
func KeySizeFromBits(n int) (KeySize, error) {
	size := KeySize(n / 8) //nolint:mnd

	if n%8 != 0 || !size.Valid() {
		return 0, fmt.Errorf("%w: %d bits", ErrInvalidKeySize, n)
	}

	return size, nil
}

// Valid reports whether s is one of the three AES key sizes.
func (s KeySize) Valid() bool {
	switch s {
	case Key128, Key192, Key256:
		return true
	default:
		return false
	}
}

// Bits returns the key size in bits.
func (s KeySize) Bits() int {
	return int(s) * 8 //nolint:mnd
}

// words is Nk, the key length in 32-bit words.
func (s KeySize) words() int {
	return int(s) / wordSize
}

// Rounds is Nr, the number of cipher rounds for the key size.
func (s KeySize) Rounds() int {
	return s.words() + 6 //nolint:mnd
}

func (s KeySize) String() string {
	return "AES-" + strconv.Itoa(s.Bits())
}

// Key is validated AES key material.
// Its length always matches its KeySize.
type Key struct {
	size     KeySize
	material [Key256]byte
}

// NewKey copies raw into a Key.
// raw must be exactly 16, 24 or 32 bytes; it is never padded or truncated.
func NewKey(raw []byte) (Key, error) {
	size := KeySize(len(raw))
	if !size.Valid() {
		return Key{}, fmt.Errorf("%w: %d bytes", ErrInvalidKeySize, len(raw))
	}

	key := Key{size: size}
	copy(key.material[:], raw)

	return key, nil
}

// Size returns the variant of the key.
func (k Key) Size() KeySize {
	return k.size
}

// Rounds returns Nr for the key.
func (k Key) Rounds() int {
	return k.size.Rounds()
}

// Bytes returns a copy of the key material.
func (k Key) Bytes() []byte {
	out := make([]byte, k.size)
	copy(out, k.material[:k.size])

	return out
}
