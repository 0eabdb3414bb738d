package aes

import (
	"math/bits"
	"sync"
)

// substitution holds the forward and inverse S-boxes.
type substitution struct {
	forward [256]byte
	inverse [256]byte
}

// affineConstant is the constant term of the S-box affine transform.
const affineConstant = 0x63

//nolint:gochecknoglobals // built once, read-only afterwards
var tables = sync.OnceValue(newSubstitution)

func newSubstitution() *substitution {
	sub := &substitution{}

	for x := range 256 {
		s := affine(Inverse(byte(x)))

		sub.forward[x] = s
		sub.inverse[s] = byte(x)
	}

	return sub
}

// affine applies b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^ 0x63.
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		affineConstant
}

// SubByte returns the forward S-box entry for x.
func SubByte(x byte) byte {
	return tables().forward[x]
}

// InvSubByte returns the inverse S-box entry for x.
func InvSubByte(x byte) byte {
	return tables().inverse[x]
}
