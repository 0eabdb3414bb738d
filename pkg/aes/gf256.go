package aes

// polynomial is the low byte of the reduction polynomial x^8+x^4+x^3+x+1 (0x11B).
const polynomial = 0x1b

// xtime multiplies a by x in GF(2^8).
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ polynomial
	}

	return a << 1
}

// Mul multiplies a and b in GF(2^8).
func Mul(a, b byte) byte {
	var product byte

	for b != 0 {
		if b&1 != 0 {
			product ^= a
		}

		a = xtime(a)
		b >>= 1
	}

	return product
}

// Inverse returns the multiplicative inverse of a in GF(2^8).
// Zero has no inverse and maps to zero.
func Inverse(a byte) byte {
	// a^254 == a^-1 since the multiplicative group has order 255.
	result := byte(1)
	base := a

	for exp := 254; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			result = Mul(result, base)
		}

		base = Mul(base, base)
	}

	return result
}
