// Package aes implements the AES (Rijndael, FIPS-197) block cipher for
// 128, 192 and 256-bit keys, together with a whole-buffer codec.
//
// The codec pads with PKCS#7 and encrypts every 16-byte block independently
// (ECB). Identical plaintext blocks produce identical ciphertext blocks under
// the same key, so the codec leaks patterns and is not semantically secure.
//
// Substitution tables are derived from GF(2^8) arithmetic on first use and
// shared read-only afterwards. A Cipher or Codec holds an immutable key
// schedule and may be used from multiple goroutines.
package aes
