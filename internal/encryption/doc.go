// Package encryption encrypts and decrypts files with the AES codec in pkg/aes.
// Files are read whole, processed concurrently and written atomically.
// The output is raw ciphertext or plaintext with no header.
package encryption
