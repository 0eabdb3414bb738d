package aes

import (
	"crypto/cipher"
	"fmt"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is one 16-byte unit of plaintext or ciphertext.
type Block [BlockSize]byte

// Cipher is AES bound to one key. It owns its key schedule,
// which is never modified after construction.
type Cipher struct {
	schedule Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key into a ready Cipher.
// It returns ErrInvalidKeySize for a Key not built by NewKey, such as the zero Key.
func NewCipher(key Key) (*Cipher, error) {
	if !key.size.Valid() {
		return nil, fmt.Errorf("%w: key holds %d bytes", ErrInvalidKeySize, key.size)
	}

	return &Cipher{schedule: ExpandKey(key)}, nil
}

// New is NewKey followed by NewCipher.
func New(raw []byte) (*Cipher, error) {
	key, err := NewKey(raw)
	if err != nil {
		return nil, err
	}

	return NewCipher(key)
}

// BlockSize returns the AES block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
// Like crypto/aes, it panics if either slice is shorter than a block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}

	s := loadState(src)
	encryptState(&s, c.schedule)
	s.store(dst)
}

// Decrypt decrypts the first block of src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}

	s := loadState(src)
	decryptState(&s, c.schedule)
	s.store(dst)
}

// EncryptBlock returns the encryption of plain.
func (c *Cipher) EncryptBlock(plain Block) Block {
	var out Block

	c.Encrypt(out[:], plain[:])

	return out
}

// DecryptBlock returns the decryption of ciphertext.
func (c *Cipher) DecryptBlock(ciphertext Block) Block {
	var out Block

	c.Decrypt(out[:], ciphertext[:])

	return out
}

// EncryptBlock encrypts a single block under key.
func EncryptBlock(plain Block, key Key) (Block, error) {
	c, err := NewCipher(key)
	if err != nil {
		return Block{}, err
	}

	return c.EncryptBlock(plain), nil
}

// DecryptBlock decrypts a single block under key.
func DecryptBlock(ciphertext Block, key Key) (Block, error) {
	c, err := NewCipher(key)
	if err != nil {
		return Block{}, err
	}

	return c.DecryptBlock(ciphertext), nil
}
