package aes

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// segmentBlocks is the number of blocks one parallel worker handles at a time.
const segmentBlocks = 4096

// Codec encrypts and decrypts whole buffers with PKCS#7 padding in ECB mode.
//
// Each block is transformed independently: equal plaintext blocks give
// equal ciphertext blocks. Use it only where that leak is acceptable.
type Codec struct {
	cipher *Cipher
}

// NewCodec returns a Codec for key, or ErrInvalidKeySize when key is not usable.
func NewCodec(key Key) (*Codec, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &Codec{cipher: c}, nil
}

// Encrypt pads plain and encrypts it block by block.
func (c *Codec) Encrypt(plain []byte) []byte {
	out := pkcs7Pad(plain)
	c.encryptBlocks(out, out)

	return out
}

// Decrypt decrypts ciphertext block by block and strips the padding.
// It returns ErrMalformedInput and no data when the length is not a positive
// multiple of BlockSize or the padding does not verify.
func (c *Codec) Decrypt(ciphertext []byte) ([]byte, error) {
	if err := checkAligned(ciphertext); err != nil {
		return nil, err
	}

	out := make([]byte, len(ciphertext))
	c.decryptBlocks(out, ciphertext)

	return pkcs7Unpad(out)
}

// EncryptParallel is Encrypt with blocks spread across up to workers goroutines.
// workers < 1 means runtime.NumCPU(). The output equals Encrypt's.
func (c *Codec) EncryptParallel(ctx context.Context, plain []byte, workers int) ([]byte, error) {
	out := pkcs7Pad(plain)

	if err := c.fanOut(ctx, out, out, workers, c.encryptBlocks); err != nil {
		return nil, err
	}

	return out, nil
}

// DecryptParallel is Decrypt with blocks spread across up to workers goroutines.
func (c *Codec) DecryptParallel(ctx context.Context, ciphertext []byte, workers int) ([]byte, error) {
	if err := checkAligned(ciphertext); err != nil {
		return nil, err
	}

	out := make([]byte, len(ciphertext))

	if err := c.fanOut(ctx, out, ciphertext, workers, c.decryptBlocks); err != nil {
		return nil, err
	}

	return pkcs7Unpad(out)
}

// fanOut splits dst/src into segments and runs fn over each on a bounded group.
func (c *Codec) fanOut(
	ctx context.Context,
	dst, src []byte,
	workers int,
	fn func(dst, src []byte),
) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	const segment = segmentBlocks * BlockSize

	for start := 0; start < len(src); start += segment {
		end := min(start+segment, len(src))

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			fn(dst[start:end], src[start:end])

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("processing blocks: %w", err)
	}

	return nil
}

func (c *Codec) encryptBlocks(dst, src []byte) {
	for i := 0; i < len(src); i += BlockSize {
		c.cipher.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

func (c *Codec) decryptBlocks(dst, src []byte) {
	for i := 0; i < len(src); i += BlockSize {
		c.cipher.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

func checkAligned(data []byte) error {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrMalformedInput, len(data), BlockSize)
	}

	return nil
}

// Encrypt pads plain and encrypts it under key in ECB mode.
func Encrypt(plain []byte, key Key) ([]byte, error) {
	codec, err := NewCodec(key)
	if err != nil {
		return nil, err
	}

	return codec.Encrypt(plain), nil
}

// Decrypt reverses Encrypt.
func Decrypt(ciphertext []byte, key Key) ([]byte, error) {
	codec, err := NewCodec(key)
	if err != nil {
		return nil, err
	}

	return codec.Decrypt(ciphertext)
}
