package aes_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gaes/pkg/aes"
)

// Vector is a single known-answer case from the YAML golden file.
type Vector struct {
	Description string `yaml:"description"`
	Key         string `yaml:"key"`
	Plaintext   string `yaml:"plaintext"`
	Ciphertext  string `yaml:"ciphertext"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Cases       []Vector `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no vector groups found")
	}

	return groups
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding %q: %v", s, err)
	}

	return b
}

func mustKey(t *testing.T, raw []byte) aes.Key {
	t.Helper()

	key, err := aes.NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey(%d bytes): %v", len(raw), err)
	}

	return key
}

func mustCipher(t *testing.T, key aes.Key) *aes.Cipher {
	t.Helper()

	c, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher(%s): %v", key.Size(), err)
	}

	return c
}

// forEachVector runs fn for every case in the golden file.
func forEachVector(t *testing.T, fn func(t *testing.T, key aes.Key, plain, cipher aes.Block)) {
	t.Helper()

	for _, group := range loadVectors(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					var plain, cipher aes.Block

					copy(plain[:], decodeHex(t, tc.Plaintext))
					copy(cipher[:], decodeHex(t, tc.Ciphertext))

					fn(t, mustKey(t, decodeHex(t, tc.Key)), plain, cipher)
				})
			}
		})
	}
}

func TestEncryptBlockKnownAnswers(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, key aes.Key, plain, want aes.Block) {
		t.Helper()

		got, err := aes.EncryptBlock(plain, key)
		if err != nil {
			t.Fatalf("EncryptBlock: %v", err)
		}

		if got != want {
			t.Errorf("EncryptBlock(%x) under %s = %x, want %x", plain, key.Size(), got, want)
		}
	})
}

func TestDecryptBlockKnownAnswers(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, key aes.Key, want, cipher aes.Block) {
		t.Helper()

		got, err := aes.DecryptBlock(cipher, key)
		if err != nil {
			t.Fatalf("DecryptBlock: %v", err)
		}

		if got != want {
			t.Errorf("DecryptBlock(%x) under %s = %x, want %x", cipher, key.Size(), got, want)
		}
	})
}

func TestBlockRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	for _, size := range []aes.KeySize{aes.Key128, aes.Key192, aes.Key256} {
		raw := make([]byte, size)

		for range 50 {
			for i := range raw {
				raw[i] = byte(rng.UintN(256))
			}

			var block aes.Block
			for i := range block {
				block[i] = byte(rng.UintN(256))
			}

			c := mustCipher(t, mustKey(t, raw))

			if got := c.DecryptBlock(c.EncryptBlock(block)); got != block {
				t.Fatalf("%s: round trip of %x gave %x", size, block, got)
			}

			if got := c.EncryptBlock(c.DecryptBlock(block)); got != block {
				t.Fatalf("%s: inverse round trip of %x gave %x", size, block, got)
			}
		}
	}
}

func TestCipherImplementsBlockInterface(t *testing.T) {
	t.Parallel()

	c, err := aes.New(make([]byte, 16))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c.BlockSize() != aes.BlockSize {
		t.Errorf("BlockSize() = %d, want %d", c.BlockSize(), aes.BlockSize)
	}

	src := make([]byte, aes.BlockSize)
	dst := make([]byte, aes.BlockSize)

	c.Encrypt(dst, src)

	if want := decodeHex(t, "66e94bd4ef8a2c3b884cfa59ca342b2e"); !bytes.Equal(dst, want) {
		t.Errorf("Encrypt = %x, want %x", dst, want)
	}

	c.Decrypt(dst, dst)

	if !bytes.Equal(dst, src) {
		t.Errorf("in-place Decrypt = %x, want %x", dst, src)
	}
}

func TestEncryptPanicsOnShortBlock(t *testing.T) {
	t.Parallel()

	c, err := aes.New(make([]byte, 16))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Encrypt with a short source did not panic")
		}
	}()

	c.Encrypt(make([]byte, aes.BlockSize), make([]byte, aes.BlockSize-1))
}

func TestZeroKeyIsRejected(t *testing.T) {
	t.Parallel()

	var zero aes.Key

	if c, err := aes.NewCipher(zero); !errors.Is(err, aes.ErrInvalidKeySize) || c != nil {
		t.Errorf("NewCipher(zero Key) = %v, %v, want nil, ErrInvalidKeySize", c, err)
	}

	if _, err := aes.NewCodec(zero); !errors.Is(err, aes.ErrInvalidKeySize) {
		t.Errorf("NewCodec(zero Key) error = %v, want ErrInvalidKeySize", err)
	}

	if _, err := aes.EncryptBlock(aes.Block{}, zero); !errors.Is(err, aes.ErrInvalidKeySize) {
		t.Errorf("EncryptBlock(zero Key) error = %v, want ErrInvalidKeySize", err)
	}

	if _, err := aes.DecryptBlock(aes.Block{}, zero); !errors.Is(err, aes.ErrInvalidKeySize) {
		t.Errorf("DecryptBlock(zero Key) error = %v, want ErrInvalidKeySize", err)
	}

	if out, err := aes.Encrypt([]byte("x"), zero); !errors.Is(err, aes.ErrInvalidKeySize) || out != nil {
		t.Errorf("Encrypt(zero Key) = %x, %v, want nil, ErrInvalidKeySize", out, err)
	}

	if out, err := aes.Decrypt(make([]byte, aes.BlockSize), zero); !errors.Is(err, aes.ErrInvalidKeySize) || out != nil {
		t.Errorf("Decrypt(zero Key) = %x, %v, want nil, ErrInvalidKeySize", out, err)
	}
}
