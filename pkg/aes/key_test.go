package aes_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/idelchi/gaes/pkg/aes"
)

func TestNewKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		size   aes.KeySize
		rounds int
		err    bool
	}{
		{length: 16, size: aes.Key128, rounds: 10},
		{length: 24, size: aes.Key192, rounds: 12},
		{length: 32, size: aes.Key256, rounds: 14},
		{length: 0, err: true},
		{length: 15, err: true},
		{length: 17, err: true},
		{length: 31, err: true},
		{length: 33, err: true},
		{length: 64, err: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_bytes", tt.length), func(t *testing.T) {
			t.Parallel()

			raw := bytes.Repeat([]byte{0xaa}, tt.length)

			key, err := aes.NewKey(raw)
			if tt.err {
				if !errors.Is(err, aes.ErrInvalidKeySize) {
					t.Fatalf("NewKey(%d bytes) error = %v, want ErrInvalidKeySize", tt.length, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("NewKey(%d bytes): %v", tt.length, err)
			}

			if key.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", key.Size(), tt.size)
			}

			if key.Rounds() != tt.rounds {
				t.Errorf("Rounds() = %d, want %d", key.Rounds(), tt.rounds)
			}

			if !bytes.Equal(key.Bytes(), raw) {
				t.Errorf("Bytes() = %x, want %x", key.Bytes(), raw)
			}
		})
	}
}

func TestNewKeyCopiesInput(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 16)

	key, err := aes.NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}

	raw[0] = 0xff

	if key.Bytes()[0] != 0 {
		t.Error("Key shares memory with the caller's slice")
	}
}

func TestKeySizeFromBits(t *testing.T) {
	t.Parallel()

	for bits, want := range map[int]aes.KeySize{128: aes.Key128, 192: aes.Key192, 256: aes.Key256} {
		got, err := aes.KeySizeFromBits(bits)
		if err != nil || got != want {
			t.Errorf("KeySizeFromBits(%d) = %v, %v; want %v", bits, got, err, want)
		}
	}

	for _, bits := range []int{0, 64, 100, 130, 512} {
		if _, err := aes.KeySizeFromBits(bits); !errors.Is(err, aes.ErrInvalidKeySize) {
			t.Errorf("KeySizeFromBits(%d) error = %v, want ErrInvalidKeySize", bits, err)
		}
	}
}

func TestExpandKeyLength(t *testing.T) {
	t.Parallel()

	for _, size := range []aes.KeySize{aes.Key128, aes.Key192, aes.Key256} {
		key := mustKey(t, make([]byte, size))
		schedule := aes.ExpandKey(key)

		if want := 4 * (size.Rounds() + 1); len(schedule) != want {
			t.Errorf("%s: len(ExpandKey) = %d, want %d", size, len(schedule), want)
		}

		if schedule.Rounds() != size.Rounds() {
			t.Errorf("%s: Schedule.Rounds() = %d, want %d", size, schedule.Rounds(), size.Rounds())
		}
	}
}

// Expanded words from FIPS-197 Appendix A.
func TestExpandKeyKnownWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		index int
		word  string
	}{
		{"A.1 first derived", "2b7e151628aed2a6abf7158809cf4f3c", 4, "a0fafe17"},
		{"A.1 last", "2b7e151628aed2a6abf7158809cf4f3c", 43, "b6630ca6"},
		{"A.2 first derived", "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", 6, "fe0c91f7"},
		{"A.2 last", "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", 51, "01002202"},
		{"A.3 first derived", "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", 8, "9ba35411"},
		{"A.3 extra SubWord", "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", 12, "a8b09c1a"},
		{"A.3 last", "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", 59, "706c631e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schedule := aes.ExpandKey(mustKey(t, decodeHex(t, tt.key)))
			word := schedule[tt.index]

			if got := fmt.Sprintf("%x", word[:]); got != tt.word {
				t.Errorf("w[%d] = %s, want %s", tt.index, got, tt.word)
			}
		})
	}
}

func TestScheduleStartsWithKey(t *testing.T) {
	t.Parallel()

	raw := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	schedule := aes.ExpandKey(mustKey(t, raw))
	first := schedule.RoundKey(0)

	if !bytes.Equal(first[:], raw) {
		t.Errorf("RoundKey(0) = %x, want %x", first, raw)
	}
}
