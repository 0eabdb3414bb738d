package encryption

// Mode selects the direction of the transformation.
type Mode byte

const (
	// ModeEncrypt pads and encrypts the input.
	ModeEncrypt Mode = iota
	// ModeDecrypt decrypts the input and strips its padding.
	ModeDecrypt
)

func (m Mode) String() string {
	if m == ModeDecrypt {
		return "decrypt"
	}

	return "encrypt"
}
