package encryption

// Result is the outcome for one file, reported to the printer goroutine.
type Result struct {
	Mode   Mode
	Input  string
	Output string

	// InputSize and OutputSize are byte counts; ciphertext is always
	// 1 to 16 bytes longer than its plaintext.
	InputSize  int64
	OutputSize int64

	Error error
}
