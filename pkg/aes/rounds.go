package aes

const wordsPerBlock = BlockSize / wordSize

// state is the 4x4 byte matrix a block passes through, indexed [row][column].
// Input bytes fill it column by column.
type state [4][wordsPerBlock]byte

func loadState(in []byte) state {
	var s state

	for col := range wordsPerBlock {
		for row := range 4 {
			s[row][col] = in[col*4+row]
		}
	}

	return s
}

func (s *state) store(out []byte) {
	for col := range wordsPerBlock {
		for row := range 4 {
			out[col*4+row] = s[row][col]
		}
	}
}

func (s *state) addRoundKey(schedule Schedule, round int) {
	for col := range wordsPerBlock {
		w := schedule[round*wordsPerBlock+col]

		for row := range 4 {
			s[row][col] ^= w[row]
		}
	}
}

func (s *state) subBytes(table *[256]byte) {
	for row := range 4 {
		for col := range wordsPerBlock {
			s[row][col] = table[s[row][col]]
		}
	}
}

// shiftRows rotates row i left by i positions.
func (s *state) shiftRows() {
	for row := 1; row < 4; row++ {
		var shifted [wordsPerBlock]byte

		for col := range wordsPerBlock {
			shifted[col] = s[row][(col+row)%wordsPerBlock]
		}

		s[row] = shifted
	}
}

// invShiftRows rotates row i right by i positions.
func (s *state) invShiftRows() {
	for row := 1; row < 4; row++ {
		var shifted [wordsPerBlock]byte

		for col := range wordsPerBlock {
			shifted[(col+row)%wordsPerBlock] = s[row][col]
		}

		s[row] = shifted
	}
}

// mixColumns multiplies every column by the circulant matrix (02 03 01 01).
func (s *state) mixColumns() {
	for col := range wordsPerBlock {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = Mul(a0, 0x02) ^ Mul(a1, 0x03) ^ a2 ^ a3
		s[1][col] = a0 ^ Mul(a1, 0x02) ^ Mul(a2, 0x03) ^ a3
		s[2][col] = a0 ^ a1 ^ Mul(a2, 0x02) ^ Mul(a3, 0x03)
		s[3][col] = Mul(a0, 0x03) ^ a1 ^ a2 ^ Mul(a3, 0x02)
	}
}

// invMixColumns multiplies every column by the inverse matrix (0e 0b 0d 09).
func (s *state) invMixColumns() {
	for col := range wordsPerBlock {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = Mul(a0, 0x0e) ^ Mul(a1, 0x0b) ^ Mul(a2, 0x0d) ^ Mul(a3, 0x09)
		s[1][col] = Mul(a0, 0x09) ^ Mul(a1, 0x0e) ^ Mul(a2, 0x0b) ^ Mul(a3, 0x0d)
		s[2][col] = Mul(a0, 0x0d) ^ Mul(a1, 0x09) ^ Mul(a2, 0x0e) ^ Mul(a3, 0x0b)
		s[3][col] = Mul(a0, 0x0b) ^ Mul(a1, 0x0d) ^ Mul(a2, 0x09) ^ Mul(a3, 0x0e)
	}
}

// encryptState runs the forward cipher over s.
func encryptState(s *state, schedule Schedule) {
	sub := tables()
	nr := schedule.Rounds()

	s.addRoundKey(schedule, 0)

	for round := 1; round < nr; round++ {
		s.subBytes(&sub.forward)
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(schedule, round)
	}

	s.subBytes(&sub.forward)
	s.shiftRows()
	s.addRoundKey(schedule, nr)
}

// decryptState runs the inverse cipher over s, consuming round keys in reverse.
func decryptState(s *state, schedule Schedule) {
	sub := tables()
	nr := schedule.Rounds()

	s.addRoundKey(schedule, nr)

	for round := nr - 1; round > 0; round-- {
		s.invShiftRows()
		s.subBytes(&sub.inverse)
		s.addRoundKey(schedule, round)
		s.invMixColumns()
	}

	s.invShiftRows()
	s.subBytes(&sub.inverse)
	s.addRoundKey(schedule, 0)
}
