package aes

const wordSize = 4

// Word is one 4-byte column of the expanded key.
type Word [wordSize]byte

// Schedule is the expanded key: 4*(Nr+1) words, four per round key.
type Schedule []Word

// ExpandKey runs the FIPS-197 key expansion for key.
// The zero Key expands to an empty Schedule; NewCipher refuses it.
func ExpandKey(key Key) Schedule {
	if !key.size.Valid() {
		return Schedule{}
	}

	nk := key.size.words()
	total := wordsPerBlock * (key.Rounds() + 1)
	schedule := make(Schedule, total)

	for i := range nk {
		copy(schedule[i][:], key.material[i*wordSize:])
	}

	rcon := byte(1)

	for i := nk; i < total; i++ {
		temp := schedule[i-1]

		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon
			rcon = xtime(rcon)
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}

		for j := range wordSize {
			schedule[i][j] = schedule[i-nk][j] ^ temp[j]
		}
	}

	return schedule
}

// Rounds returns Nr for the schedule.
func (s Schedule) Rounds() int {
	return len(s)/wordsPerBlock - 1
}

// RoundKey returns the 16 key bytes XORed into the state at round.
func (s Schedule) RoundKey(round int) [BlockSize]byte {
	var out [BlockSize]byte

	for col := range wordsPerBlock {
		copy(out[col*wordSize:], s[round*wordsPerBlock+col][:])
	}

	return out
}

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	sub := tables()

	return Word{sub.forward[w[0]], sub.forward[w[1]], sub.forward[w[2]], sub.forward[w[3]]}
}
