package wlan

/*--------------------------------------------------------------------------------
 *
 * Purpose:	Scramble / descramble the DATA field.
 *
 * Description:	Frame synchronous additive scrambler, S(x) = x^7 + x^4 + 1.
 *		The same operation undoes itself, so there is no separate
 *		descramble function.
 *
 *		With the seed 1011101 (0x5d) the first 16 bits of
 *		sequence are 0110 1100 0001 1001, matching Annex G.
 *
 *--------------------------------------------------------------------------------*/

const scramblerMask = 0x7f

// Step the 7 bit LFSR once, returning the output bit.
func scrambleBit(state *byte) byte {
	var b = ((*state >> 6) ^ (*state >> 3)) & 1
	*state = ((*state << 1) | b) & scramblerMask
	return b
}

// Scramble XORs src with the scrambler sequence for seed and writes the
// result to dst.  Bits are taken MSB first.  Only the low 7 bits of seed are
// used.  dst and src may be the same slice; dst must be at least len(src).
func Scramble(dst []byte, src []byte, seed byte) {
	var state = seed & scramblerMask

	for i, in := range src {
		var mask byte
		for range 8 {
			mask = (mask << 1) | scrambleBit(&state)
		}
		dst[i] = in ^ mask
	}
}

// ScrambleBytes is Scramble into a newly allocated slice.
func ScrambleBytes(src []byte, seed byte) []byte {
	var out = make([]byte, len(src))
	Scramble(out, src, seed)
	return out
}

// ScramblerSequence returns the first nbits of the sequence for seed,
// one bit (0 or 1) per element.
func ScramblerSequence(seed byte, nbits int) []byte {
	var state = seed & scramblerMask
	var out = make([]byte, nbits)
	for i := range out {
		out[i] = scrambleBit(&state)
	}
	return out
}

/*--------------------------------------------------------------------------------
 *
 * Name:	RecoverSeed
 *
 * Purpose:	Find the transmitter's seed from the start of the DATA field.
 *
 * Inputs:	first7	- The first 7 received (still scrambled) SERVICE bits,
 *			  first received in bit 6.
 *
 * Description:	Those bits were zero before scrambling, so they are the first
 *		7 bits of the sequence, and after 7 steps the LFSR holds
 *		exactly them.  Step the register backwards 7 times.
 *
 *--------------------------------------------------------------------------------*/

func RecoverSeed(first7 byte) byte {
	var state = first7 & scramblerMask
	for range 7 {
		// The bit shifted in was s6 ^ s3 of the previous state, whose
		// s3 is now in s4.
		var s6 = (state ^ (state >> 4)) & 1
		state = (state >> 1) | (s6 << 6)
	}
	return state
}
