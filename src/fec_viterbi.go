package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Hard decision Viterbi decoder for the K=7 code in fec.go.
 *
 * Description:	The trellis state is the last 6 input bits, newest in
 *		bit 0.  Punctured positions are treated as erasures and
 *		contribute nothing to the branch metric.
 *
 *		The DATA field ends with scrambled pad bits, not zeros,
 *		so the encoder does not finish in state 0.  Trace back
 *		starts from whichever state has the best metric.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math"
)

/*------------------------------------------------------------------
 *
 * Name:	FECDecode
 *
 * Inputs:	scheme	- Code rate.
 *		nbits	- Number of data bits to recover.
 *		src	- At least ceil(EncodedBits(nbits)/8) bytes
 *			  of received channel bits.
 *
 * Returns:	Decoded data, ceil(nbits/8) bytes, unused low bits of
 *		the last byte cleared.
 *
 *		Number of received channel bits that disagree with the
 *		selected path, i.e. how many bit errors were corrected,
 *		assuming the decode is right.
 *
 *------------------------------------------------------------------*/

func FECDecode(scheme FECScheme, nbits int, src []byte) ([]byte, int, error) {
	if !scheme.valid() {
		return nil, 0, fmt.Errorf("fec decode: unknown scheme %d", int(scheme))
	}

	var ncoded = scheme.EncodedBits(nbits)
	if nbits < 0 || len(src)*8 < ncoded {
		return nil, 0, fmt.Errorf("fec decode: %w: %d coded bits from %d bytes", ErrBufferSize, ncoded, len(src))
	}

	var p = fecTab[scheme]
	var period = len(p.a)

	// Expected (A, B) output for each state and input bit.
	var branchA, branchB [convStates][2]byte
	for s := range convStates {
		for in := range 2 {
			var reg = byte(s<<1|in) & (1<<convK - 1)
			branchA[s][in], branchB[s][in] = convParity(reg)
		}
	}

	const unreachable = math.MaxInt32 / 2

	var metric, next [convStates]int
	for s := range metric {
		metric[s] = unreachable
	}
	metric[0] = 0

	// decisions[k] bit n is the high bit of the predecessor of state n at step k.
	var decisions = make([]uint64, nbits)

	var ib = 0 // Input (channel) bit index.
	for k := range nbits {
		var phase = k % period

		var haveA, haveB = p.a[phase] != 0, p.b[phase] != 0
		var rxA, rxB byte
		if haveA {
			rxA = getBit(src, ib)
			ib++
		}
		if haveB {
			rxB = getBit(src, ib)
			ib++
		}

		var d uint64
		for n := range convStates {
			var in = n & 1
			var best = unreachable
			var bestHigh = 0
			for high := range 2 {
				var s = (n >> 1) | (high << (convK - 2))
				if metric[s] >= unreachable {
					continue
				}
				var m = metric[s]
				if haveA && branchA[s][in] != rxA {
					m++
				}
				if haveB && branchB[s][in] != rxB {
					m++
				}
				if m < best {
					best = m
					bestHigh = high
				}
			}
			next[n] = best
			if bestHigh != 0 {
				d |= 1 << n
			}
		}
		decisions[k] = d
		metric = next
	}

	var state = 0
	for s := range metric {
		if metric[s] < metric[state] {
			state = s
		}
	}
	var corrected = 0
	if nbits > 0 {
		corrected = metric[state]
	}

	var out = make([]byte, (nbits+7)/8)
	for k := nbits - 1; k >= 0; k-- {
		if state&1 != 0 {
			setBit(out, k)
		}
		var high = int(decisions[k]>>state) & 1
		state = (state >> 1) | (high << (convK - 2))
	}

	return out, corrected, nil
}
