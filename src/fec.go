package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Convolutional encoder for the DATA field.
 *
 * Description:	Industry standard rate 1/2, K=7 code with generator
 *		polynomials g0 = 133 and g1 = 171 (octal).  Output A (g0)
 *		is sent before output B (g1) for each input bit.
 *
 *		The higher rates are obtained by puncturing, i.e. by
 *		leaving out some of the encoder outputs:
 *
 *			r2/3	A: 1 1		B: 1 0
 *			r3/4	A: 1 1 0	B: 1 0 1
 *
 *		Bits are packed MSB first, like everything else here.
 *
 * Reference:	IEEE Std 802.11a-1999, 17.3.5.5 and Figure 115.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math/bits"
)

type FECScheme int

const (
	FECConv12 FECScheme = iota
	FECConv23
	FECConv34
)

// Generator taps with bit 0 being the newest input bit.
// 133 octal = 1 + D^2 + D^3 + D^5 + D^6, 171 octal = 1 + D + D^2 + D^3 + D^6.
const (
	convPolyA = 0x6d
	convPolyB = 0x4f

	convK      = 7
	convStates = 1 << (convK - 1)
)

type puncturePattern struct {
	name string
	a    []byte // Keep output A at this phase?
	b    []byte // Keep output B at this phase?
}

var fecTab = [...]puncturePattern{
	FECConv12: {"r1/2", []byte{1}, []byte{1}},
	FECConv23: {"r2/3", []byte{1, 1}, []byte{1, 0}},
	FECConv34: {"r3/4", []byte{1, 1, 0}, []byte{1, 0, 1}},
}

func (s FECScheme) valid() bool {
	return s >= FECConv12 && int(s) < len(fecTab)
}

func (s FECScheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("FECScheme(%d)", int(s))
	}
	return fecTab[s].name
}

// EncodedBits is the number of channel bits produced for nbits of input.
func (s FECScheme) EncodedBits(nbits int) int {
	var p = fecTab[s]
	var period = len(p.a)
	var n = 0
	for phase := range period {
		// Number of input positions k < nbits with k % period == phase.
		var count = nbits / period
		if phase < nbits%period {
			count++
		}
		n += count * int(p.a[phase]+p.b[phase])
	}
	return n
}

func getBit(buf []byte, i int) byte {
	return (buf[i>>3] >> (7 - i&7)) & 1
}

func setBit(buf []byte, i int) {
	buf[i>>3] |= 0x80 >> (i & 7)
}

func convParity(reg byte) (byte, byte) {
	return byte(bits.OnesCount8(reg&convPolyA) & 1), byte(bits.OnesCount8(reg&convPolyB) & 1)
}

/*------------------------------------------------------------------
 *
 * Name:	FECEncode
 *
 * Purpose:	Convolutional encode and puncture.
 *
 * Inputs:	scheme	- Code rate.
 *		nbits	- Number of input bits to encode.  This is not
 *			  always a multiple of 8; 9 Mb/s carries 36 data
 *			  bits per symbol.
 *		src	- At least ceil(nbits/8) bytes.
 *
 * Returns:	ceil(EncodedBits(nbits)/8) bytes.  The encoder starts in
 *		the all zero state.  No tail is added here, the caller
 *		has already put the tail bits into the data.
 *
 *------------------------------------------------------------------*/

func FECEncode(scheme FECScheme, nbits int, src []byte) ([]byte, error) {
	if !scheme.valid() {
		return nil, fmt.Errorf("fec encode: unknown scheme %d", int(scheme))
	}
	if nbits < 0 || len(src)*8 < nbits {
		return nil, fmt.Errorf("fec encode: %w: %d bits from %d bytes", ErrBufferSize, nbits, len(src))
	}

	var p = fecTab[scheme]
	var period = len(p.a)
	var out = make([]byte, (scheme.EncodedBits(nbits)+7)/8)

	var reg byte
	var ob = 0 // Output bit index.
	for k := range nbits {
		reg = ((reg << 1) | getBit(src, k)) & (1<<convK - 1)

		var a, b = convParity(reg)
		var phase = k % period
		if p.a[phase] != 0 {
			if a != 0 {
				setBit(out, ob)
			}
			ob++
		}
		if p.b[phase] != 0 {
			if b != 0 {
				setBit(out, ob)
			}
			ob++
		}
	}

	return out, nil
}
