package wlan

import "math/bits"

// The standard sends each PSDU octet LSB first, but everything in this
// package walks bytes MSB first.  Payload octets go through this table on
// the way in and on the way out.
var reverseByteTab [256]byte

func init() {
	for i := range reverseByteTab {
		reverseByteTab[i] = bits.Reverse8(byte(i))
	}
}

// ReverseByte swaps bit 7 with bit 0, bit 6 with bit 1, and so on.
func ReverseByte(b byte) byte {
	return reverseByteTab[b]
}
