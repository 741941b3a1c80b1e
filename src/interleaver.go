package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Block interleaver for one OFDM symbol of coded bits.
 *
 * Description:	Two permutations, done once per rate and kept as a table
 *		of byte index / bit mask pairs.  The first spreads adjacent
 *		coded bits onto nonadjacent subcarriers.  The second
 *		alternates adjacent bits between more and less significant
 *		bits of the constellation.
 *
 *			i = (Ncbps/16) (k mod 16) + floor(k/16)
 *			j = s floor(i/s) + (i + Ncbps - floor(16 i/Ncbps)) mod s
 *
 *		where s = max(Nbpsc/2, 1).  Coded bit k ends up at position
 *		j.  Bit 0 of a symbol is the MSB of byte 0.
 *
 * Reference:	IEEE Std 802.11a-1999, 17.3.5.6.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"sync"
)

// InterleaverEntry moves one coded bit.  The src side is the
// deinterleaved (FEC output) symbol, dst is the interleaved symbol.
type InterleaverEntry struct {
	SrcByte uint16
	DstByte uint16
	SrcMask byte
	DstMask byte
}

type InterleaverTable struct {
	Rate    Rate
	Ncbps   int
	Entries []InterleaverEntry // Indexed by coded bit position k.
}

/*------------------------------------------------------------------
 *
 * Name:	GenerateInterleaverTable
 *
 * Purpose:	Compute the permutation table for one rate.
 *
 * Returns:	A new table of Ncbps entries, or ErrInvalidRate.
 *
 * Description:	This always computes a fresh table.  The codec goes
 *		through InterleaverTableFor which caches them.
 *
 *------------------------------------------------------------------*/

func GenerateInterleaverTable(rate Rate) (*InterleaverTable, error) {
	var params, err = rate.Params()
	if err != nil {
		return nil, fmt.Errorf("generate interleaver table: %w", err)
	}

	var ncbps = params.Ncbps
	var s = max(params.Nbpsc/2, 1)

	var t = &InterleaverTable{
		Rate:    rate,
		Ncbps:   ncbps,
		Entries: make([]InterleaverEntry, ncbps),
	}

	for k := range ncbps {
		var i = (ncbps/16)*(k%16) + k/16
		var j = s*(i/s) + (i+ncbps-(16*i)/ncbps)%s

		t.Entries[k] = InterleaverEntry{
			SrcByte: uint16(k / 8),
			DstByte: uint16(j / 8),
			SrcMask: 0x80 >> (k % 8),
			DstMask: 0x80 >> (j % 8),
		}
	}

	return t, nil
}

var interleaverCache [NumRates]struct {
	once  sync.Once
	table *InterleaverTable
}

// InterleaverTableFor returns the shared table for rate, generating it on
// first use.  The result must not be modified.
func InterleaverTableFor(rate Rate) (*InterleaverTable, error) {
	if !rate.Valid() {
		return nil, fmt.Errorf("interleaver table: %w: %d", ErrInvalidRate, int(rate))
	}

	var c = &interleaverCache[rate]
	c.once.Do(func() {
		var t, err = GenerateInterleaverTable(rate)
		Assert(err == nil)
		c.table = t
	})

	return c.table, nil
}

// SymbolBytes is the size of one coded OFDM symbol, Ncbps/8.
func (t *InterleaverTable) SymbolBytes() int {
	return t.Ncbps / 8
}

// Permutation returns j for each coded bit position k.
func (t *InterleaverTable) Permutation() []int {
	var perm = make([]int, len(t.Entries))
	for k, e := range t.Entries {
		perm[k] = int(e.DstByte)*8 + maskBitIndex(e.DstMask)
	}
	return perm
}

// MSB first bit number of a single bit mask: 0x80 -> 0, 0x01 -> 7.
func maskBitIndex(mask byte) int {
	for i := range 8 {
		if mask == 0x80>>i {
			return i
		}
	}
	return -1
}

func (t *InterleaverTable) checkSizes(op string, dst []byte, src []byte) error {
	var n = t.SymbolBytes()
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%s: %w: %s symbol is %d bytes, got dst %d, src %d",
			op, ErrBufferSize, t.Rate, n, len(dst), len(src))
	}
	return nil
}

// InterleaveSymbol permutes one symbol of FEC output, src, into dst.
// Both must be exactly SymbolBytes long.
func (t *InterleaverTable) InterleaveSymbol(dst []byte, src []byte) error {
	if err := t.checkSizes("interleave", dst, src); err != nil {
		return err
	}
	t.interleaveSymbol(dst, src)
	return nil
}

// DeinterleaveSymbol undoes InterleaveSymbol.  The table is the same, with
// the roles of the src and dst sides swapped.
func (t *InterleaverTable) DeinterleaveSymbol(dst []byte, src []byte) error {
	if err := t.checkSizes("deinterleave", dst, src); err != nil {
		return err
	}
	t.deinterleaveSymbol(dst, src)
	return nil
}

func (t *InterleaverTable) interleaveSymbol(dst []byte, src []byte) {
	clear(dst)
	for _, e := range t.Entries {
		if src[e.SrcByte]&e.SrcMask != 0 {
			dst[e.DstByte] |= e.DstMask
		}
	}
}

func (t *InterleaverTable) deinterleaveSymbol(dst []byte, src []byte) {
	clear(dst)
	for _, e := range t.Entries {
		if src[e.DstByte]&e.DstMask != 0 {
			dst[e.SrcByte] |= e.SrcMask
		}
	}
}
