package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Rate dependent parameters for the 802.11a/g OFDM PHY.
 *
 * Description:	Each of the eight DATA rates fixes the modulation depth
 *		and the convolutional code rate.  Everything else the
 *		packet codec needs (symbol count, buffer sizes, the
 *		interleaver permutation) is derived from this table.
 *
 * Reference:	IEEE Std 802.11a-1999, Table 78.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"strings"
)

type Rate int

const (
	Rate6 Rate = iota
	Rate9
	Rate12
	Rate18
	Rate24
	Rate36
	Rate48
	Rate54
)

const NumRates = 8

type RateParams struct {
	Mbps  int       // Nominal data rate, Mbit/s.
	Nbpsc int       // Coded bits per subcarrier (modulation depth).
	Ncbps int       // Coded bits per OFDM symbol.
	Ndbps int       // Data bits per OFDM symbol.
	FEC   FECScheme // Convolutional code rate / puncturing.
}

var rateTab = [NumRates]RateParams{
	/* Rate6  */ {6, 1, 48, 24, FECConv12}, //  BPSK, r1/2
	/* Rate9  */ {9, 1, 48, 36, FECConv34}, //  BPSK, r3/4
	/* Rate12 */ {12, 2, 96, 48, FECConv12}, //  QPSK, r1/2
	/* Rate18 */ {18, 2, 96, 72, FECConv34}, //  QPSK, r3/4
	/* Rate24 */ {24, 4, 192, 96, FECConv12}, //  16-QAM, r1/2
	/* Rate36 */ {36, 4, 192, 144, FECConv34}, //  16-QAM, r3/4
	/* Rate48 */ {48, 6, 288, 192, FECConv23}, //  64-QAM, r2/3
	/* Rate54 */ {54, 6, 288, 216, FECConv34}, //  64-QAM, r3/4
}

func init() {
	// Verify integrity of the table.  The codec does all of its symbol
	// bookkeeping in bytes so a coded symbol must be a whole number of bytes.
	for r := range rateTab {
		var p = rateTab[r]
		Assert(p.Ncbps%8 == 0)
		Assert(p.Ncbps%16 == 0) // Interleaver works on 16 columns.
		Assert(p.Ncbps == 48*p.Nbpsc)
		Assert(p.FEC.EncodedBits(p.Ndbps) == p.Ncbps)
	}
}

func (r Rate) Valid() bool {
	return r >= Rate6 && r <= Rate54
}

// Params returns the table entry for r, or ErrInvalidRate.
func (r Rate) Params() (RateParams, error) {
	if !r.Valid() {
		return RateParams{}, fmt.Errorf("%w: %d", ErrInvalidRate, int(r))
	}

	return rateTab[r], nil
}

func (r Rate) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rate(%d)", int(r))
	}

	return fmt.Sprintf("%d Mb/s", rateTab[r].Mbps)
}

// Label is the short form used for metric labels and config files, e.g. "36".
func (r Rate) Label() string {
	if !r.Valid() {
		return "invalid"
	}

	return strconv.Itoa(rateTab[r].Mbps)
}

// ParseRate accepts the nominal rate in Mbit/s, optionally followed by
// "M", "Mbps" or "Mb/s".  e.g. "36", "36M", "54mbps".
func ParseRate(s string) (Rate, error) {
	var t = strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range []string{"mb/s", "mbps", "m"} {
		if strings.HasSuffix(t, suffix) {
			t = strings.TrimSuffix(t, suffix)
			break
		}
	}

	var mbps, err = strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}

	for r := range rateTab {
		if rateTab[r].Mbps == mbps {
			return Rate(r), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidRate, s)
}

// AllRates lists the supported rates, slowest first.
func AllRates() []Rate {
	var rates = make([]Rate, 0, NumRates)
	for r := Rate6; r <= Rate54; r++ {
		rates = append(rates, r)
	}

	return rates
}
