package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Turn a PSDU into the coded, scrambled, interleaved bits of
 *		the DATA field, and back again.
 *
 * Description:	Transmit order:
 *
 *			SERVICE + PSDU + tail + pad, PSDU bits reversed
 *			scramble
 *			zero the tail bits
 *			convolutional encode
 *			interleave, one OFDM symbol at a time
 *
 *		Receive is the same in reverse.  Scrambling is its own
 *		inverse so it is done again with the same seed.
 *
 *		The intermediate buffers can be compared with the
 *		Annex G example (Tables G.13 - G.21) by setting the log
 *		level to debug.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	serviceBits = 16
	tailBits    = 6
	serviceLen  = serviceBits / 8 // SERVICE field bytes in front of the PSDU.
)

// FrameLengths is the bit and byte accounting for one DATA field.
type FrameLengths struct {
	Nsym   int // OFDM symbols.
	Ndata  int // Data bits, Nsym * Ndbps.
	Npad   int // Pad bits after the tail.
	DecLen int // Bytes before FEC, ceil(Ndata / 8).
	EncLen int // Bytes after FEC, Nsym * Ncbps / 8.
}

func frameLengths(p RateParams, length int) FrameLengths {
	var nbits = serviceBits + 8*length + tailBits
	var nsym = (nbits + p.Ndbps - 1) / p.Ndbps
	var ndata = nsym * p.Ndbps

	// Ndbps is a multiple of 8 except at 9 Mb/s, where an odd number of
	// symbols leaves half a byte over.  That nibble is padding which the
	// FEC never sees.
	var fl = FrameLengths{
		Nsym:   nsym,
		Ndata:  ndata,
		Npad:   ndata - nbits,
		DecLen: (ndata + 7) / 8,
		EncLen: nsym * p.Ncbps / 8,
	}

	Assert(fl.EncLen*8 == p.FEC.EncodedBits(ndata))

	return fl
}

// ComputeFrameLengths returns the symbol count and buffer sizes for a PSDU
// of length bytes at rate.
func ComputeFrameLengths(rate Rate, length int) (FrameLengths, error) {
	var p, err = rate.Params()
	if err != nil {
		return FrameLengths{}, err
	}
	if length < 0 {
		return FrameLengths{}, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	return frameLengths(p, length), nil
}

// Codec applies a length limit and records metrics around the pipeline.
// It holds no per-call state and can be shared between goroutines.
type Codec struct {
	maxLength int
}

func NewCodec(cfg Config) *Codec {
	var maxLength = cfg.MaxLength
	if maxLength <= 0 {
		maxLength = MaxPSDULength
	}

	return &Codec{maxLength: maxLength}
}

var defaultCodec = NewCodec(DefaultConfig())

// MaxLength is the longest PSDU this codec accepts.
func (c *Codec) MaxLength() int {
	return c.maxLength
}

func (c *Codec) checkLength(length int) error {
	if length < 0 || length > c.maxLength {
		return fmt.Errorf("%w: %d, must be 0 to %d", ErrInvalidLength, length, c.maxLength)
	}
	return nil
}

// EncodedLength is the number of channel bytes for a PSDU of length bytes.
func (c *Codec) EncodedLength(rate Rate, length int) (int, error) {
	var p, err = rate.Params()
	if err != nil {
		return 0, fmt.Errorf("encoded length: %w", err)
	}
	if err := c.checkLength(length); err != nil {
		return 0, fmt.Errorf("encoded length: %w", err)
	}

	return frameLengths(p, length).EncLen, nil
}

func dumpStage(title string, p []byte) {
	if logger.GetLevel() > log.DebugLevel {
		return
	}
	logger.Debugf("%s (%d bytes):\n%s", title, len(p), hexDump(p))
}

/*------------------------------------------------------------------
 *
 * Name:	Encode
 *
 * Purpose:	Assemble, scramble, encode and interleave.
 *
 * Inputs:	rate	- One of Rate6 .. Rate54.
 *		seed	- Scrambler initial state, low 7 bits.
 *		payload	- PSDU.
 *
 * Returns:	EncodedLength(rate, len(payload)) bytes of channel bits,
 *		first OFDM symbol first, MSB first within each byte.
 *
 *------------------------------------------------------------------*/

func (c *Codec) Encode(rate Rate, seed byte, payload []byte) ([]byte, error) {
	var p, err = rate.Params()
	if err != nil {
		return nil, fmt.Errorf("packet encode: %w", err)
	}

	var length = len(payload)
	if err := c.checkLength(length); err != nil {
		return nil, fmt.Errorf("packet encode: %w", err)
	}

	var fl = frameLengths(p, length)
	var tab, _ = InterleaverTableFor(rate)

	logger.Debug("packet encode", "rate", rate, "length", length,
		"nsym", fl.Nsym, "ndata", fl.Ndata, "npad", fl.Npad, "dec_len", fl.DecLen, "enc_len", fl.EncLen)

	// SERVICE is all zero going into the scrambler.  The tail and pad
	// that follow the PSDU are zero too.
	var msg = make([]byte, fl.DecLen)
	for i, b := range payload {
		msg[serviceLen+i] = ReverseByte(b)
	}
	dumpStage("original data, Table G.13", msg)

	Scramble(msg, msg, seed)

	// The six tail bits must go out as zeros so the decoder ends up back
	// in state 0.  They are the first six bits after the PSDU.
	msg[serviceLen+length] &= 0x03
	dumpStage("scrambled data, Table G.16", msg)

	var coded, fecErr = FECEncode(p.FEC, fl.Ndata, msg)
	Assert(fecErr == nil && len(coded) == fl.EncLen)
	dumpStage("coded data, Table G.18", coded)

	var out = make([]byte, fl.EncLen)
	var n = tab.SymbolBytes()
	for sym := range fl.Nsym {
		tab.interleaveSymbol(out[sym*n:(sym+1)*n], coded[sym*n:(sym+1)*n])
	}
	dumpStage("interleaved data, Table G.21", out)

	packetsEncoded.WithLabelValues(rate.Label()).Inc()

	return out, nil
}

// DecodeStats reports what the FEC had to do to recover a frame.
type DecodeStats struct {
	CorrectedBits int // Channel bits that disagreed with the decoded path.
}

func (c *Codec) Decode(rate Rate, seed byte, length int, channel []byte) ([]byte, error) {
	var payload, _, err = c.DecodeWithStats(rate, seed, length, channel)
	return payload, err
}

/*------------------------------------------------------------------
 *
 * Name:	DecodeWithStats
 *
 * Purpose:	Deinterleave, decode, descramble and extract the PSDU.
 *
 * Inputs:	rate, seed	- As used for Encode.
 *		length		- PSDU length in bytes.  Normally from the
 *				  SIGNAL field, which is outside of this.
 *		channel		- EncodedLength(rate, length) bytes.
 *
 * Returns:	length bytes of PSDU.
 *
 * Errors:	ErrUncorrectable if the recovered SERVICE field or tail
 *		bits are not zero.  Both are known to be zero at the
 *		transmitter, so anything else means the Viterbi decoder
 *		picked the wrong path.
 *
 *------------------------------------------------------------------*/

func (c *Codec) DecodeWithStats(rate Rate, seed byte, length int, channel []byte) ([]byte, DecodeStats, error) {
	var payload, _, stats, err = c.decode(rate, seed, false, length, channel)
	return payload, stats, err
}

// DecodeAnySeed is Decode for when the transmitter's scrambler seed is not
// known.  The seed is recovered from the first 7 bits of the SERVICE field,
// which the standard requires to be zero before scrambling.
func (c *Codec) DecodeAnySeed(rate Rate, length int, channel []byte) ([]byte, byte, error) {
	var payload, seed, _, err = c.decode(rate, 0, true, length, channel)
	return payload, seed, err
}

func (c *Codec) decode(rate Rate, seed byte, findSeed bool, length int, channel []byte) ([]byte, byte, DecodeStats, error) {
	var stats DecodeStats

	var p, err = rate.Params()
	if err != nil {
		return nil, 0, stats, fmt.Errorf("packet decode: %w", err)
	}

	if err := c.checkLength(length); err != nil {
		decodeFailures.WithLabelValues(rate.Label(), reasonLength).Inc()
		return nil, 0, stats, fmt.Errorf("packet decode: %w", err)
	}

	var fl = frameLengths(p, length)
	if len(channel) != fl.EncLen {
		decodeFailures.WithLabelValues(rate.Label(), reasonBufferSize).Inc()
		return nil, 0, stats, fmt.Errorf("packet decode: %w: expected %d bytes for %d byte PSDU at %s, got %d",
			ErrBufferSize, fl.EncLen, length, rate, len(channel))
	}

	var tab, _ = InterleaverTableFor(rate)

	var deint = make([]byte, fl.EncLen)
	var n = tab.SymbolBytes()
	for sym := range fl.Nsym {
		tab.deinterleaveSymbol(deint[sym*n:(sym+1)*n], channel[sym*n:(sym+1)*n])
	}
	dumpStage("deinterleaved data, Table G.18", deint)

	var msg, corrected, fecErr = FECDecode(p.FEC, fl.Ndata, deint)
	Assert(fecErr == nil && len(msg) == fl.DecLen)
	stats.CorrectedBits = corrected
	fecCorrectedBits.WithLabelValues(rate.Label()).Add(float64(corrected))
	dumpStage("decoded data, Table G.16", msg)

	if findSeed {
		seed = RecoverSeed(msg[0] >> 1)
		logger.Debug("recovered scrambler seed", "seed", fmt.Sprintf("0x%02x", seed))
	}

	var tail = msg[serviceLen+length] &^ 0x03

	Scramble(msg, msg, seed)
	dumpStage("descrambled data, Table G.13", msg)

	if tail != 0 || msg[0] != 0 || msg[1] != 0 {
		decodeFailures.WithLabelValues(rate.Label(), reasonUncorrectable).Inc()
		logger.Debug("packet decode failed", "rate", rate, "length", length,
			"service", fmt.Sprintf("%02x%02x", msg[0], msg[1]), "tail", fmt.Sprintf("%02x", tail), "corrected", corrected)
		return nil, 0, stats, fmt.Errorf("packet decode: %w: service %02x%02x, tail %02x after %d corrections",
			ErrUncorrectable, msg[0], msg[1], tail, corrected)
	}

	var payload = make([]byte, length)
	for i := range payload {
		payload[i] = ReverseByte(msg[serviceLen+i])
	}

	packetsDecoded.WithLabelValues(rate.Label()).Inc()
	logger.Debug("packet decode", "rate", rate, "length", length, "corrected", corrected)

	return payload, seed, stats, nil
}

// ComputeEncodedLength is EncodedLength with the default limits.
func ComputeEncodedLength(rate Rate, length int) (int, error) {
	return defaultCodec.EncodedLength(rate, length)
}

// PacketEncode is Encode with the default limits.
func PacketEncode(rate Rate, seed byte, payload []byte) ([]byte, error) {
	return defaultCodec.Encode(rate, seed, payload)
}

// PacketDecode is Decode with the default limits.
func PacketDecode(rate Rate, seed byte, length int, channel []byte) ([]byte, error) {
	return defaultCodec.Decode(rate, seed, length, channel)
}
