package wlan

/*------------------------------------------------------------------
 *
 * Name:	wlan-packet-test
 *
 * Purpose:	Round trip test of the DATA field codec.
 *
 * Description:	Random payloads of each length are encoded at each rate,
 *		optionally damaged by flipping channel bits, then decoded
 *		and compared with what was sent.
 *
 *		With bit errors, a frame the decoder rejects as
 *		uncorrectable is reported but is not a failure.  A frame
 *		that decodes to the wrong payload, or any problem at all
 *		without bit errors, is.
 *
 *		Each rate is tested in its own goroutine.
 *
 * Examples:	wlan-packet-test
 *		wlan-packet-test -r 6,36,54 -l 0,1,100,1500 -n 10
 *		wlan-packet-test -a -d
 *		wlan-packet-test -c test.yaml -e 2 -T "%H:%M:%S"
 *		wlan-packet-test -r 36 -l 100 -o frames.txt
 *
 *------------------------------------------------------------------*/

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func PacketTestMain() {
	var configFile = pflag.StringP("config", "c", "", "YAML configuration file.")
	var rates = pflag.StringSliceP("rates", "r", nil, "Rates to test, e.g. 6,36,54.  Default is all of them.")
	var lengths = pflag.IntSliceP("lengths", "l", nil, "Payload lengths to test, e.g. 0,1,100,1500.")
	var seedStr = pflag.StringP("seed", "s", "", "Scrambler seed, 1 to 127.  e.g. 93 or 0x5d.")
	var iterations = pflag.IntP("iterations", "n", 1, "Random payloads for each rate and length.  0 with -a checks only Annex G.")
	var bitErrors = pflag.IntP("bit-errors", "e", 0, "Channel bits to flip in each frame.")
	var randomSeed = pflag.Uint64P("random-seed", "R", 1, "Seed for the payload and bit error generator.")
	var annexG = pflag.BoolP("annex-g", "a", false, "Also check the IEEE 802.11a Annex G example.")
	var outputFile = pflag.StringP("output-file", "o", "", "Write the encoded frames here, one hex line each.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede report lines with 'strftime' format time stamp.")
	var debug = pflag.BoolP("debug", "d", false, "Debug logging, including every intermediate buffer.")
	var version = pflag.BoolP("version", "v", false, "Print version and exit.  With -d, also list dependencies.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Round trip test of the 802.11a/g DATA field codec.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Options given on the command line override the configuration file.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	if *version {
		printVersion(os.Stdout, *debug)
		return
	}

	var cfg = DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = LoadConfig(*configFile)
		if err != nil {
			logger.Error("can't load configuration", "err", err)
			os.Exit(1)
		}
	}

	if pflag.CommandLine.Changed("rates") {
		cfg.Rates = *rates
	}
	if pflag.CommandLine.Changed("lengths") {
		cfg.Lengths = *lengths
	}
	if *seedStr != "" {
		var seed, err = ParseSeed(*seedStr)
		if err != nil {
			logger.Error("bad seed", "err", err)
			os.Exit(1)
		}
		cfg.Seed = int(seed)
	}
	if pflag.CommandLine.Changed("iterations") {
		cfg.Iterations = *iterations
	}
	if pflag.CommandLine.Changed("bit-errors") {
		cfg.BitErrors = *bitErrors
	}
	if *timestampFormat != "" {
		cfg.TimestampFormat = *timestampFormat
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("bad options", "err", err)
		os.Exit(1)
	}

	if err := SetLogLevel(cfg.LogLevel); err != nil {
		logger.Error("bad options", "err", err)
		os.Exit(1)
	}

	var frames io.Writer
	if *outputFile != "" {
		var f, err = os.Create(*outputFile)
		if err != nil {
			logger.Error("can't create output file", "file", *outputFile, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		frames = f
	}

	var pt = &packetTester{
		cfg:        cfg,
		codec:      NewCodec(cfg),
		randomSeed: *randomSeed,
		report:     os.Stdout,
		frames:     frames,
	}

	var failures, err = pt.run(*annexG)
	if err != nil {
		logger.Error("packet test", "err", err)
		os.Exit(1)
	}

	if failures > 0 {
		fmt.Printf("%d FAILED\n", failures)
		os.Exit(1)
	}
}

type packetStats struct {
	count         int
	failures      int
	uncorrectable int
	injected      int
	corrected     int
}

func (s *packetStats) add(o packetStats) {
	s.count += o.count
	s.failures += o.failures
	s.uncorrectable += o.uncorrectable
	s.injected += o.injected
	s.corrected += o.corrected
}

type packetTester struct {
	cfg        Config
	codec      *Codec
	randomSeed uint64
	report     io.Writer
	frames     io.Writer // nil for none.

	packetStats
}

// One rate's share of the work.  Each runs in its own goroutine and keeps
// its output to itself until they are all done.
type rateRun struct {
	cfg    *Config
	codec  *Codec
	rate   Rate
	rng    *rand.Rand
	report bytes.Buffer
	frames bytes.Buffer

	packetStats
}

var failColor = color.New(color.FgRed, color.Bold)

// Print one line of the report, with a time stamp in front if asked.
func stampf(w io.Writer, cfg *Config, c *color.Color, format string, a ...any) {
	if cfg.TimestampFormat != "" {
		var ts, err = strftime.Format(cfg.TimestampFormat, time.Now())
		if err == nil {
			fmt.Fprintf(w, "[%s] ", ts)
		}
	}

	if c != nil {
		c.Fprintf(w, format, a...)
	} else {
		fmt.Fprintf(w, format, a...)
	}
}

/*------------------------------------------------------------------
 *
 * Name:	run
 *
 * Purpose:	Test every configured rate and length.
 *
 * Inputs:	annexG	- Also check the Annex G example.
 *
 * Returns:	Number of failed frames.  The error is only for
 *		configuration or output file problems.
 *
 * Description:	Rates are tested in parallel.  The report comes out in
 *		rate order regardless, and the payloads depend only on
 *		the random seed and the rate, so a run can be repeated.
 *
 *------------------------------------------------------------------*/

func (pt *packetTester) run(annexG bool) (int, error) {
	var rates, err = pt.cfg.ParsedRates()
	if err != nil {
		return 0, err
	}

	if annexG {
		pt.checkAnnexG()
	}

	var runs = make([]*rateRun, len(rates))
	var g errgroup.Group

	for i, rate := range rates {
		var rr = &rateRun{
			cfg:   &pt.cfg,
			codec: pt.codec,
			rate:  rate,
			rng:   rand.New(rand.NewPCG(pt.randomSeed, uint64(rate))), //nolint:gosec
		}
		runs[i] = rr

		g.Go(func() error {
			rr.run()
			return nil
		})
	}

	_ = g.Wait()

	for _, rr := range runs {
		if _, err := rr.report.WriteTo(pt.report); err != nil {
			return pt.failures, fmt.Errorf("writing report: %w", err)
		}

		if pt.frames != nil {
			if _, err := rr.frames.WriteTo(pt.frames); err != nil {
				return pt.failures, fmt.Errorf("writing frames: %w", err)
			}
		}

		pt.add(rr.packetStats)
	}

	stampf(pt.report, &pt.cfg, nil, "%d frames, %d failed, %d uncorrectable, %d of %d bit errors corrected\n",
		pt.count, pt.failures, pt.uncorrectable, pt.corrected, pt.injected)

	return pt.failures, nil
}

func (rr *rateRun) run() {
	var seed = rr.cfg.SeedByte()

	for _, length := range rr.cfg.Lengths {
		for range rr.cfg.Iterations {
			rr.roundTrip(seed, length)
		}
	}
}

func (rr *rateRun) printf(format string, a ...any) {
	stampf(&rr.report, rr.cfg, nil, format, a...)
}

func (rr *rateRun) fail(format string, a ...any) {
	rr.failures++
	stampf(&rr.report, rr.cfg, failColor, format, a...)
}

func (rr *rateRun) roundTrip(seed byte, length int) {
	var rate = rr.rate

	rr.count++

	var payload = make([]byte, length)
	for i := range payload {
		payload[i] = byte(rr.rng.UintN(256))
	}

	var channel, err = rr.codec.Encode(rate, seed, payload)
	if err != nil {
		rr.fail("%-8s len %4d  encode FAILED: %s\n", rate, length, err)
		return
	}

	fmt.Fprintf(&rr.frames, "%s %d 0x%02x %s\n", rate.Label(), length, seed, hex.EncodeToString(channel))

	var nflip = rr.injectErrors(channel)
	rr.injected += nflip

	var decoded, stats, decErr = rr.codec.DecodeWithStats(rate, seed, length, channel)

	switch {
	case errors.Is(decErr, ErrUncorrectable) && nflip > 0:
		rr.uncorrectable++
		rr.printf("%-8s len %4d  uncorrectable with %d bit errors\n", rate, length, nflip)
	case decErr != nil:
		rr.fail("%-8s len %4d  decode FAILED: %s\n", rate, length, decErr)
	case !bytes.Equal(decoded, payload):
		rr.fail("%-8s len %4d  FAILED, payload differs, %d bit errors, %d corrected\n",
			rate, length, nflip, stats.CorrectedBits)
	default:
		rr.corrected += stats.CorrectedBits
		rr.printf("%-8s len %4d  ok, %d bit errors, %d corrected\n", rate, length, nflip, stats.CorrectedBits)
	}
}

// Flip cfg.BitErrors channel bits, spread over every other OFDM symbol
// so that each error burst is short enough for the Viterbi decoder.
func (rr *rateRun) injectErrors(channel []byte) int {
	if rr.cfg.BitErrors == 0 || len(channel) == 0 {
		return 0
	}

	var p, _ = rr.rate.Params()
	var n = p.Ncbps / 8
	var nsym = len(channel) / n

	for i := range rr.cfg.BitErrors {
		var sym = (2 * i) % nsym
		var bit = rr.rng.IntN(p.Ncbps)
		channel[sym*n+bit/8] ^= 0x80 >> (bit % 8)
	}

	return rr.cfg.BitErrors
}

// Encode the Table G.1 message and compare each stage with Annex G.
func (pt *packetTester) checkAnnexG() {
	pt.count++

	var channel, err = pt.codec.Encode(AnnexGRate, AnnexGSeed, AnnexGMessage)
	if err != nil {
		pt.failures++
		stampf(pt.report, &pt.cfg, failColor, "Annex G encode FAILED: %s\n", err)
		return
	}

	if !bytes.Equal(channel, AnnexGInterleaved) {
		pt.failures++
		stampf(pt.report, &pt.cfg, failColor, "Annex G encode FAILED, DATA field differs from Annex G\n")
		logger.Debugf("expected:\n%s", hexDump(AnnexGInterleaved))
		logger.Debugf("got:\n%s", hexDump(channel))
		return
	}

	var decoded, decErr = pt.codec.Decode(AnnexGRate, AnnexGSeed, len(AnnexGMessage), channel)
	if decErr != nil || !bytes.Equal(decoded, AnnexGMessage) {
		pt.failures++
		stampf(pt.report, &pt.cfg, failColor, "Annex G decode FAILED: %v\n", decErr)
		return
	}

	stampf(pt.report, &pt.cfg, nil, "Annex G %s, %d bytes, ok\n", AnnexGRate, len(AnnexGMessage))
}
