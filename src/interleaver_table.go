package wlan

/*------------------------------------------------------------------
 *
 * Name:	wlan-interleaver-table
 *
 * Purpose:	Print the interleaver table for one rate.
 *
 * Description:	For 36 Mb/s, the rate used by Annex G, the first coded
 *		DATA symbol (Table G.18) is also run through the table
 *		and compared with the expected interleaver output
 *		(Table G.21).
 *
 * Examples:	wlan-interleaver-table
 *		wlan-interleaver-table -r 54
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"math/bits"
	"os"

	"github.com/spf13/pflag"
)

func InterleaverTableMain() {
	var rateStr = pflag.StringP("rate", "r", "36", "Data rate in Mb/s: 6, 9, 12, 18, 24, 36, 48 or 54.")
	var check = pflag.BoolP("annex-g", "a", true, "At 36 Mb/s, check the table against Annex G.")
	var debug = pflag.BoolP("debug", "d", false, "Debug logging.")
	var version = pflag.BoolP("version", "v", false, "Print version and exit.  With -d, also list dependencies.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Print the 802.11a/g interleaver table.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Each line is:  k : source byte > destination byte [source mask, destination mask]\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
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

	if *debug {
		_ = SetLogLevel("debug")
	}

	var rate, err = ParseRate(*rateStr)
	if err != nil {
		logger.Error("bad rate", "err", err)
		pflag.Usage()
		os.Exit(1)
	}

	var biterrs, printErr = printInterleaverTable(os.Stdout, rate, *check)
	if printErr != nil {
		logger.Error("interleaver table", "err", printErr)
		os.Exit(1)
	}

	if biterrs > 0 {
		os.Exit(1)
	}
}

/*------------------------------------------------------------------
 *
 * Name:	printInterleaverTable
 *
 * Inputs:	w	- Where to print.
 *		rate	- Which table.
 *		check	- Compare with Annex G when rate is 36 Mb/s.
 *
 * Returns:	Number of bits that differ from Table G.21, 0 when no
 *		check was done.
 *
 *------------------------------------------------------------------*/

func printInterleaverTable(w io.Writer, rate Rate, check bool) (int, error) {
	var tab, err = GenerateInterleaverTable(rate)
	if err != nil {
		return 0, err
	}

	for k, e := range tab.Entries {
		fmt.Fprintf(w, "  %3d : %3d > %3d [mask0 = 0x%.2x, mask1 = 0x%.2x]\n",
			k, e.SrcByte, e.DstByte, e.SrcMask, e.DstMask)
	}

	var biterrs = 0

	if check && rate == AnnexGRate {
		var in = annexGSymbol(AnnexGCoded, 0)
		var expected = annexGSymbol(AnnexGInterleaved, 0)
		var out = make([]byte, tab.SymbolBytes())

		if err := tab.InterleaveSymbol(out, in); err != nil {
			return 0, err
		}

		fmt.Fprintf(w, "interleaved:\n")

		for i := range out {
			fmt.Fprintf(w, "%3d : 0x%.2x > 0x%.2x (0x%.2x)%s\n",
				i, in[i], out[i], expected[i], IfThenElse(out[i] == expected[i], "", " *"))
			biterrs += bits.OnesCount8(out[i] ^ expected[i])
		}

		fmt.Fprintf(w, "errors : %3d / %3d\n", biterrs, tab.Ncbps)
	}

	fmt.Fprintf(w, "done.\n")

	return biterrs, nil
}
