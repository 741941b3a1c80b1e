package main

import (
	"os"

	"github.com/spf13/pflag"
)

// main is run more than once, each time needs fresh flags.
func setArgs(args ...string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(args[0], pflag.ExitOnError)
}

// Annex G check, only done at 36 Mb/s.
func Example_main() {
	setArgs("wlan-interleaver-table")

	main()
	// Output:
	//     0 :   0 >   0 [mask0 = 0x80, mask1 = 0x80]
	//     1 :   0 >   1 [mask0 = 0x40, mask1 = 0x04]
	//     2 :   0 >   3 [mask0 = 0x20, mask1 = 0x80]
	//     3 :   0 >   4 [mask0 = 0x10, mask1 = 0x04]
	//     4 :   0 >   6 [mask0 = 0x08, mask1 = 0x80]
	//     5 :   0 >   7 [mask0 = 0x04, mask1 = 0x04]
	//     6 :   0 >   9 [mask0 = 0x02, mask1 = 0x80]
	//     7 :   0 >  10 [mask0 = 0x01, mask1 = 0x04]
	//     8 :   1 >  12 [mask0 = 0x80, mask1 = 0x80]
	//     9 :   1 >  13 [mask0 = 0x40, mask1 = 0x04]
	//    10 :   1 >  15 [mask0 = 0x20, mask1 = 0x80]
	//    11 :   1 >  16 [mask0 = 0x10, mask1 = 0x04]
	//    12 :   1 >  18 [mask0 = 0x08, mask1 = 0x80]
	//    13 :   1 >  19 [mask0 = 0x04, mask1 = 0x04]
	//    14 :   1 >  21 [mask0 = 0x02, mask1 = 0x80]
	//    15 :   1 >  22 [mask0 = 0x01, mask1 = 0x04]
	//    16 :   2 >   0 [mask0 = 0x80, mask1 = 0x40]
	//    17 :   2 >   1 [mask0 = 0x40, mask1 = 0x08]
	//    18 :   2 >   3 [mask0 = 0x20, mask1 = 0x40]
	//    19 :   2 >   4 [mask0 = 0x10, mask1 = 0x08]
	//    20 :   2 >   6 [mask0 = 0x08, mask1 = 0x40]
	//    21 :   2 >   7 [mask0 = 0x04, mask1 = 0x08]
	//    22 :   2 >   9 [mask0 = 0x02, mask1 = 0x40]
	//    23 :   2 >  10 [mask0 = 0x01, mask1 = 0x08]
	//    24 :   3 >  12 [mask0 = 0x80, mask1 = 0x40]
	//    25 :   3 >  13 [mask0 = 0x40, mask1 = 0x08]
	//    26 :   3 >  15 [mask0 = 0x20, mask1 = 0x40]
	//    27 :   3 >  16 [mask0 = 0x10, mask1 = 0x08]
	//    28 :   3 >  18 [mask0 = 0x08, mask1 = 0x40]
	//    29 :   3 >  19 [mask0 = 0x04, mask1 = 0x08]
	//    30 :   3 >  21 [mask0 = 0x02, mask1 = 0x40]
	//    31 :   3 >  22 [mask0 = 0x01, mask1 = 0x08]
	//    32 :   4 >   0 [mask0 = 0x80, mask1 = 0x20]
	//    33 :   4 >   1 [mask0 = 0x40, mask1 = 0x01]
	//    34 :   4 >   3 [mask0 = 0x20, mask1 = 0x20]
	//    35 :   4 >   4 [mask0 = 0x10, mask1 = 0x01]
	//    36 :   4 >   6 [mask0 = 0x08, mask1 = 0x20]
	//    37 :   4 >   7 [mask0 = 0x04, mask1 = 0x01]
	//    38 :   4 >   9 [mask0 = 0x02, mask1 = 0x20]
	//    39 :   4 >  10 [mask0 = 0x01, mask1 = 0x01]
	//    40 :   5 >  12 [mask0 = 0x80, mask1 = 0x20]
	//    41 :   5 >  13 [mask0 = 0x40, mask1 = 0x01]
	//    42 :   5 >  15 [mask0 = 0x20, mask1 = 0x20]
	//    43 :   5 >  16 [mask0 = 0x10, mask1 = 0x01]
	//    44 :   5 >  18 [mask0 = 0x08, mask1 = 0x20]
	//    45 :   5 >  19 [mask0 = 0x04, mask1 = 0x01]
	//    46 :   5 >  21 [mask0 = 0x02, mask1 = 0x20]
	//    47 :   5 >  22 [mask0 = 0x01, mask1 = 0x01]
	//    48 :   6 >   0 [mask0 = 0x80, mask1 = 0x10]
	//    49 :   6 >   1 [mask0 = 0x40, mask1 = 0x02]
	//    50 :   6 >   3 [mask0 = 0x20, mask1 = 0x10]
	//    51 :   6 >   4 [mask0 = 0x10, mask1 = 0x02]
	//    52 :   6 >   6 [mask0 = 0x08, mask1 = 0x10]
	//    53 :   6 >   7 [mask0 = 0x04, mask1 = 0x02]
	//    54 :   6 >   9 [mask0 = 0x02, mask1 = 0x10]
	//    55 :   6 >  10 [mask0 = 0x01, mask1 = 0x02]
	//    56 :   7 >  12 [mask0 = 0x80, mask1 = 0x10]
	//    57 :   7 >  13 [mask0 = 0x40, mask1 = 0x02]
	//    58 :   7 >  15 [mask0 = 0x20, mask1 = 0x10]
	//    59 :   7 >  16 [mask0 = 0x10, mask1 = 0x02]
	//    60 :   7 >  18 [mask0 = 0x08, mask1 = 0x10]
	//    61 :   7 >  19 [mask0 = 0x04, mask1 = 0x02]
	//    62 :   7 >  21 [mask0 = 0x02, mask1 = 0x10]
	//    63 :   7 >  22 [mask0 = 0x01, mask1 = 0x02]
	//    64 :   8 >   0 [mask0 = 0x80, mask1 = 0x08]
	//    65 :   8 >   2 [mask0 = 0x40, mask1 = 0x40]
	//    66 :   8 >   3 [mask0 = 0x20, mask1 = 0x08]
	//    67 :   8 >   5 [mask0 = 0x10, mask1 = 0x40]
	//    68 :   8 >   6 [mask0 = 0x08, mask1 = 0x08]
	//    69 :   8 >   8 [mask0 = 0x04, mask1 = 0x40]
	//    70 :   8 >   9 [mask0 = 0x02, mask1 = 0x08]
	//    71 :   8 >  11 [mask0 = 0x01, mask1 = 0x40]
	//    72 :   9 >  12 [mask0 = 0x80, mask1 = 0x08]
	//    73 :   9 >  14 [mask0 = 0x40, mask1 = 0x40]
	//    74 :   9 >  15 [mask0 = 0x20, mask1 = 0x08]
	//    75 :   9 >  17 [mask0 = 0x10, mask1 = 0x40]
	//    76 :   9 >  18 [mask0 = 0x08, mask1 = 0x08]
	//    77 :   9 >  20 [mask0 = 0x04, mask1 = 0x40]
	//    78 :   9 >  21 [mask0 = 0x02, mask1 = 0x08]
	//    79 :   9 >  23 [mask0 = 0x01, mask1 = 0x40]
	//    80 :  10 >   0 [mask0 = 0x80, mask1 = 0x04]
	//    81 :  10 >   2 [mask0 = 0x40, mask1 = 0x80]
	//    82 :  10 >   3 [mask0 = 0x20, mask1 = 0x04]
	//    83 :  10 >   5 [mask0 = 0x10, mask1 = 0x80]
	//    84 :  10 >   6 [mask0 = 0x08, mask1 = 0x04]
	//    85 :  10 >   8 [mask0 = 0x04, mask1 = 0x80]
	//    86 :  10 >   9 [mask0 = 0x02, mask1 = 0x04]
	//    87 :  10 >  11 [mask0 = 0x01, mask1 = 0x80]
	//    88 :  11 >  12 [mask0 = 0x80, mask1 = 0x04]
	//    89 :  11 >  14 [mask0 = 0x40, mask1 = 0x80]
	//    90 :  11 >  15 [mask0 = 0x20, mask1 = 0x04]
	//    91 :  11 >  17 [mask0 = 0x10, mask1 = 0x80]
	//    92 :  11 >  18 [mask0 = 0x08, mask1 = 0x04]
	//    93 :  11 >  20 [mask0 = 0x04, mask1 = 0x80]
	//    94 :  11 >  21 [mask0 = 0x02, mask1 = 0x04]
	//    95 :  11 >  23 [mask0 = 0x01, mask1 = 0x80]
	//    96 :  12 >   0 [mask0 = 0x80, mask1 = 0x02]
	//    97 :  12 >   2 [mask0 = 0x40, mask1 = 0x10]
	//    98 :  12 >   3 [mask0 = 0x20, mask1 = 0x02]
	//    99 :  12 >   5 [mask0 = 0x10, mask1 = 0x10]
	//   100 :  12 >   6 [mask0 = 0x08, mask1 = 0x02]
	//   101 :  12 >   8 [mask0 = 0x04, mask1 = 0x10]
	//   102 :  12 >   9 [mask0 = 0x02, mask1 = 0x02]
	//   103 :  12 >  11 [mask0 = 0x01, mask1 = 0x10]
	//   104 :  13 >  12 [mask0 = 0x80, mask1 = 0x02]
	//   105 :  13 >  14 [mask0 = 0x40, mask1 = 0x10]
	//   106 :  13 >  15 [mask0 = 0x20, mask1 = 0x02]
	//   107 :  13 >  17 [mask0 = 0x10, mask1 = 0x10]
	//   108 :  13 >  18 [mask0 = 0x08, mask1 = 0x02]
	//   109 :  13 >  20 [mask0 = 0x04, mask1 = 0x10]
	//   110 :  13 >  21 [mask0 = 0x02, mask1 = 0x02]
	//   111 :  13 >  23 [mask0 = 0x01, mask1 = 0x10]
	//   112 :  14 >   0 [mask0 = 0x80, mask1 = 0x01]
	//   113 :  14 >   2 [mask0 = 0x40, mask1 = 0x20]
	//   114 :  14 >   3 [mask0 = 0x20, mask1 = 0x01]
	//   115 :  14 >   5 [mask0 = 0x10, mask1 = 0x20]
	//   116 :  14 >   6 [mask0 = 0x08, mask1 = 0x01]
	//   117 :  14 >   8 [mask0 = 0x04, mask1 = 0x20]
	//   118 :  14 >   9 [mask0 = 0x02, mask1 = 0x01]
	//   119 :  14 >  11 [mask0 = 0x01, mask1 = 0x20]
	//   120 :  15 >  12 [mask0 = 0x80, mask1 = 0x01]
	//   121 :  15 >  14 [mask0 = 0x40, mask1 = 0x20]
	//   122 :  15 >  15 [mask0 = 0x20, mask1 = 0x01]
	//   123 :  15 >  17 [mask0 = 0x10, mask1 = 0x20]
	//   124 :  15 >  18 [mask0 = 0x08, mask1 = 0x01]
	//   125 :  15 >  20 [mask0 = 0x04, mask1 = 0x20]
	//   126 :  15 >  21 [mask0 = 0x02, mask1 = 0x01]
	//   127 :  15 >  23 [mask0 = 0x01, mask1 = 0x20]
	//   128 :  16 >   1 [mask0 = 0x80, mask1 = 0x80]
	//   129 :  16 >   2 [mask0 = 0x40, mask1 = 0x04]
	//   130 :  16 >   4 [mask0 = 0x20, mask1 = 0x80]
	//   131 :  16 >   5 [mask0 = 0x10, mask1 = 0x04]
	//   132 :  16 >   7 [mask0 = 0x08, mask1 = 0x80]
	//   133 :  16 >   8 [mask0 = 0x04, mask1 = 0x04]
	//   134 :  16 >  10 [mask0 = 0x02, mask1 = 0x80]
	//   135 :  16 >  11 [mask0 = 0x01, mask1 = 0x04]
	//   136 :  17 >  13 [mask0 = 0x80, mask1 = 0x80]
	//   137 :  17 >  14 [mask0 = 0x40, mask1 = 0x04]
	//   138 :  17 >  16 [mask0 = 0x20, mask1 = 0x80]
	//   139 :  17 >  17 [mask0 = 0x10, mask1 = 0x04]
	//   140 :  17 >  19 [mask0 = 0x08, mask1 = 0x80]
	//   141 :  17 >  20 [mask0 = 0x04, mask1 = 0x04]
	//   142 :  17 >  22 [mask0 = 0x02, mask1 = 0x80]
	//   143 :  17 >  23 [mask0 = 0x01, mask1 = 0x04]
	//   144 :  18 >   1 [mask0 = 0x80, mask1 = 0x40]
	//   145 :  18 >   2 [mask0 = 0x40, mask1 = 0x08]
	//   146 :  18 >   4 [mask0 = 0x20, mask1 = 0x40]
	//   147 :  18 >   5 [mask0 = 0x10, mask1 = 0x08]
	//   148 :  18 >   7 [mask0 = 0x08, mask1 = 0x40]
	//   149 :  18 >   8 [mask0 = 0x04, mask1 = 0x08]
	//   150 :  18 >  10 [mask0 = 0x02, mask1 = 0x40]
	//   151 :  18 >  11 [mask0 = 0x01, mask1 = 0x08]
	//   152 :  19 >  13 [mask0 = 0x80, mask1 = 0x40]
	//   153 :  19 >  14 [mask0 = 0x40, mask1 = 0x08]
	//   154 :  19 >  16 [mask0 = 0x20, mask1 = 0x40]
	//   155 :  19 >  17 [mask0 = 0x10, mask1 = 0x08]
	//   156 :  19 >  19 [mask0 = 0x08, mask1 = 0x40]
	//   157 :  19 >  20 [mask0 = 0x04, mask1 = 0x08]
	//   158 :  19 >  22 [mask0 = 0x02, mask1 = 0x40]
	//   159 :  19 >  23 [mask0 = 0x01, mask1 = 0x08]
	//   160 :  20 >   1 [mask0 = 0x80, mask1 = 0x20]
	//   161 :  20 >   2 [mask0 = 0x40, mask1 = 0x01]
	//   162 :  20 >   4 [mask0 = 0x20, mask1 = 0x20]
	//   163 :  20 >   5 [mask0 = 0x10, mask1 = 0x01]
	//   164 :  20 >   7 [mask0 = 0x08, mask1 = 0x20]
	//   165 :  20 >   8 [mask0 = 0x04, mask1 = 0x01]
	//   166 :  20 >  10 [mask0 = 0x02, mask1 = 0x20]
	//   167 :  20 >  11 [mask0 = 0x01, mask1 = 0x01]
	//   168 :  21 >  13 [mask0 = 0x80, mask1 = 0x20]
	//   169 :  21 >  14 [mask0 = 0x40, mask1 = 0x01]
	//   170 :  21 >  16 [mask0 = 0x20, mask1 = 0x20]
	//   171 :  21 >  17 [mask0 = 0x10, mask1 = 0x01]
	//   172 :  21 >  19 [mask0 = 0x08, mask1 = 0x20]
	//   173 :  21 >  20 [mask0 = 0x04, mask1 = 0x01]
	//   174 :  21 >  22 [mask0 = 0x02, mask1 = 0x20]
	//   175 :  21 >  23 [mask0 = 0x01, mask1 = 0x01]
	//   176 :  22 >   1 [mask0 = 0x80, mask1 = 0x10]
	//   177 :  22 >   2 [mask0 = 0x40, mask1 = 0x02]
	//   178 :  22 >   4 [mask0 = 0x20, mask1 = 0x10]
	//   179 :  22 >   5 [mask0 = 0x10, mask1 = 0x02]
	//   180 :  22 >   7 [mask0 = 0x08, mask1 = 0x10]
	//   181 :  22 >   8 [mask0 = 0x04, mask1 = 0x02]
	//   182 :  22 >  10 [mask0 = 0x02, mask1 = 0x10]
	//   183 :  22 >  11 [mask0 = 0x01, mask1 = 0x02]
	//   184 :  23 >  13 [mask0 = 0x80, mask1 = 0x10]
	//   185 :  23 >  14 [mask0 = 0x40, mask1 = 0x02]
	//   186 :  23 >  16 [mask0 = 0x20, mask1 = 0x10]
	//   187 :  23 >  17 [mask0 = 0x10, mask1 = 0x02]
	//   188 :  23 >  19 [mask0 = 0x08, mask1 = 0x10]
	//   189 :  23 >  20 [mask0 = 0x04, mask1 = 0x02]
	//   190 :  23 >  22 [mask0 = 0x02, mask1 = 0x10]
	//   191 :  23 >  23 [mask0 = 0x01, mask1 = 0x02]
	// interleaved:
	//   0 : 0x2b > 0x77 (0x77)
	//   1 : 0x08 > 0xf0 (0xf0)
	//   2 : 0xa1 > 0xef (0xef)
	//   3 : 0xf0 > 0xc4 (0xc4)
	//   4 : 0x9d > 0x73 (0x73)
	//   5 : 0xb5 > 0x00 (0x00)
	//   6 : 0x9a > 0xbf (0xbf)
	//   7 : 0x1d > 0x11 (0x11)
	//   8 : 0x4a > 0x10 (0x10)
	//   9 : 0xfb > 0x9a (0x9a)
	//  10 : 0xe8 > 0x1d (0x1d)
	//  11 : 0xc2 > 0x12 (0x12)
	//  12 : 0x8f > 0x6e (0x6e)
	//  13 : 0xc0 > 0x38 (0x38)
	//  14 : 0xc8 > 0xf5 (0xf5)
	//  15 : 0x73 > 0x69 (0x69)
	//  16 : 0xc0 > 0x1b (0x1b)
	//  17 : 0x43 > 0x6b (0x6b)
	//  18 : 0xe0 > 0x98 (0x98)
	//  19 : 0x19 > 0x43 (0x43)
	//  20 : 0xe0 > 0x00 (0x00)
	//  21 : 0xd3 > 0x0d (0x0d)
	//  22 : 0xeb > 0xb3 (0xb3)
	//  23 : 0xb2 > 0x6d (0x6d)
	// errors :   0 / 192
	// done.
}

func Example_main_bpsk() {
	setArgs("wlan-interleaver-table", "-r", "6")

	main()
	// Output:
	//     0 :   0 >   0 [mask0 = 0x80, mask1 = 0x80]
	//     1 :   0 >   0 [mask0 = 0x40, mask1 = 0x10]
	//     2 :   0 >   0 [mask0 = 0x20, mask1 = 0x02]
	//     3 :   0 >   1 [mask0 = 0x10, mask1 = 0x40]
	//     4 :   0 >   1 [mask0 = 0x08, mask1 = 0x08]
	//     5 :   0 >   1 [mask0 = 0x04, mask1 = 0x01]
	//     6 :   0 >   2 [mask0 = 0x02, mask1 = 0x20]
	//     7 :   0 >   2 [mask0 = 0x01, mask1 = 0x04]
	//     8 :   1 >   3 [mask0 = 0x80, mask1 = 0x80]
	//     9 :   1 >   3 [mask0 = 0x40, mask1 = 0x10]
	//    10 :   1 >   3 [mask0 = 0x20, mask1 = 0x02]
	//    11 :   1 >   4 [mask0 = 0x10, mask1 = 0x40]
	//    12 :   1 >   4 [mask0 = 0x08, mask1 = 0x08]
	//    13 :   1 >   4 [mask0 = 0x04, mask1 = 0x01]
	//    14 :   1 >   5 [mask0 = 0x02, mask1 = 0x20]
	//    15 :   1 >   5 [mask0 = 0x01, mask1 = 0x04]
	//    16 :   2 >   0 [mask0 = 0x80, mask1 = 0x40]
	//    17 :   2 >   0 [mask0 = 0x40, mask1 = 0x08]
	//    18 :   2 >   0 [mask0 = 0x20, mask1 = 0x01]
	//    19 :   2 >   1 [mask0 = 0x10, mask1 = 0x20]
	//    20 :   2 >   1 [mask0 = 0x08, mask1 = 0x04]
	//    21 :   2 >   2 [mask0 = 0x04, mask1 = 0x80]
	//    22 :   2 >   2 [mask0 = 0x02, mask1 = 0x10]
	//    23 :   2 >   2 [mask0 = 0x01, mask1 = 0x02]
	//    24 :   3 >   3 [mask0 = 0x80, mask1 = 0x40]
	//    25 :   3 >   3 [mask0 = 0x40, mask1 = 0x08]
	//    26 :   3 >   3 [mask0 = 0x20, mask1 = 0x01]
	//    27 :   3 >   4 [mask0 = 0x10, mask1 = 0x20]
	//    28 :   3 >   4 [mask0 = 0x08, mask1 = 0x04]
	//    29 :   3 >   5 [mask0 = 0x04, mask1 = 0x80]
	//    30 :   3 >   5 [mask0 = 0x02, mask1 = 0x10]
	//    31 :   3 >   5 [mask0 = 0x01, mask1 = 0x02]
	//    32 :   4 >   0 [mask0 = 0x80, mask1 = 0x20]
	//    33 :   4 >   0 [mask0 = 0x40, mask1 = 0x04]
	//    34 :   4 >   1 [mask0 = 0x20, mask1 = 0x80]
	//    35 :   4 >   1 [mask0 = 0x10, mask1 = 0x10]
	//    36 :   4 >   1 [mask0 = 0x08, mask1 = 0x02]
	//    37 :   4 >   2 [mask0 = 0x04, mask1 = 0x40]
	//    38 :   4 >   2 [mask0 = 0x02, mask1 = 0x08]
	//    39 :   4 >   2 [mask0 = 0x01, mask1 = 0x01]
	//    40 :   5 >   3 [mask0 = 0x80, mask1 = 0x20]
	//    41 :   5 >   3 [mask0 = 0x40, mask1 = 0x04]
	//    42 :   5 >   4 [mask0 = 0x20, mask1 = 0x80]
	//    43 :   5 >   4 [mask0 = 0x10, mask1 = 0x10]
	//    44 :   5 >   4 [mask0 = 0x08, mask1 = 0x02]
	//    45 :   5 >   5 [mask0 = 0x04, mask1 = 0x40]
	//    46 :   5 >   5 [mask0 = 0x02, mask1 = 0x08]
	//    47 :   5 >   5 [mask0 = 0x01, mask1 = 0x01]
	// done.
}
