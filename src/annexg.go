package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Worked example from IEEE Std 802.11a-1999, Annex G.
 *
 * Description:	A 100 byte PSDU (a data frame carrying the opening lines
 *		of Schiller's "Ode to Joy", with its FCS) sent at 36 Mb/s
 *		with scrambler seed 1011101.  This is six OFDM symbols.
 *
 *		The buffers are as the codec holds them, bits MSB first,
 *		so the PSDU octets are bit reversed relative to how
 *		Annex G prints the frame.
 *
 *------------------------------------------------------------------*/

const (
	AnnexGRate = Rate36
	AnnexGSeed = DefaultSeed
)

// AnnexGMessage is the PSDU of Table G.1.
var AnnexGMessage = []byte{
	0x04, 0x02, 0x00, 0x2e, 0x00, 0x60, 0x08, 0xcd, 0x37, 0xa6, 0x00, 0x20,
	0xd6, 0x01, 0x3c, 0xf1, 0x00, 0x60, 0x08, 0xad, 0x3b, 0xaf, 0x00, 0x00,
	0x4a, 0x6f, 0x79, 0x2c, 0x20, 0x62, 0x72, 0x69, 0x67, 0x68, 0x74, 0x20,
	0x73, 0x70, 0x61, 0x72, 0x6b, 0x20, 0x6f, 0x66, 0x20, 0x64, 0x69, 0x76,
	0x69, 0x6e, 0x69, 0x74, 0x79, 0x2c, 0x0a, 0x44, 0x61, 0x75, 0x67, 0x68,
	0x74, 0x65, 0x72, 0x20, 0x6f, 0x66, 0x20, 0x45, 0x6c, 0x79, 0x73, 0x69,
	0x75, 0x6d, 0x2c, 0x0a, 0x46, 0x69, 0x72, 0x65, 0x2d, 0x69, 0x6e, 0x73,
	0x69, 0x72, 0x65, 0x64, 0x20, 0x77, 0x65, 0x20, 0x74, 0x72, 0x65, 0x61,
	0x67, 0x33, 0x21, 0xb6,
}

// AnnexGOriginal is SERVICE + PSDU + tail + pad before scrambling, Table G.13.
var AnnexGOriginal = []byte{
	0x00, 0x00, 0x20, 0x40, 0x00, 0x74, 0x00, 0x06, 0x10, 0xb3, 0xec, 0x65,
	0x00, 0x04, 0x6b, 0x80, 0x3c, 0x8f, 0x00, 0x06, 0x10, 0xb5, 0xdc, 0xf5,
	0x00, 0x00, 0x52, 0xf6, 0x9e, 0x34, 0x04, 0x46, 0x4e, 0x96, 0xe6, 0x16,
	0x2e, 0x04, 0xce, 0x0e, 0x86, 0x4e, 0xd6, 0x04, 0xf6, 0x66, 0x04, 0x26,
	0x96, 0x6e, 0x96, 0x76, 0x96, 0x2e, 0x9e, 0x34, 0x50, 0x22, 0x86, 0xae,
	0xe6, 0x16, 0x2e, 0xa6, 0x4e, 0x04, 0xf6, 0x66, 0x04, 0xa2, 0x36, 0x9e,
	0xce, 0x96, 0xae, 0xb6, 0x34, 0x50, 0x62, 0x96, 0x4e, 0xa6, 0xb4, 0x96,
	0x76, 0xce, 0x96, 0x4e, 0xa6, 0x26, 0x04, 0xee, 0xa6, 0x04, 0x2e, 0x4e,
	0xa6, 0x86, 0xe6, 0xcc, 0x84, 0x6d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// AnnexGScrambled is AnnexGOriginal after scrambling with the tail zeroed, Table G.16.
var AnnexGScrambled = []byte{
	0x6c, 0x19, 0x89, 0x8f, 0x68, 0x21, 0xf4, 0xa5, 0x61, 0x4f, 0xd7, 0xae,
	0x24, 0x0c, 0xf3, 0x3a, 0xe4, 0xbc, 0x53, 0x98, 0xc0, 0x1e, 0x35, 0xb3,
	0xe3, 0xf8, 0x25, 0x60, 0xd6, 0x25, 0x35, 0x33, 0xfe, 0xf0, 0x41, 0x2b,
	0x8f, 0x53, 0x1c, 0x83, 0x41, 0xbe, 0x39, 0x28, 0x66, 0x44, 0x66, 0xcd,
	0xf6, 0xa3, 0xd8, 0x0d, 0xd4, 0x81, 0x3b, 0x2f, 0xdf, 0xc3, 0x58, 0xf7,
	0xc6, 0x52, 0xeb, 0x70, 0x8f, 0x9e, 0x6a, 0x90, 0x81, 0xfd, 0x7c, 0xa9,
	0xd1, 0x55, 0x12, 0x04, 0x74, 0xd9, 0xe9, 0x3b, 0xcd, 0x93, 0x8d, 0x7b,
	0x7c, 0x70, 0x02, 0x20, 0x99, 0xa1, 0x7d, 0x8a, 0x27, 0x17, 0x39, 0x15,
	0xa0, 0xec, 0x95, 0x16, 0x91, 0x10, 0x00, 0xdc, 0x7f, 0x0e, 0xf2, 0xc9,
}

// AnnexGCoded is the r3/4 convolutional encoder output.  The first symbol,
// 24 bytes, is Table G.18.
var AnnexGCoded = []byte{
	0x2b, 0x08, 0xa1, 0xf0, 0x9d, 0xb5, 0x9a, 0x1d, 0x4a, 0xfb, 0xe8, 0xc2,
	0x8f, 0xc0, 0xc8, 0x73, 0xc0, 0x43, 0xe0, 0x19, 0xe0, 0xd3, 0xeb, 0xb2,
	0xaf, 0x98, 0xfd, 0x59, 0x0f, 0x8b, 0x69, 0x66, 0x0c, 0xaa, 0xd9, 0x10,
	0x56, 0x8b, 0xa6, 0x40, 0x64, 0xb3, 0x21, 0x9e, 0x8e, 0x91, 0xc1, 0x05,
	0xb7, 0xb7, 0xc5, 0xd8, 0x80, 0x2f, 0xa2, 0xdd, 0x6f, 0x2b, 0x97, 0x61,
	0xd9, 0xdd, 0x0d, 0x12, 0x76, 0x27, 0x02, 0x4c, 0x92, 0xbc, 0x12, 0x4b,
	0x6a, 0xf7, 0x70, 0x23, 0x27, 0x8e, 0x01, 0xb4, 0xd6, 0xc3, 0x6a, 0x60,
	0x4d, 0x4b, 0xcb, 0x51, 0x9c, 0xb0, 0x80, 0xeb, 0x89, 0x34, 0x14, 0x40,
	0x6c, 0x9e, 0x2c, 0x51, 0x4b, 0x7c, 0x69, 0x11, 0x15, 0x86, 0xfd, 0xbe,
	0x5e, 0xf9, 0xbe, 0x28, 0xef, 0xca, 0x55, 0x03, 0xfd, 0x26, 0x91, 0x3b,
	0x95, 0xec, 0x5b, 0x23, 0x99, 0x5f, 0x28, 0x3e, 0xd4, 0xe9, 0xf7, 0xb8,
	0x13, 0x75, 0x8e, 0xf2, 0xa0, 0x1b, 0x6c, 0xe9, 0x07, 0x5d, 0xb0, 0xbf,
}

// AnnexGInterleaved is the complete DATA field as sent.  The first symbol,
// 24 bytes, is Table G.21.
var AnnexGInterleaved = []byte{
	0x77, 0xf0, 0xef, 0xc4, 0x73, 0x00, 0xbf, 0x11, 0x10, 0x9a, 0x1d, 0x12,
	0x6e, 0x38, 0xf5, 0x69, 0x1b, 0x6b, 0x98, 0x43, 0x00, 0x0d, 0xb3, 0x6d,
	0xc5, 0x3a, 0x96, 0xd1, 0xc8, 0x90, 0xfc, 0x2d, 0x75, 0xa3, 0x2f, 0x8a,
	0xaa, 0xea, 0x20, 0x18, 0x8c, 0x8d, 0xea, 0x42, 0x0a, 0x3a, 0xc9, 0x17,
	0xf6, 0x28, 0x54, 0x98, 0x84, 0x97, 0x0b, 0x0c, 0xe4, 0x9c, 0xfc, 0xf0,
	0xd2, 0x2a, 0x9a, 0xac, 0xae, 0x31, 0x7a, 0x77, 0x1d, 0xa9, 0x97, 0xd6,
	0x09, 0xec, 0xf0, 0xe4, 0x08, 0x46, 0x87, 0xa1, 0x56, 0xad, 0x03, 0x31,
	0xb8, 0xc4, 0xfa, 0xd4, 0xe6, 0x25, 0x22, 0x47, 0x01, 0xea, 0x4c, 0x78,
	0x05, 0xb7, 0x9d, 0xd5, 0xa0, 0xfb, 0xf7, 0xac, 0xfd, 0x23, 0x83, 0xcf,
	0x8e, 0x89, 0x14, 0x27, 0x3f, 0x92, 0xa7, 0x95, 0xc1, 0x8c, 0xfa, 0x1a,
	0xad, 0x98, 0xc8, 0x14, 0xdd, 0xd2, 0x71, 0x44, 0xe9, 0x47, 0x2d, 0x91,
	0x8d, 0x55, 0x79, 0xdf, 0x53, 0xb7, 0xbc, 0xf7, 0x13, 0x71, 0x99, 0x5f,
}

// annexGSymbol returns the n'th OFDM symbol of a coded or interleaved Annex G buffer.
func annexGSymbol(p []byte, n int) []byte {
	const symbolBytes = 192 / 8
	return p[n*symbolBytes : (n+1)*symbolBytes]
}
