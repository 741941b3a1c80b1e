package wlan

import "errors"

// Errors returned by the packet codec and interleaver.  Call sites wrap
// these with the offending values, so test with errors.Is.
var (
	// ErrInvalidRate is returned for a rate outside Rate6 .. Rate54.
	ErrInvalidRate = errors.New("invalid rate")

	// ErrBufferSize is returned when a caller supplied buffer does not have
	// the size implied by the rate and payload length.
	ErrBufferSize = errors.New("buffer size mismatch")

	// ErrInvalidLength is returned for a negative payload length or one
	// larger than the configured maximum.
	ErrInvalidLength = errors.New("invalid payload length")

	// ErrUncorrectable is returned by decode when the FEC output fails the
	// SERVICE / tail bit checks, i.e. there were more channel errors than
	// the convolutional code could repair.
	ErrUncorrectable = errors.New("uncorrectable frame")
)
