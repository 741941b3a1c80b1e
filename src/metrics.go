package wlan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode failure reasons, used as the "reason" label.
const (
	reasonBufferSize    = "buffer_size"
	reasonLength        = "length"
	reasonUncorrectable = "uncorrectable"
)

var (
	packetsEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wlan_packets_encoded_total",
		Help: "PSDUs encoded into DATA field channel bits",
	}, []string{"rate"})

	packetsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wlan_packets_decoded_total",
		Help: "DATA fields successfully decoded back to a PSDU",
	}, []string{"rate"})

	decodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wlan_decode_failures_total",
		Help: "DATA fields that could not be decoded",
	}, []string{"rate", "reason"})

	fecCorrectedBits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wlan_fec_corrected_bits_total",
		Help: "Channel bit errors repaired by the Viterbi decoder",
	}, []string{"rate"})
)
