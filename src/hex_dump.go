package wlan

import (
	"fmt"
	"strings"
)

// hexDump formats p sixteen bytes to a line with offsets, the same layout
// the Annex G tables use so the two can be compared by eye.
func hexDump(p []byte) string {
	var sb strings.Builder
	var offset = 0

	for len(p) > 0 {
		var n = min(len(p), 16)

		fmt.Fprintf(&sb, "  %03x: ", offset)

		for i := range n {
			fmt.Fprintf(&sb, " %02x", p[i])
		}

		sb.WriteString("\n")

		p = p[n:]
		offset += n
	}

	return sb.String()
}
