// Round trip test of the 802.11a/g DATA field codec.
package main

import (
	wlan "github.com/doismellburning/wlanphy/src"
)

func main() {
	wlan.PacketTestMain()
}
