// Print the 802.11a/g interleaver table for one rate.
package main

import (
	wlan "github.com/doismellburning/wlanphy/src"
)

func main() {
	wlan.InterleaverTableMain()
}
