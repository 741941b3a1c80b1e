package wlan

import (
	"fmt"
	"runtime"
)

// Because sometimes it's really convenient to have C's ternary ?:
func IfThenElse[T any](x bool, a T, b T) T { //nolint:ireturn
	if x {
		return a
	}

	return b
}

// Can't be "assert" because of conflicts with stretchr/testify/assert, but otherwise, it's compatible enough.
// Only for conditions that mean the tables in this package are wrong, never for bad input.
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("Assertion failed at %s:%d", file, line))
	}
}
