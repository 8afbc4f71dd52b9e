//go:build stream64debug

package bitstream

import "fmt"

const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("bitstream: "+format, args...))
	}
}
