//go:build !stream64debug

package bitstream

const debugAssertions = false

func assertf(bool, string, ...any) {}
