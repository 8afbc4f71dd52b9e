// Package endian provides byte order utilities for the stream64 binary formats.
//
// Two byte orders are in play:
//
//   - The bitstream itself is always big-endian. Every refill and flush moves one
//     64-bit window whose first byte carries the most significant bits, so the
//     bit order observed by a decoder is independent of the host.
//   - Container headers (see the section package) store their multi-byte fields
//     in a selectable order, little-endian by default.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so both
// in-place and appending writes go through one value:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, count)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// WordSize is the number of bytes moved by one bitstream refill or flush.
const WordSize = 8

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine stores the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// LoadWord reads the bitstream window starting at b[0].
// The first byte becomes the most significant byte of the result.
//
// Panics if len(b) < WordSize.
func LoadWord(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// StoreWord writes w as a bitstream window starting at b[0], most significant byte first.
//
// Panics if len(b) < WordSize.
func StoreWord(b []byte, w uint64) {
	binary.BigEndian.PutUint64(b, w)
}

// StoreWordPrefix writes the n most significant bytes of w to b[0:n].
// It is the partial-window form of StoreWord used near the end of a buffer.
func StoreWordPrefix(b []byte, w uint64, n int) {
	if n <= 0 {
		return
	}

	_ = b[n-1]
	for i := range n {
		b[i] = byte(w >> (56 - 8*i))
	}
}
