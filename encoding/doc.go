// Package encoding implements the Golomb-Rice and fixed-width codecs of stream64.
//
// A Golomb-Coded Set is a sorted sequence of uint64 values stored as the
// differences between neighbours. Each difference d is split by the remainder
// width p into a quotient d>>p, written in unary as that many one bits and a
// terminating zero, and a remainder d mod 2^p, written in exactly p bits. Bits
// are packed most significant first; the last byte is padded with zero bits.
// The stream does not record how many items it holds, so every decoder takes
// the count from the caller.
//
// # One-shot API
//
// EncodeGolomb and EncodeFixed write into a caller supplied buffer and report
// the number of bytes produced. DecodeGolombItem and DecodeFixed read a single
// item through a bitstream.Cursor; DecodeGolombItem returns the difference, and
// the caller adds it to a running sum:
//
//	src := bitstream.NewSource(data)
//	c := bitstream.NewCursor()
//
//	var v uint64
//	for range count {
//		v += encoding.DecodeGolombItem(src, 19, &c)
//	}
//
// # Streaming API
//
// GolombEncoder and FixedEncoder implement StreamEncoder over a pooled
// buffer. GolombDecoder and FixedDecoder implement StreamDecoder and never
// read beyond the logical end of their input, which makes them the right
// choice for untrusted data.
//
// Most users should use the blob package, which adds a self-describing header,
// optional compression and a checksum.
package encoding
