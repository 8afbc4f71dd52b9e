// Package compress provides the payload codecs of the stream64 set container.
//
// A container payload is the Golomb-Rice or fixed-width bitstream of one set.
// It can be stored as is or compressed with one of the built-in codecs:
//   - format.CompressionNone: NoOpCompressor, the default
//   - format.CompressionZstd: ZstdCompressor, pure Go or cgo depending on build tags
//   - format.CompressionS2: S2Compressor
//   - format.CompressionLZ4: LZ4Compressor
//
// Golomb-Rice coding with a well chosen remainder width is already close to the
// entropy of the set, so general purpose compression rarely shrinks such a
// payload. It helps for fixed-width payloads and for sets coded with a remainder
// width much smaller than the typical difference, whose long unary runs compress well.
//
// Every codec is stateless and safe for concurrent use. GetCodec returns the
// shared instance for a compression type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	stored, err := codec.Compress(payload)
//	// ...
//	payload, err = codec.Decompress(stored, len(payload))
//
// The zstd codec uses github.com/klauspost/compress/zstd by default. Building
// with cgo enabled and the gozstd tag switches it to github.com/valyala/gozstd.
package compress
