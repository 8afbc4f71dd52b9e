package compress

import (
	"fmt"

	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
)

// Compressor compresses an encoded set payload.
//
// Golomb-Rice payloads are close to incompressible by construction; compression
// pays off for fixed-width payloads with repetitive values and for sets with a
// poorly chosen remainder width.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller. Implementations may return data
	// itself when they do not transform it. Empty input yields empty output.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress restores data to its original rawLen bytes.
	//
	// rawLen is the uncompressed length recorded in the container header. A
	// result of any other length is reported as errs.ErrPayloadSize, corrupted
	// input as a wrapped library error.
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
//
// Returns errs.ErrInvalidCompression for an unknown type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (%d)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// checkExpansion rejects a header length that data cannot decode to under the
// codec's worst case expansion. It runs before any buffer is sized from rawLen.
func checkExpansion(codec string, rawLen int, bound uint64) error {
	if rawLen < 0 || uint64(rawLen) > bound {
		return fmt.Errorf("%w: %s payload cannot expand to %d bytes, at most %d", errs.ErrPayloadSize, codec, rawLen, bound)
	}

	return nil
}

// checkRawLen verifies the decompressed length against the header value.
func checkRawLen(out []byte, rawLen int) ([]byte, error) {
	if len(out) != rawLen {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header says %d", errs.ErrPayloadSize, len(out), rawLen)
	}

	return out, nil
}
