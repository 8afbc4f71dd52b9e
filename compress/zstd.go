package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/stream64/errs"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation depends on the build: the default uses the pure Go
// github.com/klauspost/compress/zstd encoder, while builds with cgo enabled and
// the gozstd tag link the reference C library through github.com/valyala/gozstd.
// Both produce standard zstd frames and decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdLevel is the compression level used by both backends.
const zstdLevel = 3

const (
	// zstdMaxBlockLen is the largest decoded size of a single zstd block.
	zstdMaxBlockLen = 128 << 10
	// zstdMinBlockLen is the smallest encoded block: a 3 byte header and one RLE byte.
	zstdMinBlockLen = 4
)

// checkZstdFrame validates rawLen against the frame before decoding: it must fit
// the worst case block expansion and match the frame content size when the
// frame records one.
func checkZstdFrame(data []byte, rawLen int) error {
	bound := (uint64(len(data))/zstdMinBlockLen + 1) * zstdMaxBlockLen
	if err := checkExpansion("zstd", rawLen, bound); err != nil {
		return err
	}

	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}

	if h.HasFCS && h.FrameContentSize != uint64(rawLen) { //nolint:gosec // G115: rawLen checked above
		return fmt.Errorf("%w: zstd frame holds %d bytes, header says %d", errs.ErrPayloadSize, h.FrameContentSize, rawLen)
	}

	return nil
}
