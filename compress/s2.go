package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/stream64/errs"
)

// S2Compressor compresses payloads with the S2 block format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// s2MaxRepeat is the longest run a 5 byte S2 repeat operation produces.
const s2MaxRepeat = 1<<24 + 1<<16

// s2MaxDecodedLen bounds the decoded size of an n byte block.
func s2MaxDecodedLen(n int) uint64 {
	return (uint64(n)/5 + 1) * s2MaxRepeat //nolint:gosec // G115: n is a slice length
}

// Decompress decodes an S2 block into exactly rawLen bytes.
func (c S2Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkRawLen(nil, rawLen)
	}

	// the block header carries the decoded length; check it before allocating
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != rawLen {
		return nil, fmt.Errorf("%w: s2 block holds %d bytes, header says %d", errs.ErrPayloadSize, n, rawLen)
	}

	if err := checkExpansion("s2", rawLen, s2MaxDecodedLen(len(data))); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return checkRawLen(out, rawLen)
}
