package bitstream

import (
	"fmt"

	"github.com/arloliu/stream64/errs"
)

// Padding is the number of readable bytes a Source keeps past its logical end,
// so a refill positioned on the last data byte can still load a full window.
const Padding = 7

// Source is a read-only byte view that satisfies the refill padding contract.
type Source struct {
	data []byte // logical bytes followed by at least Padding readable bytes
	n    int    // logical length
}

// NewSource copies data into a new buffer followed by Padding zero bytes.
func NewSource(data []byte) Source {
	buf := make([]byte, len(data)+Padding)
	copy(buf, data)

	return Source{data: buf, n: len(data)}
}

// WrapSource uses padded directly, without copying, treating its first n bytes
// as the logical stream.
//
// Returns:
//   - Source: a view over padded
//   - error: errs.ErrInsufficientPadding if len(padded) < n+Padding
func WrapSource(padded []byte, n int) (Source, error) {
	if n < 0 || len(padded) < n+Padding {
		return Source{}, fmt.Errorf("%w: have %d bytes, need %d", errs.ErrInsufficientPadding, len(padded), n+Padding)
	}

	return Source{data: padded, n: n}, nil
}

// Len returns the logical length in bytes.
func (s Source) Len() int {
	return s.n
}

// Bits returns the logical length in bits.
func (s Source) Bits() int {
	return s.n * 8
}

// Bytes returns the logical bytes. The caller must not modify the returned slice.
func (s Source) Bytes() []byte {
	return s.data[:s.n]
}
