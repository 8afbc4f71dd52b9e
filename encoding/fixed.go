package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/endian"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/internal/pool"
)

// EncodeFixed packs each value into exactly p bits, with no difference or unary part.
//
// Parameters:
//   - values: values to encode, each must fit in p bits
//   - p: field width in bits, 1..56
//   - dst: destination buffer of at least FixedBytes(len(values), p) bytes
//
// Returns:
//   - int: number of bytes written, (len(values)*p+7)/8
//   - error: errs.ErrInvalidRemainderWidth, errs.ErrCapacityExceeded (before any write),
//     errs.ErrValueOverflow (dst is then partial), or errs.ErrEmptyOutput for empty input
func EncodeFixed(values []uint64, p int, dst []byte) (int, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return 0, err
	}

	need := bitstream.FixedBytes(len(values), w)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: %d values need %d bytes, have %d", errs.ErrCapacityExceeded, len(values), need, len(dst))
	}

	c := bitstream.NewCursor()
	for i, v := range values {
		f, err := bitstream.NewField(v, w)
		if err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		c.PutField(dst, f)
	}

	n := c.Finalize(dst)
	if n == 0 {
		return 0, errs.ErrEmptyOutput
	}

	return n, nil
}

// DecodeFixed reads a single p-bit field from src and advances c.
func DecodeFixed(src bitstream.Source, p int, c *bitstream.Cursor) uint64 {
	return c.GetBits(src, p)
}

// InferFixedCount derives the number of p-bit items stored in byteLen bytes.
//
// The count is only unambiguous when p > 7: with a narrower field the trailing
// pad bits of the last byte could hold another item. Returns errs.ErrAmbiguousCount
// for p <= 7 and errs.ErrInvalidRemainderWidth for an out of range p.
func InferFixedCount(byteLen int, p int) (int, error) {
	if _, err := bitstream.NewWidth(p); err != nil {
		return 0, err
	}

	if p <= 7 {
		return 0, fmt.Errorf("%w: width %d", errs.ErrAmbiguousCount, p)
	}

	return byteLen * 8 / p, nil
}

// FixedEncoder incrementally encodes fixed-width values.
type FixedEncoder struct {
	cursor bitstream.Cursor
	width  bitstream.Width
	count  int
	limit  int

	buf *pool.ByteBuffer
}

var _ StreamEncoder = (*FixedEncoder)(nil)

// NewFixedEncoder creates a fixed-width encoder with field width p.
// The safety margin defaults to zero since the output size is exact.
func NewFixedEncoder(p int, opts ...EncoderOption) (*FixedEncoder, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return nil, err
	}

	cfg, err := newEncoderConfig(0, opts...)
	if err != nil {
		return nil, err
	}

	return &FixedEncoder{
		width: w,
		limit: cfg.capacity - cfg.margin,
		buf:   pool.GetStreamBuffer(),
	}, nil
}

// Write encodes v in p bits.
//
// Returns errs.ErrValueOverflow if v does not fit and errs.ErrCapacityExceeded
// if the stream would outgrow the capacity bound.
func (e *FixedEncoder) Write(v uint64) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	f, err := bitstream.NewField(v, e.width)
	if err != nil {
		return fmt.Errorf("item %d: %w", e.count, err)
	}

	end := bitstream.FixedBytes(e.count+1, e.width)
	if end > e.limit {
		return fmt.Errorf("%w: item %d needs more than %d bytes", errs.ErrCapacityExceeded, e.count, e.limit)
	}

	e.buf.EnsureLength(end + endian.WordSize)
	e.cursor.PutField(e.buf.B, f)
	e.count++

	return nil
}

// WriteSlice encodes values in order and stops at the first error.
func (e *FixedEncoder) WriteSlice(values []uint64) error {
	for _, v := range values {
		if err := e.Write(v); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded stream including the final partial byte.
func (e *FixedEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	n := e.cursor.Finalized(e.buf.B)

	return e.buf.B[:n]
}

// Len returns the number of encoded values.
func (e *FixedEncoder) Len() int {
	return e.count
}

// Size returns the encoded length in bytes.
func (e *FixedEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.cursor.PendingBytes()
}

// Reset is a no-op: fixed-width items carry no running state.
func (e *FixedEncoder) Reset() {}

// Finish returns the buffer to the pool. The encoder becomes unusable.
func (e *FixedEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutStreamBuffer(e.buf)
	e.buf = nil
}

// FixedDecoder decodes fixed-width streams. It is stateless and safe for concurrent use.
type FixedDecoder struct {
	p int
}

var _ StreamDecoder = FixedDecoder{}

// NewFixedDecoder creates a decoder for p-bit fields.
func NewFixedDecoder(p int) (FixedDecoder, error) {
	if _, err := bitstream.NewWidth(p); err != nil {
		return FixedDecoder{}, err
	}

	return FixedDecoder{p: p}, nil
}

// Width returns the field width p.
func (d FixedDecoder) Width() int {
	return d.p
}

// All yields up to count values, stopping where the stream ends.
func (d FixedDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return d.AllSource(bitstream.NewSource(data), count)
}

// AllSource is All over an already padded source.
func (d FixedDecoder) AllSource(src bitstream.Source, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := min(count, src.Bits()/d.p)
		c := bitstream.NewCursor()
		for range n {
			if !yield(c.GetBits(src, d.p)) {
				return
			}
		}
	}
}

// At returns the value at index by seeking directly to its bit offset.
func (d FixedDecoder) At(data []byte, index int, count int) (uint64, bool) {
	return d.AtSource(bitstream.NewSource(data), index, count)
}

// AtSource is At over an already padded source.
func (d FixedDecoder) AtSource(src bitstream.Source, index int, count int) (uint64, bool) {
	if index < 0 || index >= count || index >= src.Bits()/d.p {
		return 0, false
	}

	c := bitstream.NewCursor()
	c.Seek(index * d.p)

	return c.GetBits(src, d.p), true
}

// DecodeAll decodes exactly count values.
//
// Returns errs.ErrTruncatedStream if the stream holds fewer than count values.
func (d FixedDecoder) DecodeAll(data []byte, count int) ([]uint64, error) {
	if count <= 0 {
		return []uint64{}, nil
	}

	out := make([]uint64, 0, count)
	for v := range d.All(data, count) {
		out = append(out, v)
	}

	if len(out) < count {
		return out, fmt.Errorf("%w: decoded %d of %d items", errs.ErrTruncatedStream, len(out), count)
	}

	return out, nil
}
