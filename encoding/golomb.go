package encoding

import (
	"fmt"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/endian"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/internal/pool"
)

// EncodeGolomb packs a non-decreasing sequence as a Golomb-Coded Set into dst.
//
// Each value is replaced by its difference from the previous one, and every
// difference is written as its quotient by 2^p in unary (ones terminated by a
// zero) followed by its low p bits, most significant bit first.
//
// The capacity of the pass is len(dst) with SafetyMargin bytes kept free. The
// input is assumed sorted and is not validated; a decreasing value wraps to a
// huge difference and fails with errs.ErrCapacityExceeded.
//
// Parameters:
//   - p: remainder width in bits, 1..56
//   - sorted: values in non-decreasing order
//   - dst: destination buffer; up to 7 bytes past the returned length may be overwritten
//
// Returns:
//   - int: number of bytes written
//   - error: errs.ErrInvalidRemainderWidth before any write, errs.ErrCapacityExceeded
//     (dst is then partial and must be discarded), or errs.ErrEmptyOutput for empty input
func EncodeGolomb(p int, sorted []uint64, dst []byte) (int, error) {
	return EncodeGolombWithMargin(p, sorted, dst, SafetyMargin)
}

// EncodeGolombWithMargin is EncodeGolomb with an explicit safety margin in bytes.
func EncodeGolombWithMargin(p int, sorted []uint64, dst []byte, margin int) (int, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return 0, err
	}

	if margin < 0 {
		return 0, fmt.Errorf("%w: margin %d", errs.ErrInvalidCapacity, margin)
	}

	limit := uint64(max(len(dst)-margin, 0)) //nolint:gosec // G115: non-negative by construction

	var accumulator uint64
	c := bitstream.NewCursor()

	for i, v := range sorted {
		delta := v - accumulator
		accumulator += delta

		if projectGolomb(&c, delta, w) > limit {
			return 0, fmt.Errorf("%w: item %d needs more than %d bytes", errs.ErrCapacityExceeded, i, limit)
		}

		putGolomb(&c, dst, delta, w)
	}

	n := c.Finalize(dst)
	if n == 0 {
		return 0, errs.ErrEmptyOutput
	}

	return n, nil
}

// projectGolomb returns the stream length in bytes once delta has been written.
func projectGolomb(c *bitstream.Cursor, delta uint64, w bitstream.Width) uint64 {
	return bitstream.BytesForBits(uint64(c.BitsConsumed()) + bitstream.GolombBits(delta, w)) //nolint:gosec // G115: position is non-negative
}

// putGolomb writes one Golomb-Rice item: the unary quotient, its terminator, the remainder.
func putGolomb(c *bitstream.Cursor, dst []byte, delta uint64, w bitstream.Width) {
	c.PutOnes(dst, delta>>w.Bits())
	c.PutZero(dst)
	c.PutField(dst, w.Truncate(delta))
}

// DecodeGolombItem reads the next Golomb-Rice item from src and advances c.
//
// It returns the encoded difference, not the absolute value: callers that need
// set members add it to a running sum, which also lets them stop as soon as the
// sum passes a target.
//
// The read path trusts p and the stream; reading past the padding of src panics.
// Use GolombDecoder for bounded decoding of untrusted streams.
func DecodeGolombItem(src bitstream.Source, p int, c *bitstream.Cursor) uint64 {
	var quotient uint64
	for c.GetBits(src, 1) == 1 {
		quotient++
	}

	remainder := c.GetBits(src, p)

	return quotient<<p + remainder
}

// nextGolomb is DecodeGolombItem bounded by the logical end of src.
func nextGolomb(src bitstream.Source, p int, c *bitstream.Cursor) (uint64, bool) {
	end := src.Bits()

	var quotient uint64
	for {
		if c.BitsConsumed() >= end {
			return 0, false
		}
		if c.GetBits(src, 1) == 0 {
			break
		}
		quotient++
	}

	if c.BitsConsumed()+p > end {
		return 0, false
	}

	return quotient<<p + c.GetBits(src, p), true
}

// GolombEncoder incrementally encodes a Golomb-Coded Set.
//
// Unlike EncodeGolomb, it validates ordering: Write rejects a value smaller
// than its predecessor. The buffer grows on demand up to the configured capacity.
type GolombEncoder struct {
	cursor      bitstream.Cursor
	accumulator uint64
	width       bitstream.Width
	count       int
	limit       uint64

	buf *pool.ByteBuffer
}

var _ StreamEncoder = (*GolombEncoder)(nil)

// NewGolombEncoder creates a Golomb-Rice encoder with remainder width p.
//
// Parameters:
//   - p: remainder width in bits, 1..56
//   - opts: WithCapacity and WithSafetyMargin
//
// Returns:
//   - *GolombEncoder: a new encoder backed by a pooled buffer
//   - error: errs.ErrInvalidRemainderWidth or errs.ErrInvalidCapacity
func NewGolombEncoder(p int, opts ...EncoderOption) (*GolombEncoder, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return nil, err
	}

	cfg, err := newEncoderConfig(SafetyMargin, opts...)
	if err != nil {
		return nil, err
	}

	return &GolombEncoder{
		width: w,
		limit: uint64(cfg.capacity - cfg.margin), //nolint:gosec // G115: validated positive
		buf:   pool.GetStreamBuffer(),
	}, nil
}

// Write encodes v as the difference from the previous value.
//
// Returns errs.ErrUnsortedInput if v is smaller than the previous value and
// errs.ErrCapacityExceeded if the stream would outgrow the capacity bound.
// On error the stream is unchanged.
func (e *GolombEncoder) Write(v uint64) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	if v < e.accumulator {
		return fmt.Errorf("%w: %d after %d", errs.ErrUnsortedInput, v, e.accumulator)
	}

	delta := v - e.accumulator
	end := projectGolomb(&e.cursor, delta, e.width)
	if end > e.limit {
		return fmt.Errorf("%w: item %d needs more than %d bytes", errs.ErrCapacityExceeded, e.count, e.limit)
	}

	// room for a whole-window store keeps flushes on the fast path
	e.buf.EnsureLength(int(end) + endian.WordSize) //nolint:gosec // G115: end <= limit fits int
	putGolomb(&e.cursor, e.buf.B, delta, e.width)

	e.accumulator = v
	e.count++

	return nil
}

// WriteSlice encodes values in order and stops at the first error.
func (e *GolombEncoder) WriteSlice(values []uint64) error {
	for _, v := range values {
		if err := e.Write(v); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded stream including the final partial byte.
func (e *GolombEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	n := e.cursor.Finalized(e.buf.B)

	return e.buf.B[:n]
}

// Len returns the number of encoded values.
func (e *GolombEncoder) Len() int {
	return e.count
}

// Size returns the encoded length in bytes, including the final partial byte.
func (e *GolombEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.cursor.PendingBytes()
}

// RemainderBits returns the remainder width p.
func (e *GolombEncoder) RemainderBits() int {
	return e.width.Bits()
}

// Reset restarts the difference accumulator so a new sorted sequence can be
// appended to the same stream. Encoded data is retained.
//
// Each segment then starts from zero, while GolombDecoder.All, Contains and
// set blobs sum differences across the whole stream. Decode a multi-segment
// stream with Deltas and restart the sum at segment lengths tracked by the caller.
func (e *GolombEncoder) Reset() {
	e.accumulator = 0
}

// Finish returns the buffer to the pool. The encoder becomes unusable.
func (e *GolombEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutStreamBuffer(e.buf)
	e.buf = nil
}
