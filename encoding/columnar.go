package encoding

import "iter"

// StreamEncoder accumulates values into one bitstream.
type StreamEncoder interface {
	// Write encodes a single value.
	//
	// It returns an error, and leaves the stream unchanged, if the value cannot be
	// encoded: it violates the encoder's ordering or width contract, or the encoded
	// stream would exceed the configured capacity.
	Write(v uint64) error

	// WriteSlice encodes values in order and stops at the first error.
	// Values before the failing one remain encoded.
	WriteSlice(values []uint64) error

	// Bytes returns the encoded stream including the final partial byte.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	//
	// Bytes does not end the encoding session; more values can be written afterwards.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the length in bytes Bytes would return.
	Size() int

	// Reset restarts the encoding state for a new sequence while keeping the
	// accumulated stream, so several sequences can share one buffer.
	//
	// Len(), Size() and Bytes() remain unchanged. The stream records no segment
	// boundaries: for difference-coded streams the decoders' absolute values are
	// only correct for the first segment, and later segments must be rebuilt from
	// the raw differences with segment lengths kept by the caller.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), or Size() panic. Retrieve the data with Bytes()
	// before calling Finish:
	//
	//	encoder, _ := NewGolombEncoder(19)
	//	defer encoder.Finish()
	//
	//	_ = encoder.Write(42)
	//	data := bytes.Clone(encoder.Bytes())
	Finish()
}

// StreamDecoder decodes values from a stream produced by the matching encoder.
type StreamDecoder interface {
	// All returns an iterator that yields the decoded values in order.
	//
	// The count parameter specifies the number of encoded values, which the stream
	// itself does not record. The iterator stops early, yielding fewer values, if the
	// stream ends before count values were decoded.
	All(data []byte, count int) iter.Seq[uint64]

	// At retrieves the value at the zero-based index.
	//
	// The second return value is false if the index is out of bounds
	// (index < 0 or index >= count) or the stream ends first.
	At(data []byte, index int, count int) (uint64, bool)
}
