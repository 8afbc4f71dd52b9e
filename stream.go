package stream64

import (
	"iter"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/encoding"
)

// Stream is a sequence of fixed-width p-bit values.
type Stream struct {
	src     bitstream.Source
	decoder encoding.FixedDecoder
	count   int
}

// NewStream wraps data holding count values of p bits each.
// The data is copied.
func NewStream(data []byte, count int, p int) (*Stream, error) {
	dec, err := encoding.NewFixedDecoder(p)
	if err != nil {
		return nil, err
	}

	return &Stream{
		src:     bitstream.NewSource(data),
		decoder: dec,
		count:   max(count, 0),
	}, nil
}

// NewStreamInferred wraps data and derives the count from its length.
//
// Returns errs.ErrAmbiguousCount for p <= 7, where pad bits could be read as a value.
func NewStreamInferred(data []byte, p int) (*Stream, error) {
	count, err := encoding.InferFixedCount(len(data), p)
	if err != nil {
		return nil, err
	}

	return NewStream(data, count, p)
}

// Len returns the number of values in the stream.
func (s *Stream) Len() int {
	return s.count
}

// All yields the values in order.
func (s *Stream) All() iter.Seq[uint64] {
	return s.decoder.AllSource(s.src, s.count)
}

// At returns the value at index.
func (s *Stream) At(index int) (uint64, bool) {
	return s.decoder.AtSource(s.src, index, s.count)
}

// StreamWrite packs values into p bits each and returns the new stream bytes.
//
// Returns errs.ErrInvalidRemainderWidth, errs.ErrValueOverflow or, for empty
// input, errs.ErrEmptyOutput.
func StreamWrite(values []uint64, p int) ([]byte, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, bitstream.FixedBytes(len(values), w))
	n, err := encoding.EncodeFixed(values, p, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
