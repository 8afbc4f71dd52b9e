package blob

import (
	"iter"
	"slices"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/section"
)

// SetBlob is an immutable, decoded view of one serialized set.
//
// It keeps the serialized form for Bytes and the uncompressed payload as a
// padded bitstream.Source for queries. A SetBlob is safe for concurrent readers.
type SetBlob struct {
	header  section.SetHeader
	data    []byte
	payload bitstream.Source
	golomb  encoding.GolombDecoder
	fixed   encoding.FixedDecoder
}

// newSetBlob builds a blob from a validated header.
func newSetBlob(header section.SetHeader, data []byte, raw []byte) SetBlob {
	p := int(header.RemainderBits)
	golomb, _ := encoding.NewGolombDecoder(p)
	fixed, _ := encoding.NewFixedDecoder(p)

	return SetBlob{
		header:  header,
		data:    data,
		payload: bitstream.NewSource(raw),
		golomb:  golomb,
		fixed:   fixed,
	}
}

func (b SetBlob) isFixed() bool {
	return b.header.Flag.Encoding() == format.TypeFixed
}

// Count returns the number of items in the set.
func (b SetBlob) Count() int {
	return int(b.header.Count) //nolint:gosec // G115: bounded by the payload length on decode
}

// RemainderBits returns the remainder width p.
func (b SetBlob) RemainderBits() int {
	return int(b.header.RemainderBits)
}

// Encoding returns the payload encoding type.
func (b SetBlob) Encoding() format.EncodingType {
	return b.header.Flag.Encoding()
}

// Compression returns the payload compression type.
func (b SetBlob) Compression() format.CompressionType {
	return b.header.Flag.Compression()
}

// HasChecksum reports whether the blob carries a payload checksum.
func (b SetBlob) HasChecksum() bool {
	return b.header.Flag.HasChecksum()
}

// Header returns a copy of the parsed header.
func (b SetBlob) Header() section.SetHeader {
	return b.header
}

// Bytes returns the serialized blob: header followed by the stored payload.
// The caller must not modify the returned slice.
func (b SetBlob) Bytes() []byte {
	return b.data
}

// Payload returns the uncompressed payload bitstream.
// The caller must not modify the returned slice.
func (b SetBlob) Payload() []byte {
	return b.payload.Bytes()
}

// Source returns the payload as a padded bitstream source.
func (b SetBlob) Source() bitstream.Source {
	return b.payload
}

// All yields the items in stored order. For Golomb-Rice sets this is ascending order.
func (b SetBlob) All() iter.Seq[uint64] {
	if b.isFixed() {
		return b.fixed.AllSource(b.payload, b.Count())
	}

	return b.golomb.AllSource(b.payload, b.Count())
}

// Values decodes all items into a new slice.
func (b SetBlob) Values() []uint64 {
	return slices.AppendSeq(make([]uint64, 0, b.Count()), b.All())
}

// At returns the item at index. Fixed-width payloads seek directly; Golomb-Rice
// payloads are walked from the start.
func (b SetBlob) At(index int) (uint64, bool) {
	if b.isFixed() {
		return b.fixed.AtSource(b.payload, index, b.Count())
	}

	return b.golomb.AtSource(b.payload, index, b.Count())
}

// Contains reports whether v is an item of the set.
//
// Golomb-Rice sets stop decoding at the first item not smaller than v;
// fixed-width payloads are scanned in full.
func (b SetBlob) Contains(v uint64) bool {
	if b.isFixed() {
		for item := range b.All() {
			if item == v {
				return true
			}
		}

		return false
	}

	return b.golomb.ContainsSource(b.payload, b.Count(), v)
}

// ContainsAny reports whether any of targets is an item of the set.
// targets must be sorted in non-decreasing order.
func (b SetBlob) ContainsAny(targets []uint64) bool {
	if b.isFixed() {
		for item := range b.All() {
			if _, found := slices.BinarySearch(targets, item); found {
				return true
			}
		}

		return false
	}

	return b.golomb.ContainsAnySource(b.payload, b.Count(), targets)
}
