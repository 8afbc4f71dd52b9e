// Package stream64 encodes and decodes Golomb-Coded Sets.
//
// A Golomb-Coded Set (GCS) packs a sorted sequence of uint64 values into a
// bitstream: each value is stored as its difference from the previous one,
// split into a unary quotient and a binary remainder of p bits. It is the
// format of the BIP-158 compact block filters.
//
// # Core Features
//
//   - Word-at-a-time bit cursor: one 64-bit load per read, one store per write
//   - Golomb-Rice and fixed-width codecs with bounded, capacity-checked encoding
//   - Early-stop membership queries over the running prefix sum
//   - Self-describing container with optional compression (Zstd, S2, LZ4) and xxHash64 checksum
//   - Probabilistic set filters in the style of BIP-158
//
// # Basic Usage
//
// Encoding and decoding a set:
//
//	import "github.com/arloliu/stream64"
//
//	data, err := stream64.EncodeUnsortedSet([]uint64{42, 7, 1999}, 19)
//	if err != nil {
//	    return err
//	}
//
//	values, err := stream64.DecodeSet(data, 3, 19) // [7 42 1999]
//
// The stream does not record its item count; store it next to the data, or use
// the blob package, which adds a header.
//
// Low-level access with a cursor:
//
//	src := stream64.NewSource(data)
//	c := stream64.CreateCursor()
//
//	var v uint64
//	for range n {
//	    v += stream64.DecodeGolombItem(src, 19, &c)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The bitstream package
// holds the cursor, encoding the codecs, blob the container and filter the
// probabilistic filter.
package stream64

import (
	"bytes"
	"slices"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/internal/pool"
)

const (
	// DefaultCapacity is the destination capacity of EncodeSortedSet, 4 MiB.
	DefaultCapacity = encoding.DefaultCapacity
	// SafetyMargin is the number of bytes a Golomb-Rice encode keeps free, 1024.
	SafetyMargin = encoding.SafetyMargin
	// MaxRemainderBits is the largest supported remainder width, 56.
	MaxRemainderBits = bitstream.MaxWidth
)

type (
	// Cursor tracks the bit position of one encode or decode pass.
	Cursor = bitstream.Cursor
	// Source is a read-only byte buffer padded for word refills.
	Source = bitstream.Source
)

// CreateCursor returns a zeroed cursor positioned at the start of a buffer.
func CreateCursor() Cursor {
	return bitstream.NewCursor()
}

// NewSource copies data into a source with refill padding.
func NewSource(data []byte) Source {
	return bitstream.NewSource(data)
}

// EncodeGolomb packs sorted values as a Golomb-Coded Set into dst and returns the
// number of bytes written. See encoding.EncodeGolomb.
func EncodeGolomb(p int, sorted []uint64, dst []byte) (int, error) {
	return encoding.EncodeGolomb(p, sorted, dst)
}

// EncodeFixed packs each value into p bits. See encoding.EncodeFixed.
func EncodeFixed(values []uint64, p int, dst []byte) (int, error) {
	return encoding.EncodeFixed(values, p, dst)
}

// DecodeGolombItem reads one Golomb-Rice item and returns its difference from
// the previous value. See encoding.DecodeGolombItem.
func DecodeGolombItem(src Source, p int, c *Cursor) uint64 {
	return encoding.DecodeGolombItem(src, p, c)
}

// DecodeFixed reads one p-bit field. See encoding.DecodeFixed.
func DecodeFixed(src Source, p int, c *Cursor) uint64 {
	return encoding.DecodeFixed(src, p, c)
}

// EncodeSortedSet encodes sorted values with remainder width p into a new slice.
//
// The encode pass runs against a pooled buffer of DefaultCapacity bytes and the
// result is copied out. Empty input gives an empty result and no error.
//
// Returns:
//   - []byte: the encoded set
//   - error: errs.ErrInvalidRemainderWidth or errs.ErrCapacityExceeded
func EncodeSortedSet(sorted []uint64, p int) ([]byte, error) {
	if _, err := bitstream.NewWidth(p); err != nil {
		return nil, err
	}

	if len(sorted) == 0 {
		return []byte{}, nil
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	dst := buf.Scratch(DefaultCapacity)
	n, err := encoding.EncodeGolomb(p, sorted, dst)
	if err != nil {
		return nil, err
	}

	return bytes.Clone(dst[:n]), nil
}

// EncodeUnsortedSet sorts a copy of values and encodes it with EncodeSortedSet.
func EncodeUnsortedSet(values []uint64, p int) ([]byte, error) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return EncodeSortedSet(sorted, p)
}

// DecodeSet decodes the n members of a set encoded with remainder width p.
//
// Returns errs.ErrTruncatedStream, with the members decoded so far, if data
// ends before n members were read.
func DecodeSet(data []byte, n int, p int) ([]uint64, error) {
	dec, err := encoding.NewGolombDecoder(p)
	if err != nil {
		return nil, err
	}

	return dec.DecodeAll(data, n)
}
