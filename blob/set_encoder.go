package blob

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/internal/hash"
	"github.com/arloliu/stream64/section"
)

// SetEncoder serializes sets of uint64 values into self-describing set blobs.
//
// A SetEncoder is not safe for concurrent use, but it can encode any number of
// sets one after another with the same configuration.
type SetEncoder struct {
	*SetEncoderConfig
}

// NewSetEncoder creates a set encoder.
//
// Parameters:
//   - opts: Optional configuration (remainder width, encoding, compression, endianness, capacity, checksum)
//
// Returns:
//   - *SetEncoder: New encoder instance
//   - error: Invalid option value
func NewSetEncoder(opts ...SetEncoderOption) (*SetEncoder, error) {
	cfg, err := newSetEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	e := &SetEncoder{SetEncoderConfig: cfg}

	// surface invalid capacity settings at construction time
	payload, err := e.newPayloadEncoder()
	if err != nil {
		return nil, err
	}
	payload.Finish()

	return e, nil
}

func (e *SetEncoder) newPayloadEncoder() (encoding.StreamEncoder, error) {
	p := int(e.header.RemainderBits)
	if e.header.Flag.Encoding() == format.TypeFixed {
		return encoding.NewFixedEncoder(p, e.encoderOpts...)
	}

	return encoding.NewGolombEncoder(p, e.encoderOpts...)
}

// Encode serializes values into a set blob.
//
// Golomb-Rice sets require values in non-decreasing order and fail with
// errs.ErrUnsortedInput otherwise; fixed-width payloads store values in the
// given order. An empty input produces a valid blob with a zero count.
//
// Returns:
//   - SetBlob: The encoded blob, ready for Bytes() or queries
//   - error: errs.ErrUnsortedInput, errs.ErrValueOverflow, errs.ErrCapacityExceeded or a compression error
func (e *SetEncoder) Encode(values []uint64) (SetBlob, error) {
	enc, err := e.newPayloadEncoder()
	if err != nil {
		return SetBlob{}, err
	}
	defer enc.Finish()

	if err := enc.WriteSlice(values); err != nil {
		return SetBlob{}, fmt.Errorf("failed to encode set payload: %w", err)
	}

	raw := bytes.Clone(enc.Bytes())

	stored, err := e.codec.Compress(raw)
	if err != nil {
		return SetBlob{}, fmt.Errorf("failed to compress set payload: %w", err)
	}

	if len(stored) > section.MaxPayloadSize {
		return SetBlob{}, fmt.Errorf("compressed payload of %d bytes exceeds the container limit", len(stored))
	}

	header := *e.header
	header.Count = uint64(len(values))
	header.RawLength = uint32(len(raw))       //nolint:gosec // G115: bounded by the encoder capacity
	header.StoredLength = uint32(len(stored)) //nolint:gosec // G115: checked above
	header.Checksum = 0
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Checksum(stored)
	}

	data := make([]byte, 0, section.HeaderSize+len(stored))
	data = header.AppendTo(data)
	data = append(data, stored...)

	return newSetBlob(header, data, raw), nil
}

// EncodeUnsorted sorts a copy of values and encodes it. The input is not modified.
// For fixed-width payloads this also stores the values sorted.
func (e *SetEncoder) EncodeUnsorted(values []uint64) (SetBlob, error) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return e.Encode(sorted)
}
