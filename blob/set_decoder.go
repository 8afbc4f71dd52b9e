package blob

import (
	"fmt"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/compress"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/internal/hash"
	"github.com/arloliu/stream64/section"
)

// DecodeSet parses a serialized set blob.
//
// The header, the stored payload length and, when present, the checksum are
// validated before the payload is decompressed. The decompressed length must
// match the header and be plausible for the item count, so queries on the
// returned blob never read past the payload.
//
// Parameters:
//   - data: Serialized blob as produced by SetBlob.Bytes; it is retained, not copied
//
// Returns:
//   - SetBlob: Decoded blob
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidHeaderFlags, errs.ErrPayloadSize,
//     errs.ErrChecksumMismatch or a decompression error
func DecodeSet(data []byte) (SetBlob, error) {
	header, err := section.ParseSetHeader(data)
	if err != nil {
		return SetBlob{}, err
	}

	stored := data[section.PayloadOffset:]
	if uint64(len(stored)) != uint64(header.StoredLength) {
		return SetBlob{}, fmt.Errorf("%w: %d stored bytes, header says %d", errs.ErrPayloadSize, len(stored), header.StoredLength)
	}

	if header.Flag.HasChecksum() {
		if sum := hash.Checksum(stored); sum != header.Checksum {
			return SetBlob{}, fmt.Errorf("%w: got %#016x, header says %#016x", errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	if err := checkPayloadLength(header); err != nil {
		return SetBlob{}, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return SetBlob{}, err
	}

	raw, err := codec.Decompress(stored, int(header.RawLength))
	if err != nil {
		return SetBlob{}, fmt.Errorf("failed to decompress set payload: %w", err)
	}

	return newSetBlob(header, data, raw), nil
}

// checkPayloadLength rejects counts the raw payload cannot hold. A fixed-width
// payload has an exact length; every Golomb-Rice item takes at least p+1 bits.
func checkPayloadLength(h section.SetHeader) error {
	w := bitstream.MustWidth(int(h.RemainderBits))
	bits := uint64(h.RawLength) * 8

	if h.Flag.Encoding() == format.TypeFixed {
		if h.Count > bits/uint64(w.Bits()) || uint64(bitstream.FixedBytes(int(h.Count), w)) != uint64(h.RawLength) { //nolint:gosec // G115: count bounded by the first check
			return fmt.Errorf("%w: %d fixed items of %d bits in %d bytes", errs.ErrPayloadSize, h.Count, w.Bits(), h.RawLength)
		}

		return nil
	}

	if h.Count > bits/uint64(w.Bits()+1) {
		return fmt.Errorf("%w: %d items of at least %d bits in %d bytes", errs.ErrPayloadSize, h.Count, w.Bits()+1, h.RawLength)
	}

	if h.Count == 0 && h.RawLength != 0 {
		return fmt.Errorf("%w: empty set with %d payload bytes", errs.ErrPayloadSize, h.RawLength)
	}

	return nil
}

// WrapPayload builds a set blob around a bare Golomb-Rice payload whose item
// count and remainder width are known out of band, as in a BIP-158 filter
// message. The blob is uncompressed and carries a checksum.
//
// Returns errs.ErrInvalidRemainderWidth for a bad p and errs.ErrPayloadSize
// when count cannot fit in the payload.
func WrapPayload(p int, count int, payload []byte) (SetBlob, error) {
	if _, err := bitstream.NewWidth(p); err != nil {
		return SetBlob{}, err
	}

	if count < 0 || len(payload) > section.MaxPayloadSize {
		return SetBlob{}, fmt.Errorf("%w: %d items in %d bytes", errs.ErrPayloadSize, count, len(payload))
	}

	header := *section.NewSetHeader(p)
	header.Count = uint64(count)
	header.RawLength = uint32(len(payload))    //nolint:gosec // G115: checked above
	header.StoredLength = uint32(len(payload)) //nolint:gosec // G115: checked above
	header.Checksum = hash.Checksum(payload)

	if err := checkPayloadLength(header); err != nil {
		return SetBlob{}, err
	}

	data := make([]byte, 0, section.HeaderSize+len(payload))
	data = header.AppendTo(data)
	data = append(data, payload...)

	return newSetBlob(header, data, payload), nil
}
