package section

import (
	"fmt"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/errs"
)

// SetHeader represents the fixed-size header at the start of a set blob.
type SetHeader struct {
	// Count is the number of items in the payload bitstream.
	Count uint64 // byte offset 8-15
	// Checksum is the xxHash64 of the stored payload, zero when the checksum flag is clear.
	Checksum uint64 // byte offset 24-31
	// RawLength is the byte length of the payload bitstream before compression.
	RawLength uint32 // byte offset 16-19
	// StoredLength is the byte length of the payload as stored after the header.
	StoredLength uint32 // byte offset 20-23
	// RemainderBits is the remainder width p of a Golomb-Coded Set or the field width of a fixed-width payload.
	RemainderBits uint8 // byte offset 4, followed by three reserved zero bytes

	// Flag is a packed field for the magic number, options, encoding and compression.
	Flag SetFlag // byte offset 0-3
}

// NewSetHeader creates a header with the default flag and remainder width p.
// The count, lengths and checksum are set when the payload is written.
func NewSetHeader(p int) *SetHeader {
	return &SetHeader{
		Flag:          NewSetFlag(),
		RemainderBits: uint8(p), //nolint:gosec // G115: validated by callers, checked by Validate
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or ErrInvalidHeaderFlags
func (h *SetHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options decides the order of the other fields and is always little-endian
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]
	h.RemainderBits = data[4]

	if data[5]|data[6]|data[7] != 0 {
		return fmt.Errorf("%w: reserved header bytes set", errs.ErrInvalidHeaderFlags)
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint64(data[8:16])
	h.RawLength = engine.Uint32(data[16:20])
	h.StoredLength = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return h.Validate()
}

// Validate checks the flag and the remainder width.
func (h *SetHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if _, err := bitstream.NewWidth(int(h.RemainderBits)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *SetHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b.
func (h *SetHeader) AppendTo(b []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	b = append(b, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	b = append(b, h.Flag.EncodingType, h.Flag.CompressionType, h.RemainderBits, 0, 0, 0)
	b = engine.AppendUint64(b, h.Count)
	b = engine.AppendUint32(b, h.RawLength)
	b = engine.AppendUint32(b, h.StoredLength)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// ParseSetHeader parses a SetHeader from the start of data.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - SetHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or ErrInvalidHeaderFlags
func ParseSetHeader(data []byte) (SetHeader, error) {
	if len(data) < HeaderSize {
		return SetHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := SetHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return SetHeader{}, err
	}

	return h, nil
}
