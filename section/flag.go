package section

import (
	"fmt"

	"github.com/arloliu/stream64/endian"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
)

// SetFlag represents the packed flag fields at the start of the set header.
type SetFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the header carries a payload checksum.
	// Bit 1 is the endianness flag of the header fields, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0x5640 for set blob format v1.
	//
	// Options itself is always stored little-endian.
	Options uint16

	// EncodingType is the format.EncodingType of the payload bitstream.
	EncodingType uint8
	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
}

var (
	validEncodings = map[uint8]struct{}{
		EncodingFixed:      {},
		EncodingGolombRice: {},
	}

	validCompressions = map[uint8]struct{}{
		CompressionNone: {},
		CompressionZstd: {},
		CompressionS2:   {},
		CompressionLZ4:  {},
	}
)

// NewSetFlag creates a flag for a little-endian, uncompressed Golomb-Coded Set
// with a payload checksum.
func NewSetFlag() SetFlag {
	return SetFlag{
		Options:         MagicSetV1Opt | ChecksumMask,
		EncodingType:    EncodingGolombRice,
		CompressionType: CompressionNone,
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f SetFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the payload checksum.
func (f *SetFlag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f SetFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f SetFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian header fields.
func (f *SetFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian header fields.
func (f *SetFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f SetFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Encoding returns the payload encoding type.
func (f SetFlag) Encoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetEncoding sets the payload encoding type.
func (f *SetFlag) SetEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the payload compression type.
func (f SetFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *SetFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number, the reserved bits and the encoding and
// compression types. Every failure wraps errs.ErrInvalidHeaderFlags.
func (f SetFlag) Validate() error {
	if f.GetMagicNumber() != MagicSetV1Opt {
		return fmt.Errorf("%w: %w %#04x", errs.ErrInvalidHeaderFlags, errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidHeaderFlags)
	}

	if _, ok := validEncodings[f.EncodingType]; !ok {
		return fmt.Errorf("%w: %w %d", errs.ErrInvalidHeaderFlags, errs.ErrInvalidEncoding, f.EncodingType)
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: %w %d", errs.ErrInvalidHeaderFlags, errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}

// GetEndianEngine returns the byte order of the header fields.
func (f SetFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
