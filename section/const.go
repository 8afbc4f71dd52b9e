package section

import (
	"math"

	"github.com/arloliu/stream64/format"
)

const (
	// Bit masks of the Options field
	ChecksumMask     = 0x0001 // Mask for checksum present bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicSetV1Opt = 0x5640 // MagicSetV1Opt is the version 1 magic number of the set blob format.

	EncodingFixed      = uint8(format.TypeFixed)      // EncodingFixed represents fixed-width fields.
	EncodingGolombRice = uint8(format.TypeGolombRice) // EncodingGolombRice represents a Golomb-Coded Set.

	CompressionNone = uint8(format.CompressionNone) // CompressionNone represents a payload stored as is.
	CompressionZstd = uint8(format.CompressionZstd) // CompressionZstd represents Zstandard compression.
	CompressionS2   = uint8(format.CompressionS2)   // CompressionS2 represents S2 compression.
	CompressionLZ4  = uint8(format.CompressionLZ4)  // CompressionLZ4 represents LZ4 compression.
)

// offset and section sizes in the blob
const (
	HeaderSize     = 32             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxPayloadSize = math.MaxUint32 // maximum raw or stored payload length
)
