package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeFixed      EncodingType = 0x1 // TypeFixed represents fixed-width p-bit fields without delta transform.
	TypeGolombRice EncodingType = 0x2 // TypeGolombRice represents delta + Golomb-Rice coding of a sorted set.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeFixed:
		return "Fixed"
	case TypeGolombRice:
		return "GolombRice"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
