package blob

import (
	"fmt"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/compress"
	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/internal/options"
	"github.com/arloliu/stream64/section"
)

// DefaultRemainderBits is the remainder width used when WithRemainderBits is not given.
// It matches the BIP-158 basic block filter.
const DefaultRemainderBits = 19

// SetEncoderConfig holds the container settings of a SetEncoder.
type SetEncoderConfig struct {
	header      *section.SetHeader
	codec       compress.Codec
	encoderOpts []encoding.EncoderOption
}

// SetEncoderOption represents a functional option for configuring the SetEncoderConfig.
type SetEncoderOption = options.Option[*SetEncoderConfig]

func newSetEncoderConfig(opts ...SetEncoderOption) (*SetEncoderConfig, error) {
	cfg := &SetEncoderConfig{
		header: section.NewSetHeader(DefaultRemainderBits),
		codec:  compress.NewNoOpCompressor(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setRemainderBits sets the remainder width p of the payload.
func (c *SetEncoderConfig) setRemainderBits(p int) error {
	if _, err := bitstream.NewWidth(p); err != nil {
		return err
	}
	c.header.RemainderBits = uint8(p) //nolint:gosec // G115: validated above

	return nil
}

// setEncoding sets the payload encoding type.
func (c *SetEncoderConfig) setEncoding(enc format.EncodingType) error {
	switch enc {
	case format.TypeFixed, format.TypeGolombRice:
		c.header.Flag.SetEncoding(enc)
		return nil
	default:
		return fmt.Errorf("%w: %v (%d)", errs.ErrInvalidEncoding, enc, uint8(enc))
	}
}

// setCompression sets the payload compression type and its codec.
func (c *SetEncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}

	c.header.Flag.SetCompression(comp)
	c.codec = codec

	return nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// setEndianness sets the byte order of the header fields.
func (c *SetEncoderConfig) setEndianness(e endianness) {
	if e == bigEndianOpt {
		c.header.Flag.WithBigEndian()
		return
	}

	c.header.Flag.WithLittleEndian()
}

// WithRemainderBits sets the remainder width p, 1..56. The default is DefaultRemainderBits.
// For fixed-width payloads p is the field width.
func WithRemainderBits(p int) SetEncoderOption {
	return options.New(func(c *SetEncoderConfig) error {
		return c.setRemainderBits(p)
	})
}

// WithEncoding selects format.TypeGolombRice (the default) or format.TypeFixed.
func WithEncoding(enc format.EncodingType) SetEncoderOption {
	return options.New(func(c *SetEncoderConfig) error {
		return c.setEncoding(enc)
	})
}

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) SetEncoderOption {
	return options.New(func(c *SetEncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian stores the header fields little-endian. It is the default option.
func WithLittleEndian() SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.setEndianness(littleEndianOpt)
	})
}

// WithBigEndian stores the header fields big-endian.
// The payload bitstream is big-endian either way.
func WithBigEndian() SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.setEndianness(bigEndianOpt)
	})
}

// WithCapacity bounds the raw payload size in bytes. The default is encoding.DefaultCapacity.
func WithCapacity(n int) SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.encoderOpts = append(c.encoderOpts, encoding.WithCapacity(n))
	})
}

// WithSafetyMargin sets the number of capacity bytes kept free by the payload encoder.
func WithSafetyMargin(n int) SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.encoderOpts = append(c.encoderOpts, encoding.WithSafetyMargin(n))
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. It is enabled by default.
func WithChecksum(enabled bool) SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.header.Flag.SetHasChecksum(enabled)
	})
}
