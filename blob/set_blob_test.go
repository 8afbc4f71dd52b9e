package blob

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/section"
)

func randomSet(seed uint64, n int) []uint64 {
	rng := rand.New(rand.NewPCG(seed, 158))
	values := make([]uint64, n)
	for i := range values {
		values[i] = rng.Uint64N(uint64(n) << 19)
	}
	slices.Sort(values)

	return values
}

func mustEncoder(t *testing.T, opts ...SetEncoderOption) *SetEncoder {
	t.Helper()

	enc, err := NewSetEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func TestSetEncoder_RoundTrip(t *testing.T) {
	values := randomSet(1, 2000)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, comp := range compressions {
		for _, bigEndian := range []bool{false, true} {
			name := comp.String() + "/little"
			opts := []SetEncoderOption{WithCompression(comp)}
			if bigEndian {
				name = comp.String() + "/big"
				opts = append(opts, WithBigEndian())
			}

			t.Run(name, func(t *testing.T) {
				set, err := mustEncoder(t, opts...).Encode(values)
				require.NoError(t, err)
				require.Equal(t, len(values), set.Count())
				require.Equal(t, values, set.Values())

				decoded, err := DecodeSet(set.Bytes())
				require.NoError(t, err)
				require.Equal(t, len(values), decoded.Count())
				require.Equal(t, DefaultRemainderBits, decoded.RemainderBits())
				require.Equal(t, format.TypeGolombRice, decoded.Encoding())
				require.Equal(t, comp, decoded.Compression())
				require.True(t, decoded.HasChecksum())
				require.Equal(t, bigEndian, decoded.Header().Flag.IsBigEndian())
				require.Equal(t, set.Payload(), decoded.Payload())
				require.Equal(t, values, slices.Collect(decoded.All()))
			})
		}
	}
}

func TestSetEncoder_PayloadMatchesEncodeGolomb(t *testing.T) {
	values := randomSet(2, 500)

	set, err := mustEncoder(t, WithRemainderBits(20)).Encode(values)
	require.NoError(t, err)

	dst := make([]byte, encoding.DefaultCapacity)
	n, err := encoding.EncodeGolomb(20, values, dst)
	require.NoError(t, err)
	require.Equal(t, dst[:n], set.Payload())

	h := set.Header()
	require.Equal(t, uint32(n), h.RawLength)
	require.Equal(t, uint32(n), h.StoredLength)
	require.Len(t, set.Bytes(), section.HeaderSize+n)
	require.Equal(t, dst[:n], set.Bytes()[section.PayloadOffset:])
}

func TestSetEncoder_Unsorted(t *testing.T) {
	enc := mustEncoder(t)
	values := []uint64{30, 10, 20, 10}

	_, err := enc.Encode(values)
	require.ErrorIs(t, err, errs.ErrUnsortedInput)

	set, err := enc.EncodeUnsorted(values)
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 10, 20, 30}, set.Values())
	require.Equal(t, []uint64{30, 10, 20, 10}, values, "input is not modified")
}

func TestSetEncoder_Fixed(t *testing.T) {
	values := []uint64{0, 2047, 0, 2047, 5}

	set, err := mustEncoder(t, WithEncoding(format.TypeFixed), WithRemainderBits(11)).Encode(values)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 31, 252, 0, 127, 240, 0x0a}, set.Payload())

	decoded, err := DecodeSet(set.Bytes())
	require.NoError(t, err)
	require.Equal(t, format.TypeFixed, decoded.Encoding())
	require.Equal(t, values, decoded.Values())

	v, ok := decoded.At(4)
	require.True(t, ok)
	require.Equal(t, uint64(5), v)

	_, ok = decoded.At(5)
	require.False(t, ok)

	require.True(t, decoded.Contains(2047))
	require.False(t, decoded.Contains(2046))
	require.True(t, decoded.ContainsAny([]uint64{1, 5}))
	require.False(t, decoded.ContainsAny([]uint64{1, 2, 3}))

	_, err = mustEncoder(t, WithEncoding(format.TypeFixed), WithRemainderBits(11)).Encode([]uint64{4096})
	require.ErrorIs(t, err, errs.ErrValueOverflow)
}

func TestSetBlob_Queries(t *testing.T) {
	values := randomSet(3, 1000)

	set, err := mustEncoder(t).Encode(values)
	require.NoError(t, err)

	decoded, err := DecodeSet(set.Bytes())
	require.NoError(t, err)

	for _, i := range []int{0, 1, 499, 999} {
		v, ok := decoded.At(i)
		require.True(t, ok)
		require.Equal(t, values[i], v)
		require.True(t, decoded.Contains(values[i]))
	}

	_, ok := decoded.At(1000)
	require.False(t, ok)

	require.False(t, decoded.Contains(values[999]+1))
	require.False(t, decoded.ContainsAny([]uint64{values[999] + 1, values[999] + 2}))
	require.True(t, decoded.ContainsAny([]uint64{values[10]}))
}

func TestSetEncoder_Empty(t *testing.T) {
	for _, comp := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		set, err := mustEncoder(t, WithCompression(comp)).Encode(nil)
		require.NoError(t, err)
		require.Equal(t, 0, set.Count())
		require.Empty(t, set.Payload())
		require.Len(t, set.Bytes(), section.HeaderSize)

		decoded, err := DecodeSet(set.Bytes())
		require.NoError(t, err)
		require.Equal(t, 0, decoded.Count())
		require.Empty(t, decoded.Values())
		require.False(t, decoded.Contains(0))
	}
}

func TestSetEncoder_Options(t *testing.T) {
	_, err := NewSetEncoder(WithRemainderBits(0))
	require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth)

	_, err = NewSetEncoder(WithRemainderBits(57))
	require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth)

	_, err = NewSetEncoder(WithEncoding(format.EncodingType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = NewSetEncoder(WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = NewSetEncoder(WithCapacity(0))
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)

	_, err = NewSetEncoder(WithCapacity(100))
	require.ErrorIs(t, err, errs.ErrInvalidCapacity, "default margin exceeds capacity")

	_, err = NewSetEncoder(WithCapacity(100), WithSafetyMargin(0))
	require.NoError(t, err)
}

func TestSetEncoder_CapacityExceeded(t *testing.T) {
	enc := mustEncoder(t, WithCapacity(encoding.SafetyMargin+8))

	_, err := enc.Encode(randomSet(4, 100))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)

	_, err = enc.Encode([]uint64{1, 2})
	require.NoError(t, err, "the encoder stays usable")
}

func TestSetEncoder_WithoutChecksum(t *testing.T) {
	set, err := mustEncoder(t, WithChecksum(false)).Encode([]uint64{1, 2, 3})
	require.NoError(t, err)
	require.False(t, set.HasChecksum())
	require.Zero(t, set.Header().Checksum)

	data := bytes.Clone(set.Bytes())
	data[len(data)-1] ^= 0x80

	_, err = DecodeSet(data)
	require.NoError(t, err, "corruption goes unnoticed without a checksum")
}

func TestDecodeSet_Errors(t *testing.T) {
	set, err := mustEncoder(t).Encode(randomSet(5, 100))
	require.NoError(t, err)
	valid := set.Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		err    error
	}{
		{
			name:   "short header",
			mutate: func(b []byte) []byte { return b[:section.HeaderSize-1] },
			err:    errs.ErrInvalidHeaderSize,
		},
		{
			name:   "bad magic",
			mutate: func(b []byte) []byte { b[1] = 0xEA; return b },
			err:    errs.ErrInvalidHeaderFlags,
		},
		{
			name:   "truncated payload",
			mutate: func(b []byte) []byte { return b[:len(b)-1] },
			err:    errs.ErrPayloadSize,
		},
		{
			name:   "trailing bytes",
			mutate: func(b []byte) []byte { return append(b, 0) },
			err:    errs.ErrPayloadSize,
		},
		{
			name:   "corrupted payload",
			mutate: func(b []byte) []byte { b[section.PayloadOffset] ^= 0x01; return b },
			err:    errs.ErrChecksumMismatch,
		},
		{
			name: "count beyond payload",
			mutate: func(b []byte) []byte {
				binary.LittleEndian.PutUint64(b[8:16], 1<<40)
				return b
			},
			err: errs.ErrPayloadSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSet(tt.mutate(bytes.Clone(valid)))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapPayload(t *testing.T) {
	values := randomSet(6, 300)
	dst := make([]byte, encoding.DefaultCapacity)
	n, err := encoding.EncodeGolomb(19, values, dst)
	require.NoError(t, err)

	set, err := WrapPayload(19, len(values), dst[:n])
	require.NoError(t, err)
	require.Equal(t, values, set.Values())

	decoded, err := DecodeSet(set.Bytes())
	require.NoError(t, err)
	require.Equal(t, values, decoded.Values())

	_, err = WrapPayload(0, len(values), dst[:n])
	require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth)

	_, err = WrapPayload(19, n, dst[:n])
	require.ErrorIs(t, err, errs.ErrPayloadSize)

	_, err = WrapPayload(19, -1, dst[:n])
	require.ErrorIs(t, err, errs.ErrPayloadSize)
}

func TestDecodeSet_InflatedRawLength(t *testing.T) {
	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(comp.String(), func(t *testing.T) {
			set, err := mustEncoder(t, WithCompression(comp)).Encode([]uint64{7, 300, 9000})
			require.NoError(t, err)

			// the checksum covers the stored payload only, so it stays valid
			header := set.Header()
			header.RawLength = 1 << 30
			data := header.AppendTo(nil)
			data = append(data, set.Bytes()[section.PayloadOffset:]...)

			_, err = DecodeSet(data)
			require.ErrorIs(t, err, errs.ErrPayloadSize)
		})
	}
}
