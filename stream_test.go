package stream64

import (
	"bytes"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stream64/errs"
)

func TestStreamWrite_Unary(t *testing.T) {
	values := make([]uint64, 0, 104)
	for range 103 {
		values = append(values, 1)
	}
	values = append(values, 0)

	data, err := StreamWrite(values, 1)
	require.NoError(t, err)
	require.Equal(t, append(bytes.Repeat([]byte{255}, 12), 254), data)

	s, err := NewStream(data, len(values), 1)
	require.NoError(t, err)
	require.Equal(t, values, slices.Collect(s.All()))

	_, err = NewStreamInferred(data, 1)
	require.ErrorIs(t, err, errs.ErrAmbiguousCount)
}

func TestStreamWrite_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		p        int
		values   []uint64
		expected []byte
	}{
		{name: "p=11", p: 11, values: []uint64{0, 2047, 0, 2047}, expected: []byte{0, 31, 252, 0, 127, 240}},
		{name: "p=19", p: 19, values: []uint64{0, 524287, 0, 524287}, expected: []byte{0, 0, 0x1f, 0xff, 0xfc, 0, 0, 127, 0xff, 0xf0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := StreamWrite(tt.values, tt.p)
			require.NoError(t, err)
			require.Equal(t, tt.expected, data)

			s, err := NewStreamInferred(data, tt.p)
			require.NoError(t, err)
			require.Equal(t, len(tt.values), s.Len())
			require.Equal(t, tt.values, slices.Collect(s.All()))

			v, ok := s.At(3)
			require.True(t, ok)
			require.Equal(t, tt.values[3], v)
		})
	}
}

func TestStream_AtBeyondData(t *testing.T) {
	s, err := NewStream([]byte{1, 2, 3, 4}, math.MaxInt, 16)
	require.NoError(t, err)

	v, ok := s.At(1)
	require.True(t, ok)
	require.Equal(t, uint64(0x0304), v)

	_, ok = s.At(2)
	require.False(t, ok)

	_, ok = s.At(math.MaxInt / 16)
	require.False(t, ok)
}

func TestStreamWrite_RoundTrip(t *testing.T) {
	values := make([]uint64, 100_000)
	for i := range values {
		values[i] = 2047
	}

	data, err := StreamWrite(values, 11)
	require.NoError(t, err)
	require.Len(t, data, len(values)/8*11)
	require.Equal(t, bytes.Repeat([]byte{math.MaxUint8}, len(values)/8*11), data)

	s, err := NewStreamInferred(data, 11)
	require.NoError(t, err)
	require.Equal(t, values, slices.Collect(s.All()))
}

func TestStreamWrite_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(100, 56))

	for range 100 {
		p := rng.IntN(56) + 1
		maxValue := uint64(math.Pow(2, float64(p))) - 1

		n := rng.IntN(19_999) + 1
		values := make([]uint64, n)
		for i := range values {
			values[i] = min(rng.Uint64N(uint64(i)+1), maxValue)
		}

		data, err := StreamWrite(values, p)
		require.NoError(t, err)

		var s *Stream
		if p > 7 {
			s, err = NewStreamInferred(data, p)
		} else {
			s, err = NewStream(data, len(values), p)
		}
		require.NoError(t, err)
		require.Equal(t, len(values), s.Len())
		require.Equal(t, values, slices.Collect(s.All()), "p=%d", p)
	}
}

func TestStreamWrite_Errors(t *testing.T) {
	_, err := StreamWrite([]uint64{8}, 3)
	require.ErrorIs(t, err, errs.ErrValueOverflow)

	_, err = StreamWrite(nil, 3)
	require.ErrorIs(t, err, errs.ErrEmptyOutput)

	_, err = StreamWrite([]uint64{1}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth)

	_, err = NewStream([]byte{1}, 1, 60)
	require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth)
}
