package encoding

import (
	"encoding/hex"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/errs"
)

// loadFilter reads a hex encoded Golomb-Coded Set from testdata, dropping skip leading bytes.
func loadFilter(t *testing.T, name string, skip int) []byte {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	require.NoError(t, err)

	return data[skip:]
}

func sortedRandom(rng *rand.Rand, n int) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = rng.Uint64N(10_000_000-100_000+1) + 100_000
		values[i] *= uint64(i)
	}
	slices.Sort(values)

	return values
}

func decodeGolombItems(data []byte, p int, count int) []uint64 {
	src := bitstream.NewSource(data)
	c := bitstream.NewCursor()

	out := make([]uint64, 0, count)
	var sum uint64
	for range count {
		sum += DecodeGolombItem(src, p, &c)
		out = append(out, sum)
	}

	return out
}

func TestEncodeGolomb_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		p        int
		values   []uint64
		expected []byte
	}{
		{name: "single item", p: 2, values: []uint64{5}, expected: []byte{0x90}},
		{name: "zero", p: 4, values: []uint64{0}, expected: []byte{0x00}},
		{name: "unit steps", p: 1, values: []uint64{1, 2, 3}, expected: []byte{0x54}},
		{name: "repeated values", p: 3, values: []uint64{7, 7, 7}, expected: []byte{0x70, 0x00}},
		{name: "remainder only", p: 8, values: []uint64{0xab, 0x156}, expected: []byte{0x55, 0xaa, 0xc0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 64)
			n, err := EncodeGolombWithMargin(tt.p, tt.values, dst, 0)
			require.NoError(t, err)
			require.Equal(t, tt.expected, dst[:n])

			require.Equal(t, tt.values, decodeGolombItems(dst[:n], tt.p, len(tt.values)))
		})
	}
}

func TestEncodeGolomb_DefaultMargin(t *testing.T) {
	dst := make([]byte, SafetyMargin+1)
	n, err := EncodeGolomb(2, []uint64{5}, dst)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x90), dst[0])

	_, err = EncodeGolomb(2, []uint64{5}, make([]byte, SafetyMargin))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestEncodeGolomb_InvalidWidth(t *testing.T) {
	dst := make([]byte, DefaultCapacity)
	for _, p := range []int{-1, 0, 57, 64} {
		n, err := EncodeGolomb(p, []uint64{1, 2, 3}, dst)
		require.ErrorIs(t, err, errs.ErrInvalidRemainderWidth, "p=%d", p)
		require.Zero(t, n)
	}
}

func TestEncodeGolomb_EmptyInput(t *testing.T) {
	_, err := EncodeGolomb(19, nil, make([]byte, 2048))
	require.ErrorIs(t, err, errs.ErrEmptyOutput)

	_, err = EncodeGolomb(19, []uint64{}, make([]byte, 2048))
	require.ErrorIs(t, err, errs.ErrEmptyOutput)
}

func TestEncodeGolomb_CapacityExceeded(t *testing.T) {
	values := make([]uint64, 100)
	for i := range values {
		values[i] = uint64(i)
	}

	// 100 items of 20 bits need 250 bytes; only 10 are usable
	_, err := EncodeGolomb(19, values, make([]byte, SafetyMargin+10))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Contains(t, err.Error(), "item 4")

	n, err := EncodeGolomb(19, values, make([]byte, SafetyMargin+250))
	require.NoError(t, err)
	require.Equal(t, 250, n)
}

func TestEncodeGolomb_ExactFit(t *testing.T) {
	dst := make([]byte, 1)
	n, err := EncodeGolombWithMargin(1, []uint64{1, 2, 3}, dst, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{0x54}, dst)

	_, err = EncodeGolombWithMargin(1, []uint64{1, 2, 3}, dst, -1)
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)
}

func TestEncodeGolomb_UnsortedHitsCapacity(t *testing.T) {
	_, err := EncodeGolomb(4, []uint64{10, 5}, make([]byte, 4096))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestEncodeGolomb_LongUnaryRun(t *testing.T) {
	// p=1 and a difference of 1000: 500 ones, the terminator and one remainder bit
	dst := make([]byte, 128)
	n, err := EncodeGolombWithMargin(1, []uint64{1000, 1001}, dst, 0)
	require.NoError(t, err)
	require.Equal(t, (502+2+7)/8, n)

	for i := range 62 {
		require.Equal(t, byte(0xff), dst[i], "byte %d", i)
	}
	require.Equal(t, []uint64{1000, 1001}, decodeGolombItems(dst[:n], 1, 2))
}

func TestEncodeGolomb_PadBitsAreZero(t *testing.T) {
	dst := make([]byte, 16)
	for i := range dst {
		dst[i] = 0xff
	}

	n, err := EncodeGolombWithMargin(2, []uint64{5}, dst, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x90), dst[0])
}

func TestEncodeGolomb_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 2022))
	values := sortedRandom(rng, 100_000)

	dst := make([]byte, DefaultCapacity)
	n, err := EncodeGolomb(19, values, dst)
	require.NoError(t, err)

	require.Equal(t, values, decodeGolombItems(dst[:n], 19, len(values)))

	decoded, err := mustGolombDecoder(t, 19).DecodeAll(dst[:n], len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeGolomb_AllWidthsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for p := 1; p <= bitstream.MaxWidth; p++ {
		values := make([]uint64, 200)
		var sum uint64
		for i := range values {
			// keep quotients small so the stream stays short
			sum += rng.Uint64N(uint64(1) << min(p+3, 56))
			values[i] = sum
		}

		dst := make([]byte, DefaultCapacity)
		n, err := EncodeGolomb(p, values, dst)
		require.NoError(t, err, "p=%d", p)
		require.Equal(t, values, decodeGolombItems(dst[:n], p, len(values)), "p=%d", p)
	}
}

func TestDecodeGolombItem_RealFilter(t *testing.T) {
	data := loadFilter(t, "filter_110.hex", 0)

	values := decodeGolombItems(data, 19, 110)
	require.Len(t, values, 110)
	require.Equal(t, uint64(32266), values[0])
	require.Equal(t, uint64(85401311), values[109])
	require.True(t, slices.IsSorted(values))

	// re-encoding reproduces the original bytes, padding included
	dst := make([]byte, len(data)+SafetyMargin)
	n, err := EncodeGolomb(19, values, dst)
	require.NoError(t, err)
	require.Equal(t, data, dst[:n])
}

func TestDecodeGolombItem_TestnetBlock(t *testing.T) {
	// the first three bytes are the compact-size item count, 0xfd 0xb6 0x01
	data := loadFilter(t, "testnet_1938592.hex", 3)

	values := decodeGolombItems(data, 19, 438)
	require.Equal(t, uint64(627539), values[0])
	require.Equal(t, uint64(343587834), values[437])

	dst := make([]byte, len(data)+SafetyMargin)
	n, err := EncodeGolomb(19, values, dst)
	require.NoError(t, err)
	require.Equal(t, data, dst[:n])
}

func mustGolombDecoder(t *testing.T, p int) GolombDecoder {
	t.Helper()

	d, err := NewGolombDecoder(p)
	require.NoError(t, err)

	return d
}
