package bitstream

import (
	"fmt"

	"github.com/arloliu/stream64/errs"
)

const (
	// MaxWidth is the widest field the write path accepts. It leaves 8 bits of
	// headroom in the 64-bit window for the up to 7 bits still queued after a flush.
	MaxWidth = 56
	// MaxPeek is the widest read served by one refill: 64 bits minus the up to 7
	// already-consumed bits left in the window after a refill.
	MaxPeek = 64 - 7
)

// Width is a validated field width in bits, in [1, MaxWidth].
// The zero value is not a valid width.
type Width struct {
	bits int
}

// NewWidth validates p and returns it as a Width.
//
// Returns:
//   - Width: the checked width
//   - error: errs.ErrInvalidRemainderWidth if p is outside [1, MaxWidth]
func NewWidth(p int) (Width, error) {
	if p < 1 || p > MaxWidth {
		return Width{}, fmt.Errorf("%w: p=%d, want 1..%d", errs.ErrInvalidRemainderWidth, p, MaxWidth)
	}

	return Width{bits: p}, nil
}

// MustWidth is like NewWidth but panics on an invalid width.
// It is intended for constant widths known at compile time.
func MustWidth(p int) Width {
	w, err := NewWidth(p)
	if err != nil {
		panic(err)
	}

	return w
}

// Bits returns the width in bits.
func (w Width) Bits() int {
	return w.bits
}

// Mask returns a mask of the low w bits.
func (w Width) Mask() uint64 {
	return (uint64(1) << w.bits) - 1
}

// Truncate keeps the low w bits of v. The result is always a valid Field.
func (w Width) Truncate(v uint64) Field {
	return Field{value: v & w.Mask(), width: w}
}

// Field is a value checked to fit its width, ready for the unchecked write path.
type Field struct {
	value uint64
	width Width
}

// NewField checks that v fits in w bits.
//
// Returns:
//   - Field: the checked token
//   - error: errs.ErrValueOverflow if v >= 2^w
func NewField(v uint64, w Width) (Field, error) {
	if v>>w.bits != 0 {
		return Field{}, fmt.Errorf("%w: %d does not fit in %d bits", errs.ErrValueOverflow, v, w.bits)
	}

	return Field{value: v, width: w}, nil
}

// Value returns the field value.
func (f Field) Value() uint64 {
	return f.value
}

// Width returns the field width.
func (f Field) Width() Width {
	return f.width
}

// GolombBits returns the number of bits one Golomb-Rice item takes for delta
// under remainder width p: the unary quotient, its terminator and p remainder bits.
func GolombBits(delta uint64, p Width) uint64 {
	return delta>>p.bits + 1 + uint64(p.bits) //nolint:gosec // G115: bits is 1..56
}

// FixedBytes returns the byte length of n fixed-width fields of p bits,
// including the final partial byte.
func FixedBytes(n int, p Width) int {
	return (n*p.bits + 7) / 8
}

// BytesForBits rounds a bit count up to whole bytes.
func BytesForBits(bits uint64) uint64 {
	return (bits + 7) >> 3
}
