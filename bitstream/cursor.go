package bitstream

import "github.com/arloliu/stream64/endian"

// Cursor is the bit position tracker for one encode or decode pass.
//
// The zero value is a ready cursor positioned at the start of the buffer.
type Cursor struct {
	lookahead  uint64 // window, most significant bit first
	bitOffset  int    // bits consumed (read) or filled (write) within lookahead
	byteOffset int    // whole bytes consumed from the source or written to the destination
}

// NewCursor returns a zeroed cursor.
func NewCursor() Cursor {
	return Cursor{}
}

// ByteOffset returns the number of whole bytes consumed or written so far.
func (c *Cursor) ByteOffset() int {
	return c.byteOffset
}

// BitOffset returns the number of bits consumed or filled within the current window.
func (c *Cursor) BitOffset() int {
	return c.bitOffset
}

// BitsConsumed returns the absolute stream position in bits.
func (c *Cursor) BitsConsumed() int {
	return c.byteOffset*8 + c.bitOffset
}

// Refill advances the byte offset past the whole bytes already consumed and
// reloads the window with the next 8 bytes of src, big-endian.
//
// Only the sub-byte remainder of the bit offset survives the refill.
// Panics if src has fewer than 8 readable bytes at the new byte offset, which
// cannot happen while reading within the logical length of src.
func (c *Cursor) Refill(src Source) {
	if debugAssertions {
		assertf(c.bitOffset <= 64, "refill with bit offset %d beyond window", c.bitOffset)
	}

	c.byteOffset += c.bitOffset >> 3
	c.lookahead = endian.LoadWord(src.data[c.byteOffset:])
	c.bitOffset &= 7
}

// Peek returns the next count bits of the window right-aligned, without consuming them.
// count must be in [1, MaxPeek] and fit in the unconsumed part of the window.
func (c *Cursor) Peek(count int) uint64 {
	if debugAssertions {
		assertf(count >= 1 && count <= MaxPeek, "peek count %d out of range", count)
		assertf(c.bitOffset+count <= 64, "peek of %d bits at offset %d overruns window", count, c.bitOffset)
	}

	return (c.lookahead << c.bitOffset) >> (64 - count)
}

// Consume advances the bit offset by count.
func (c *Cursor) Consume(count int) {
	c.bitOffset += count
}

// GetBits reads count bits from src: Refill, then Peek, then Consume.
// This is the read entry point used by the codecs.
func (c *Cursor) GetBits(src Source, count int) uint64 {
	c.Refill(src)
	v := c.Peek(count)
	c.Consume(count)

	return v
}

// Seek positions a read cursor at an absolute bit offset. The window is
// reloaded by the next GetBits.
func (c *Cursor) Seek(bit int) {
	c.lookahead = 0
	c.byteOffset = bit >> 3
	c.bitOffset = bit & 7
}
