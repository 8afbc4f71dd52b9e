package bitstream

import "github.com/arloliu/stream64/endian"

// Flush writes the whole bytes queued at the top of the window to dst at the
// current byte offset, most significant byte first, and shifts them out.
//
// When at least 8 bytes of dst remain the whole window is stored at once; the
// surplus bytes hold queued bits and zeros and are overwritten by the next flush.
func (c *Cursor) Flush(dst []byte) {
	if debugAssertions {
		assertf(c.bitOffset < 64, "flush with bit offset %d beyond window", c.bitOffset)
	}

	fullBytes := c.bitOffset >> 3
	if fullBytes == 0 {
		return
	}

	out := dst[c.byteOffset:]
	if len(out) >= endian.WordSize {
		endian.StoreWord(out, c.lookahead)
	} else {
		endian.StoreWordPrefix(out, c.lookahead, fullBytes)
	}

	c.byteOffset += fullBytes
	c.lookahead <<= fullBytes * 8
	c.bitOffset &= 7
}

// write ORs the low count bits of value into the free space of the window.
func (c *Cursor) write(value uint64, count int) {
	c.lookahead |= (value << (64 - count)) >> c.bitOffset
}

// PutBits writes the low count bits of value to dst: Flush, then write, then advance.
//
// value must fit in count bits and count must be in [1, MaxWidth]. Both are
// asserted only in stream64debug builds; prefer PutField for unchecked input.
func (c *Cursor) PutBits(dst []byte, value uint64, count int) {
	if debugAssertions {
		assertf(count >= 1 && count <= MaxWidth, "put count %d out of range", count)
		assertf(value>>count == 0, "value %#x does not fit in %d bits", value, count)
	}

	c.Flush(dst)
	c.write(value, count)
	c.bitOffset += count
}

// PutField writes a field validated by NewField or Width.Truncate.
func (c *Cursor) PutField(dst []byte, f Field) {
	c.Flush(dst)
	c.write(f.value, f.width.bits)
	c.bitOffset += f.width.bits
}

// PutOnes writes n one bits, at most MaxWidth per put.
// The resulting bits are identical to n single-bit puts.
func (c *Cursor) PutOnes(dst []byte, n uint64) {
	for n > 0 {
		k := min(n, MaxWidth)
		c.PutBits(dst, (uint64(1)<<k)-1, int(k)) //nolint:gosec // G115: k <= MaxWidth
		n -= k
	}
}

// PutZero writes a single zero bit.
func (c *Cursor) PutZero(dst []byte) {
	c.Flush(dst)
	c.bitOffset++
}

// Finalize flushes the remaining whole bytes and, if bits are still queued, emits
// one more byte holding them in its high-order bits. The low-order pad bits are zero.
//
// It must be called exactly once after the last put; omitting it drops up to
// 7 trailing bits. Returns the total number of bytes written.
func (c *Cursor) Finalize(dst []byte) int {
	c.Flush(dst)

	if c.bitOffset > 0 {
		dst[c.byteOffset] = byte(c.lookahead >> 56)
		c.byteOffset++
		c.lookahead = 0
		c.bitOffset = 0
	}

	return c.byteOffset
}

// Finalized returns the length Finalize would report, writing the trailing bytes
// to dst without ending the pass: the receiver is a copy, so the caller's cursor
// keeps its queued bits and further puts overwrite the drained bytes.
func (c Cursor) Finalized(dst []byte) int {
	return c.Finalize(dst)
}

// PendingBytes returns the byte length Finalize would report for the current state.
func (c *Cursor) PendingBytes() int {
	return c.byteOffset + (c.bitOffset+7)>>3
}
