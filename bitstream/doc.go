// Package bitstream implements the bit cursor that every stream64 codec is built on.
//
// A Cursor tracks a 64-bit lookahead window over a flat byte buffer. The same
// type drives both directions:
//
//   - Reading: GetBits refills the window from the 8 bytes at the current byte
//     offset (big-endian), peeks the requested bits and consumes them. Exactly one
//     refill happens per call, immediately before the peek it serves.
//   - Writing: PutBits flushes the whole bytes queued in the window, ORs the new
//     field into the free space and advances the bit offset. Finalize drains the
//     trailing partial byte and must be called once after the last put.
//
// Refills and flushes only ever move whole bytes. The sub-byte remainder stays in
// the window, so the cursor never advances its byte offset by a fraction.
//
// # Buffer contracts
//
// Refills always load a full 8-byte window, so a readable buffer must carry at
// least Padding bytes past its logical end. Source encodes that contract in the
// type: NewSource copies and pads, WrapSource validates a caller-padded slice once.
//
// Writes never grow the destination. Callers project the encoded size first
// (see GolombBits and FixedBytes) and size the destination accordingly. Bytes past
// the returned length, up to 7 of them, may be overwritten with scratch data.
//
// # Precondition checks
//
// Field widths and values are validated once at the boundary by NewWidth and
// NewField; the hot path consumes the resulting tokens without re-checking.
// The raw PutBits, Peek and Refill invariants are asserted only when built with
// the stream64debug tag:
//
//	go test -tags stream64debug ./...
//
// # Thread Safety
//
// A Cursor represents one in-progress pass and must not be shared between
// goroutines. Independent passes need independent cursors.
package bitstream
