// Package errs defines the sentinel errors returned by stream64.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should compare them with errors.Is:
//
//	n, err := encoding.EncodeGolomb(19, values, dst)
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    // retry with a larger destination buffer
//	}
package errs

import "errors"

// Parameter errors.
var (
	// ErrInvalidRemainderWidth is returned when the remainder bit width p is outside [1, 56].
	ErrInvalidRemainderWidth = errors.New("remainder width out of range")
	// ErrValueOverflow is returned when a value does not fit in its fixed-width field.
	ErrValueOverflow = errors.New("value exceeds field width")
	// ErrUnsortedInput is returned when a Golomb-coded set receives a value smaller than its predecessor.
	ErrUnsortedInput = errors.New("input is not sorted in non-decreasing order")
	// ErrAmbiguousCount is returned when the item count of a fixed-width stream cannot be derived from its length.
	ErrAmbiguousCount = errors.New("item count cannot be inferred for remainder width below 8")
	// ErrInvalidCapacity is returned when an encoder is configured with a non-positive capacity or a negative margin.
	ErrInvalidCapacity = errors.New("invalid buffer capacity")
)

// Encoding errors.
var (
	// ErrCapacityExceeded is returned when the encoded output would not fit in the safety-margined destination.
	ErrCapacityExceeded = errors.New("destination buffer capacity exceeded")
	// ErrEmptyOutput is returned when an encode pass produced zero bytes.
	ErrEmptyOutput = errors.New("encoding produced no output")
)

// Decoding errors.
var (
	// ErrInsufficientPadding is returned when a source buffer lacks the trailing bytes required by word refills.
	ErrInsufficientPadding = errors.New("source buffer lacks refill padding")
	// ErrTruncatedStream is returned when a stream ends before the expected number of items was decoded.
	ErrTruncatedStream = errors.New("stream ended before all items were decoded")
)

// Container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrPayloadSize        = errors.New("payload size does not match header")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrInvalidFilterRange = errors.New("invalid filter false-positive modulus")
	ErrInvalidEncoding    = errors.New("unsupported encoding type")
	ErrInvalidCompression = errors.New("unsupported compression type")
)
