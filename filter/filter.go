package filter

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/blob"
	"github.com/arloliu/stream64/encoding"
	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/format"
	"github.com/arloliu/stream64/internal/hash"
	"github.com/arloliu/stream64/internal/pool"
)

const (
	// DefaultP is the remainder width of the BIP-158 basic filter.
	DefaultP = 19
	// DefaultM is the inverse false positive rate of the BIP-158 basic filter.
	DefaultM = 784931
)

// Filter is a Golomb-Coded Set of hashed items.
//
// A query is answered by hashing the item the same way and looking the result
// up in the set: an item that was added always matches, any other item matches
// with probability about 1/M. A Filter is immutable and safe for concurrent use.
type Filter struct {
	key uint64
	m   uint64
	set blob.SetBlob
}

// New builds a filter over items.
//
// Each item is hashed with xxHash64 seeded with key and mapped uniformly into
// [0, N*M), where N is the number of items. The mapped values are sorted and
// Golomb-Rice coded with remainder width p. Duplicate items are kept.
//
// Parameters:
//   - key: hash seed; filters built with different keys are independent
//   - p: remainder width, 1..56, usually close to log2(m)
//   - m: inverse false positive rate, must be positive
//   - items: items to add, may be empty
//
// Returns:
//   - *Filter: the filter
//   - error: errs.ErrInvalidRemainderWidth, errs.ErrInvalidFilterRange if m is zero or N*M overflows
func New(key uint64, p int, m uint64, items [][]byte) (*Filter, error) {
	w, err := bitstream.NewWidth(p)
	if err != nil {
		return nil, err
	}

	f, err := hashRange(len(items), m)
	if err != nil {
		return nil, err
	}

	values, cleanup := pool.GetUint64Slice(len(items))
	defer cleanup()

	for i, item := range items {
		values[i] = toRange(key, item, f)
	}
	slices.Sort(values)

	enc, err := blob.NewSetEncoder(
		blob.WithRemainderBits(p),
		blob.WithCapacity(golombCapacity(values, w)),
	)
	if err != nil {
		return nil, err
	}

	set, err := enc.Encode(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	return &Filter{key: key, m: m, set: set}, nil
}

// FromBlob restores a filter from a decoded set blob.
// key and m are not part of the blob and must match the values used by New.
func FromBlob(key uint64, m uint64, set blob.SetBlob) (*Filter, error) {
	if set.Encoding() != format.TypeGolombRice {
		return nil, fmt.Errorf("%w: filter needs %s, blob holds %s", errs.ErrInvalidEncoding, format.TypeGolombRice, set.Encoding())
	}

	if _, err := hashRange(set.Count(), m); err != nil {
		return nil, err
	}

	return &Filter{key: key, m: m, set: set}, nil
}

// FromPayload restores a filter from a bare Golomb-Rice payload of n items.
func FromPayload(key uint64, p int, m uint64, n int, payload []byte) (*Filter, error) {
	set, err := blob.WrapPayload(p, n, payload)
	if err != nil {
		return nil, err
	}

	return FromBlob(key, m, set)
}

// Match reports whether item may be in the set. False positives occur with
// probability about 1/M; false negatives never occur.
func (f *Filter) Match(item []byte) bool {
	if f.N() == 0 {
		return false
	}

	return f.set.Contains(toRange(f.key, item, f.rangeSize()))
}

// MatchAny reports whether any of items may be in the set.
//
// The items are hashed and sorted first, so the whole query costs a single pass
// over the encoded set.
func (f *Filter) MatchAny(items [][]byte) bool {
	if f.N() == 0 || len(items) == 0 {
		return false
	}

	size := f.rangeSize()
	targets, cleanup := pool.GetUint64Slice(len(items))
	defer cleanup()

	for i, item := range items {
		targets[i] = toRange(f.key, item, size)
	}
	slices.Sort(targets)

	return f.set.ContainsAny(targets)
}

// N returns the number of items in the filter.
func (f *Filter) N() int {
	return f.set.Count()
}

// P returns the remainder width.
func (f *Filter) P() int {
	return f.set.RemainderBits()
}

// M returns the inverse false positive rate.
func (f *Filter) M() uint64 {
	return f.m
}

// Key returns the hash seed.
func (f *Filter) Key() uint64 {
	return f.key
}

// Bytes returns the bare Golomb-Rice payload, without count or parameters.
func (f *Filter) Bytes() []byte {
	return f.set.Payload()
}

// Blob returns the filter as a self-describing set blob.
func (f *Filter) Blob() blob.SetBlob {
	return f.set
}

func (f *Filter) rangeSize() uint64 {
	return uint64(f.N()) * f.m //nolint:gosec // G115: checked by hashRange on construction
}

// hashRange returns N*M, the size of the range items are mapped into.
func hashRange(n int, m uint64) (uint64, error) {
	if m == 0 {
		return 0, fmt.Errorf("%w: m must be positive", errs.ErrInvalidFilterRange)
	}

	hi, lo := bits.Mul64(uint64(n), m) //nolint:gosec // G115: item counts are non-negative
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d items times %d overflows 64 bits", errs.ErrInvalidFilterRange, n, m)
	}

	return lo, nil
}

// toRange maps the keyed hash of item uniformly into [0, size) with the high
// half of a 64x64-bit product instead of a modulo.
func toRange(key uint64, item []byte, size uint64) uint64 {
	hi, _ := bits.Mul64(hash.Keyed(key, item), size)
	return hi
}

// golombCapacity returns the encoder capacity for sorted values: the exact
// stream length plus the encoder safety margin, and never less than the default.
func golombCapacity(sorted []uint64, w bitstream.Width) int {
	var total, prev uint64
	for _, v := range sorted {
		total += bitstream.GolombBits(v-prev, w)
		prev = v
	}

	return max(int(bitstream.BytesForBits(total))+encoding.SafetyMargin, encoding.DefaultCapacity) //nolint:gosec // G115: stream length fits int
}
