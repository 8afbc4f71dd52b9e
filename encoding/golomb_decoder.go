package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/stream64/bitstream"
	"github.com/arloliu/stream64/errs"
)

// GolombDecoder decodes Golomb-Coded Set streams with a fixed remainder width.
//
// All reads are bounded by the logical stream length: a truncated or malformed
// stream makes the iterators stop early and the lookups report false. The
// decoder is stateless and safe for concurrent use.
type GolombDecoder struct {
	p int
}

var _ StreamDecoder = GolombDecoder{}

// NewGolombDecoder creates a decoder for streams encoded with remainder width p.
func NewGolombDecoder(p int) (GolombDecoder, error) {
	if _, err := bitstream.NewWidth(p); err != nil {
		return GolombDecoder{}, err
	}

	return GolombDecoder{p: p}, nil
}

// RemainderBits returns the remainder width p.
func (d GolombDecoder) RemainderBits() int {
	return d.p
}

// All yields the set members, the running sums of the decoded differences.
func (d GolombDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return d.AllSource(bitstream.NewSource(data), count)
}

// AllSource is All over an already padded source, avoiding the copy.
func (d GolombDecoder) AllSource(src bitstream.Source, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		var sum uint64
		for delta := range d.deltas(src, count) {
			sum += delta
			if !yield(sum) {
				return
			}
		}
	}
}

// Deltas yields the raw differences without the running sum.
func (d GolombDecoder) Deltas(data []byte, count int) iter.Seq[uint64] {
	return d.deltas(bitstream.NewSource(data), count)
}

func (d GolombDecoder) deltas(src bitstream.Source, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		c := bitstream.NewCursor()
		for range count {
			delta, ok := nextGolomb(src, d.p, &c)
			if !ok || !yield(delta) {
				return
			}
		}
	}
}

// At returns the member at index. Golomb-Rice items have variable length, so
// this walks the stream from the start.
func (d GolombDecoder) At(data []byte, index int, count int) (uint64, bool) {
	return d.AtSource(bitstream.NewSource(data), index, count)
}

// AtSource is At over an already padded source.
func (d GolombDecoder) AtSource(src bitstream.Source, index int, count int) (uint64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.AllSource(src, index+1) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}

// DecodeAll decodes exactly count members.
//
// Returns errs.ErrTruncatedStream if the stream ends before count members were read.
func (d GolombDecoder) DecodeAll(data []byte, count int) ([]uint64, error) {
	if count <= 0 {
		return []uint64{}, nil
	}

	out := make([]uint64, 0, count)
	for v := range d.All(data, count) {
		out = append(out, v)
	}

	if len(out) < count {
		return out, fmt.Errorf("%w: decoded %d of %d items", errs.ErrTruncatedStream, len(out), count)
	}

	return out, nil
}

// Contains reports whether target is a member of the set.
//
// The walk stops as soon as the running sum reaches or passes target.
func (d GolombDecoder) Contains(data []byte, count int, target uint64) bool {
	return d.ContainsSource(bitstream.NewSource(data), count, target)
}

// ContainsSource is Contains over an already padded source.
func (d GolombDecoder) ContainsSource(src bitstream.Source, count int, target uint64) bool {
	for v := range d.AllSource(src, count) {
		if v >= target {
			return v == target
		}
	}

	return false
}

// ContainsAny reports whether any of targets is a member of the set.
//
// targets must be sorted in non-decreasing order; the stream and the targets
// are walked together once.
func (d GolombDecoder) ContainsAny(data []byte, count int, targets []uint64) bool {
	return d.ContainsAnySource(bitstream.NewSource(data), count, targets)
}

// ContainsAnySource is ContainsAny over an already padded source.
func (d GolombDecoder) ContainsAnySource(src bitstream.Source, count int, targets []uint64) bool {
	if len(targets) == 0 {
		return false
	}

	j := 0
	for v := range d.AllSource(src, count) {
		for targets[j] < v {
			j++
			if j == len(targets) {
				return false
			}
		}
		if targets[j] == v {
			return true
		}
	}

	return false
}
