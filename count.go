package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/popcount"
)

// CountBits returns the number of set bits in b.
// Padding bits are cleared before counting.
func CountBits(b *Buffer) int64 {
	if b == nil {
		return 0
	}
	return popcount.Bytes(b.raw())
}

// Count returns the number of set bits. It is shorthand for CountBits(b).
func (b *Buffer) Count() int64 {
	return CountBits(b)
}

// CountRange returns the number of set bits in [start, stop).
func CountRange(b *Buffer, start, stop int64) (int64, error) {
	if b == nil {
		return 0, ErrNilBuffer
	}
	if start < 0 || stop > b.nbits || start > stop {
		return 0, fmt.Errorf("%w: range [%d, %d) not within [0, %d)", ErrIndexOutOfRange, start, stop, b.nbits)
	}

	var n int64
	// leading partial byte
	for start < stop && start&7 != 0 {
		n += int64(b.getBit(start))
		start++
	}
	// whole bytes
	if full := (stop - start) >> 3; full > 0 {
		first := start >> 3
		n += popcount.Bytes(b.data[first : first+full])
		start += full << 3
	}
	// trailing bits
	for ; start < stop; start++ {
		n += int64(b.getBit(start))
	}
	return n, nil
}
