package bitvec

import "github.com/hupe1980/bitvec/internal/popcount"

// CountAnd returns the number of set bits in a AND b without building the
// intermediate buffer. Both buffers must have equal length and endianness.
func CountAnd(a, b *Buffer) (int64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return popcount.And(a.raw(), b.raw()), nil
}

// CountOr returns the number of set bits in a OR b.
func CountOr(a, b *Buffer) (int64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return popcount.Or(a.raw(), b.raw()), nil
}

// CountXor returns the number of set bits in a XOR b, the Hamming distance.
func CountXor(a, b *Buffer) (int64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return popcount.Xor(a.raw(), b.raw()), nil
}

// IsSubset reports whether every bit set in a is also set in b.
//
// It is equivalent to CountAnd(a, b) == CountBits(a) but stops at the first
// violating byte and allocates nothing.
func IsSubset(a, b *Buffer) (bool, error) {
	if err := checkPair(a, b); err != nil {
		return false, err
	}
	return popcount.Subset(a.raw(), b.raw()), nil
}
