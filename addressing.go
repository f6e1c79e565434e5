package bitvec

// ByteIndex returns the offset of the byte holding bit i.
// The byte position does not depend on endianness.
//
//go:nosplit
func ByteIndex(i int64) int64 {
	return i >> 3
}

// BitMask returns the mask selecting bit i inside its byte.
// This is the only place where endianness affects addressing.
//
//go:nosplit
func BitMask(e Endianness, i int64) byte {
	if e == LittleEndian {
		return 1 << uint(i&7)
	}
	return 1 << uint(7-i&7)
}

// BytesForBits returns the number of bytes needed to store n bits.
// It panics if n is negative.
func BytesForBits(n int64) int64 {
	if n < 0 {
		panic("bitvec: negative bit count")
	}
	if n == 0 {
		return 0
	}
	return (n-1)/8 + 1
}

// BitsForBytes returns the number of bits held by n bytes.
func BitsForBytes(n int64) int64 {
	return n << 3
}
