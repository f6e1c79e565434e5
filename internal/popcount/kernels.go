package popcount

import (
	"encoding/binary"
	"math/bits"
)

// Bytes returns the number of set bits in p.
func Bytes(p []byte) int64 {
	if active == WordKernel {
		return bytesWord(p)
	}
	return bytesTable(p)
}

// And returns the number of set bits in a[i] & b[i]. len(b) must be >= len(a).
func And(a, b []byte) int64 {
	if active == WordKernel {
		return andWord(a, b)
	}
	return andTable(a, b)
}

// Or returns the number of set bits in a[i] | b[i]. len(b) must be >= len(a).
func Or(a, b []byte) int64 {
	if active == WordKernel {
		return orWord(a, b)
	}
	return orTable(a, b)
}

// Xor returns the number of set bits in a[i] ^ b[i]. len(b) must be >= len(a).
func Xor(a, b []byte) int64 {
	if active == WordKernel {
		return xorWord(a, b)
	}
	return xorTable(a, b)
}

// Subset reports whether every bit set in a is also set in b.
// It stops at the first violating byte. len(b) must be >= len(a).
func Subset(a, b []byte) bool {
	if active == WordKernel {
		return subsetWord(a, b)
	}
	return subsetTable(a, b)
}

func bytesTable(p []byte) int64 {
	var n int64
	for _, c := range p {
		n += int64(Table[c])
	}
	return n
}

func andTable(a, b []byte) int64 {
	if len(a) == 0 {
		return 0
	}
	_ = b[len(a)-1] // BCE
	var n int64
	for i := range a {
		n += int64(Table[a[i]&b[i]])
	}
	return n
}

func orTable(a, b []byte) int64 {
	if len(a) == 0 {
		return 0
	}
	_ = b[len(a)-1] // BCE
	var n int64
	for i := range a {
		n += int64(Table[a[i]|b[i]])
	}
	return n
}

func xorTable(a, b []byte) int64 {
	if len(a) == 0 {
		return 0
	}
	_ = b[len(a)-1] // BCE
	var n int64
	for i := range a {
		n += int64(Table[a[i]^b[i]])
	}
	return n
}

func subsetTable(a, b []byte) bool {
	if len(a) == 0 {
		return true
	}
	_ = b[len(a)-1] // BCE
	for i := range a {
		if a[i]&b[i] != a[i] {
			return false
		}
	}
	return true
}

// The word kernels consume whole 8-byte words and hand the remainder to the
// table kernels. Byte order inside a word does not affect any result.

func bytesWord(p []byte) int64 {
	var n int64
	for len(p) >= 8 {
		n += int64(bits.OnesCount64(binary.LittleEndian.Uint64(p)))
		p = p[8:]
	}
	return n + bytesTable(p)
}

func andWord(a, b []byte) int64 {
	var n int64
	for len(a) >= 8 {
		n += int64(bits.OnesCount64(binary.LittleEndian.Uint64(a) & binary.LittleEndian.Uint64(b)))
		a, b = a[8:], b[8:]
	}
	return n + andTable(a, b)
}

func orWord(a, b []byte) int64 {
	var n int64
	for len(a) >= 8 {
		n += int64(bits.OnesCount64(binary.LittleEndian.Uint64(a) | binary.LittleEndian.Uint64(b)))
		a, b = a[8:], b[8:]
	}
	return n + orTable(a, b)
}

func xorWord(a, b []byte) int64 {
	var n int64
	for len(a) >= 8 {
		n += int64(bits.OnesCount64(binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b)))
		a, b = a[8:], b[8:]
	}
	return n + xorTable(a, b)
}

func subsetWord(a, b []byte) bool {
	for len(a) >= 8 {
		x := binary.LittleEndian.Uint64(a)
		if x&binary.LittleEndian.Uint64(b) != x {
			return false
		}
		a, b = a[8:], b[8:]
	}
	return subsetTable(a, b)
}
