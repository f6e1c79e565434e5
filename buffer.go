package bitvec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/bitvec/internal/conv"
)

// Buffer is a resizable sequence of bits packed eight to a byte.
//
// Bits at indices [Len(), BytesUsed()*8) are padding. Element writes only touch
// one bit, so padding may hold stale data between mutations; every operation
// that reads whole bytes calls NormalizeTail first.
//
// A Buffer is not safe for concurrent use. Distinct buffers may be used from
// different goroutines without coordination.
type Buffer struct {
	data   []byte
	nbits  int64
	endian Endianness
}

// New creates a buffer of nbits zero bits.
func New(nbits int64, opts ...Option) (*Buffer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.endian.Valid() {
		return nil, &InvalidEndiannessError{Value: o.endian.String()}
	}
	if nbits < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidLength, nbits)
	}

	used, err := conv.Int64ToInt(BytesForBits(nbits))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	capacity := used
	if o.capacityBits > nbits {
		if capacity, err = conv.Int64ToInt(BytesForBits(o.capacityBits)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLength, err)
		}
	}

	return &Buffer{
		data:   make([]byte, used, capacity),
		nbits:  nbits,
		endian: o.endian,
	}, nil
}

// Zeros returns a buffer of n zero bits.
func Zeros(n int64, e Endianness) (*Buffer, error) {
	return New(n, WithEndianness(e))
}

// Ones returns a buffer of n set bits.
func Ones(n int64, e Endianness) (*Buffer, error) {
	b, err := New(n, WithEndianness(e))
	if err != nil {
		return nil, err
	}
	b.SetAll(1)
	return b, nil
}

// FromBytes creates a buffer holding the first nbits bits of p.
// The bytes are copied; p is not retained.
func FromBytes(p []byte, nbits int64, e Endianness) (*Buffer, error) {
	if !e.Valid() {
		return nil, &InvalidEndiannessError{Value: e.String()}
	}
	if nbits < 0 || nbits > BitsForBytes(int64(len(p))) {
		return nil, fmt.Errorf("%w: %d bits from %d bytes", ErrInvalidLength, nbits, len(p))
	}

	used := BytesForBits(nbits)
	data := make([]byte, used)
	copy(data, p[:used])

	return &Buffer{data: data, nbits: nbits, endian: e}, nil
}

// FromBits creates a buffer from a slice of 0/1 values.
func FromBits(bits []int, e Endianness) (*Buffer, error) {
	b, err := New(int64(len(bits)), WithEndianness(e))
	if err != nil {
		return nil, err
	}
	for i, v := range bits {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: got %d at index %d", ErrInvalidBit, v, i)
		}
		b.setBit(int64(i), v)
	}
	return b, nil
}

// Parse creates a buffer from a string of '0' and '1' characters.
// Underscores and whitespace are ignored.
func Parse(s string, e Endianness) (*Buffer, error) {
	b, err := New(0, WithEndianness(e), WithCapacity(int64(len(s))))
	if err != nil {
		return nil, err
	}
	for i, r := range s {
		switch r {
		case '0':
			b.appendBit(0)
		case '1':
			b.appendBit(1)
		case '_', ' ', '\t', '\n':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidBit, r, i)
		}
	}
	return b, nil
}

// Len returns the logical number of bits.
func (b *Buffer) Len() int64 {
	return b.nbits
}

// Endianness returns the bit-endianness fixed at construction.
func (b *Buffer) Endianness() Endianness {
	return b.endian
}

// BytesUsed returns the number of bytes holding logical bits.
func (b *Buffer) BytesUsed() int64 {
	return int64(len(b.data))
}

// Cap returns the allocated size in bytes.
func (b *Buffer) Cap() int64 {
	return int64(cap(b.data))
}

// getBit reads bit i without bounds checking against Len.
// The index must already be validated; out-of-range access panics.
//
//go:nosplit
func (b *Buffer) getBit(i int64) int {
	if b.data[i>>3]&BitMask(b.endian, i) != 0 {
		return 1
	}
	return 0
}

// setBit writes bit i without bounds checking against Len.
//
//go:nosplit
func (b *Buffer) setBit(i int64, v int) {
	mask := BitMask(b.endian, i)
	if v != 0 {
		b.data[i>>3] |= mask
	} else {
		b.data[i>>3] &^= mask
	}
}

func (b *Buffer) checkIndex(i int64) error {
	if i < 0 || i >= b.nbits {
		return &IndexOutOfRangeError{Index: i, Length: b.nbits}
	}
	return nil
}

// Get returns the bit at index i as 0 or 1.
func (b *Buffer) Get(i int64) (int, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	return b.getBit(i), nil
}

// Set sets (v != 0) or clears (v == 0) the bit at index i.
// No other bit is modified.
func (b *Buffer) Set(i int64, v int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.setBit(i, v)
	return nil
}

// MustGet is like Get but panics if i is out of range.
func (b *Buffer) MustGet(i int64) int {
	if err := b.checkIndex(i); err != nil {
		panic(err)
	}
	return b.getBit(i)
}

// MustSet is like Set but panics if i is out of range.
func (b *Buffer) MustSet(i int64, v int) {
	if err := b.checkIndex(i); err != nil {
		panic(err)
	}
	b.setBit(i, v)
}

// Test reports whether the bit at index i is set. It panics if i is out of range.
func (b *Buffer) Test(i int64) bool {
	if err := b.checkIndex(i); err != nil {
		panic(err)
	}
	return b.getBit(i) == 1
}

// NormalizeTail clears the padding bits in [Len(), BytesUsed()*8).
// Bits inside [0, Len()) are never touched. It is idempotent.
func (b *Buffer) NormalizeTail() {
	end := BitsForBytes(int64(len(b.data)))
	for i := b.nbits; i < end; i++ {
		b.setBit(i, 0)
	}
}

// SetAll sets every bit to v.
func (b *Buffer) SetAll(v int) {
	fill := byte(0x00)
	if v != 0 {
		fill = 0xFF
	}
	for i := range b.data {
		b.data[i] = fill
	}
	b.NormalizeTail()
}

// Bytes returns a copy of the packed bytes with padding bits cleared.
func (b *Buffer) Bytes() []byte {
	b.NormalizeTail()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data), cap(b.data))
	copy(data, b.data)
	return &Buffer{data: data, nbits: b.nbits, endian: b.endian}
}

// Equal reports whether b and other have the same endianness, length and bits.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.endian != other.endian || b.nbits != other.nbits {
		return false
	}
	b.NormalizeTail()
	other.NormalizeTail()
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// growBytes extends data to n bytes. Bytes past the old length are zeroed,
// including any stale bytes left in spare capacity by a previous truncation.
func (b *Buffer) growBytes(n int) {
	old := len(b.data)
	if n <= old {
		return
	}
	if n > cap(b.data) {
		// amortized doubling
		newCap := max(n, 2*cap(b.data))
		data := make([]byte, n, newCap)
		copy(data, b.data)
		b.data = data
		return
	}
	b.data = b.data[:n]
	for i := old; i < n; i++ {
		b.data[i] = 0
	}
}

// Resize changes the logical length to n bits. New bits read as 0.
func (b *Buffer) Resize(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidLength, n)
	}
	used, err := conv.Int64ToInt(BytesForBits(n))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}

	if n > b.nbits {
		// Padding of the current last byte becomes logical.
		b.NormalizeTail()
		b.growBytes(used)
	} else {
		b.data = b.data[:used]
	}
	b.nbits = n
	return nil
}

// Truncate shortens the buffer to n bits. It fails if n > Len().
func (b *Buffer) Truncate(n int64) error {
	if n > b.nbits {
		return fmt.Errorf("%w: cannot truncate %d bits to %d", ErrInvalidLength, b.nbits, n)
	}
	return b.Resize(n)
}

func (b *Buffer) appendBit(v int) {
	i := b.nbits
	if i&7 == 0 {
		b.growBytes(len(b.data) + 1)
	}
	b.nbits++
	b.setBit(i, v)
}

// Append adds one bit at the end.
func (b *Buffer) Append(v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBit, v)
	}
	b.appendBit(v)
	return nil
}

// Extend appends all bits of other. Buffers of different endianness are
// copied bit by bit; byte-aligned buffers of equal endianness are copied
// byte-wise.
func (b *Buffer) Extend(other *Buffer) error {
	if other == nil {
		return ErrNilBuffer
	}
	if other == b {
		other = b.Clone()
	}
	n := other.nbits
	if b.nbits&7 == 0 && b.endian == other.endian {
		other.NormalizeTail()
		b.data = append(b.data, other.data...)
		b.nbits += n
		return nil
	}

	start := b.nbits
	if err := b.Resize(start + n); err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		b.setBit(start+i, other.getBit(i))
	}
	return nil
}

// String returns the bits as a string of '0' and '1'.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(int(b.nbits))
	for i := int64(0); i < b.nbits; i++ {
		sb.WriteByte(byte('0' + b.getBit(i)))
	}
	return sb.String()
}

// raw returns the normalized backing bytes without copying.
// Callers must not retain or modify the slice.
func (b *Buffer) raw() []byte {
	b.NormalizeTail()
	return b.data
}
