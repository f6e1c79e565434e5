package interop

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec"
)

// setBits calls fn with the index of every set bit of b in ascending order.
// Zero bytes are skipped whole.
func setBits(b *bitvec.Buffer, fn func(i int64)) {
	e := b.Endianness()
	for j, c := range b.Bytes() {
		if c == 0 {
			continue
		}
		base := int64(j) << 3
		for k := range int64(8) {
			if c&bitvec.BitMask(e, k) != 0 {
				fn(base + k)
			}
		}
	}
}

// ToRoaring returns a roaring bitmap holding the indices of the set bits of b.
// Roaring bitmaps address 32 bits, so b may hold at most 1<<32 bits.
func ToRoaring(b *bitvec.Buffer) (*roaring.Bitmap, error) {
	if b == nil {
		return nil, bitvec.ErrNilBuffer
	}
	if b.Len() > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: %d bits exceed the roaring address space", bitvec.ErrOverflow, b.Len())
	}

	vals := make([]uint32, 0, bitvec.CountBits(b))
	setBits(b, func(i int64) {
		vals = append(vals, uint32(i))
	})

	rb := roaring.New()
	rb.AddMany(vals)
	return rb, nil
}

// FromRoaring returns a buffer of n bits with endianness e in which exactly the
// members of rb are set. Members >= n are rejected.
func FromRoaring(rb *roaring.Bitmap, n int64, e bitvec.Endianness) (*bitvec.Buffer, error) {
	if rb == nil {
		return nil, fmt.Errorf("interop: nil roaring bitmap")
	}
	if !rb.IsEmpty() && int64(rb.Maximum()) >= n {
		return nil, &bitvec.IndexOutOfRangeError{Index: int64(rb.Maximum()), Length: n}
	}

	b, err := bitvec.New(n, bitvec.WithEndianness(e))
	if err != nil {
		return nil, err
	}
	it := rb.Iterator()
	for it.HasNext() {
		if err := b.Set(int64(it.Next()), 1); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ToBitSet returns a bitset of length b.Len() with the same bits set.
func ToBitSet(b *bitvec.Buffer) (*bitset.BitSet, error) {
	if b == nil {
		return nil, bitvec.ErrNilBuffer
	}
	bs := bitset.New(uint(b.Len()))
	setBits(b, func(i int64) {
		bs.Set(uint(i))
	})
	return bs, nil
}

// FromBitSet returns a buffer of bs.Len() bits with endianness e.
func FromBitSet(bs *bitset.BitSet, e bitvec.Endianness) (*bitvec.Buffer, error) {
	if bs == nil {
		return nil, fmt.Errorf("interop: nil bitset")
	}
	if uint64(bs.Len()) > math.MaxInt64 {
		return nil, fmt.Errorf("%w: bitset length %d", bitvec.ErrOverflow, bs.Len())
	}

	b, err := bitvec.New(int64(bs.Len()), bitvec.WithEndianness(e))
	if err != nil {
		return nil, err
	}
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if err := b.Set(int64(i), 1); err != nil {
			return nil, err
		}
	}
	return b, nil
}
