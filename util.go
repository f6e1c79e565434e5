package bitvec

import (
	"encoding/hex"
	"fmt"
	"math/bits"
)

// StripMode selects which end(s) Strip trims.
type StripMode uint8

const (
	// StripRight removes trailing zeros.
	StripRight StripMode = iota
	// StripLeft removes leading zeros.
	StripLeft
	// StripBoth removes leading and trailing zeros.
	StripBoth
)

// slice returns a new buffer holding bits [start, stop) of b.
func (b *Buffer) slice(start, stop int64) *Buffer {
	out := &Buffer{endian: b.endian}
	n := stop - start
	if n <= 0 {
		return out
	}
	out.data = make([]byte, BytesForBits(n))
	out.nbits = n
	if start&7 == 0 {
		copy(out.data, b.data[start>>3:])
		out.NormalizeTail()
		return out
	}
	for i := int64(0); i < n; i++ {
		out.setBit(i, b.getBit(start+i))
	}
	return out
}

// Strip returns a copy of b with zeros removed from the chosen end(s).
// A buffer without set bits strips to an empty buffer.
func Strip(b *Buffer, mode StripMode) (*Buffer, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	if mode > StripBoth {
		return nil, fmt.Errorf("invalid strip mode %d", mode)
	}

	first := int64(0)
	if mode == StripLeft || mode == StripBoth {
		first = FindFirst(b, 1)
		if first == NotFound {
			return &Buffer{endian: b.endian}, nil
		}
	}
	last := b.nbits - 1
	if mode == StripRight || mode == StripBoth {
		last = FindLast(b, 1)
		if last == NotFound {
			return &Buffer{endian: b.endian}, nil
		}
	}
	return b.slice(first, last+1), nil
}

// ToHex returns the hexadecimal representation of b. Len() must be a multiple
// of 4. For big-endian buffers the first digit holds bits 0-3 with bit 0 as
// its most significant bit; for little-endian buffers bit 0 is the least
// significant bit of the first digit.
func ToHex(b *Buffer) (string, error) {
	if b == nil {
		return "", ErrNilBuffer
	}
	if b.nbits%4 != 0 {
		return "", fmt.Errorf("%w: length %d not a multiple of 4", ErrInvalidLength, b.nbits)
	}

	p := b.Bytes()
	if b.endian == LittleEndian {
		Translate(p, &nibbleSwap)
	}
	s := hex.EncodeToString(p)
	if b.nbits%8 != 0 {
		s = s[:len(s)-1]
	}
	return s, nil
}

// FromHex parses a string of hexadecimal digits into a buffer of 4*len(s) bits.
func FromHex(s string, e Endianness) (*Buffer, error) {
	if !e.Valid() {
		return nil, &InvalidEndiannessError{Value: e.String()}
	}
	odd := len(s)%2 != 0
	if odd {
		s += "0"
	}
	p, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	if e == LittleEndian {
		Translate(p, &nibbleSwap)
	}

	nbits := BitsForBytes(int64(len(p)))
	if odd {
		nbits -= 4
	}
	return &Buffer{data: p, nbits: nbits, endian: e}, nil
}

// ToUint64 interprets b as an unsigned integer. For big-endian buffers bit 0
// is the most significant bit, for little-endian buffers the least
// significant. Len() must be in [1, 64].
func ToUint64(b *Buffer) (uint64, error) {
	if b == nil {
		return 0, ErrNilBuffer
	}
	if b.nbits == 0 || b.nbits > 64 {
		return 0, fmt.Errorf("%w: length %d not in [1, 64]", ErrInvalidLength, b.nbits)
	}

	var v uint64
	for i := int64(0); i < b.nbits; i++ {
		bit := uint64(b.getBit(i))
		if b.endian == BigEndian {
			v = v<<1 | bit
		} else {
			v |= bit << uint(i)
		}
	}
	return v, nil
}

// FromUint64 converts v into a buffer of the given length. A length of 0
// selects the shortest buffer that holds v (at least one bit).
func FromUint64(v uint64, length int64, e Endianness) (*Buffer, error) {
	need := int64(max(bits.Len64(v), 1))
	if length == 0 {
		length = need
	}
	if length < 0 || length > 64 {
		return nil, fmt.Errorf("%w: length %d not in [1, 64]", ErrInvalidLength, length)
	}
	if need > length {
		return nil, fmt.Errorf("%w: %d bit integer in %d bits", ErrOverflow, need, length)
	}

	b, err := New(length, WithEndianness(e))
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < length; i++ {
		shift := uint(i)
		if e == BigEndian {
			shift = uint(length - 1 - i)
		}
		b.setBit(i, int(v>>shift&1))
	}
	return b, nil
}
