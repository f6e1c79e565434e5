package bitvec

import "github.com/hupe1980/bitvec/internal/popcount"

// NotFound is returned by FindLast and FindFirst when the bit value does not occur.
const NotFound int64 = -1

// DefaultSearchBlockBits is the coarse block size of CountToN.
// It is a tuning constant, not a semantic requirement.
const DefaultSearchBlockBits = 8192

// Searcher runs positional searches with a configurable coarse block size.
// The zero value is not usable; use NewSearcher.
type Searcher struct {
	blockBits int64
}

// SearchOption configures a Searcher.
type SearchOption func(*Searcher)

// WithSearchBlockBits sets the size of the coarse blocks skipped by CountToN.
// The value is rounded down to a multiple of 8; values below 8 select the default.
func WithSearchBlockBits(bits int64) SearchOption {
	return func(s *Searcher) {
		bits &^= 7
		if bits < 8 {
			bits = DefaultSearchBlockBits
		}
		s.blockBits = bits
	}
}

// NewSearcher creates a Searcher.
func NewSearcher(opts ...SearchOption) *Searcher {
	s := &Searcher{blockBits: DefaultSearchBlockBits}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BlockBits returns the coarse block size in bits.
func (s *Searcher) BlockBits() int64 {
	return s.blockBits
}

var defaultSearcher = NewSearcher()

// CountToN returns the smallest index i such that b[0:i] holds exactly n set
// bits, i.e. the index just past the n-th set bit. CountToN(b, 0) is 0.
// When n exceeds the number of set bits the error wraps ErrCountExceedsTotal.
func CountToN(b *Buffer, n int64) (int64, error) {
	return defaultSearcher.CountToN(b, n)
}

// CountToN is the Searcher form of the package-level CountToN.
func (s *Searcher) CountToN(b *Buffer, n int64) (int64, error) {
	if b == nil {
		return 0, ErrNilBuffer
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	if n == 0 {
		return 0, nil
	}
	if n > b.nbits {
		return 0, &CountExceedsTotalError{N: n, Total: CountBits(b)}
	}

	var (
		i     int64 // bit index, byte aligned until the bit phase
		total int64 // set bits in [0, i)
	)

	// Coarse blocks. Every byte read lies strictly below Len(), so padding
	// never contributes.
	blockBytes := s.blockBits >> 3
	for i+s.blockBits < b.nbits {
		start := i >> 3
		if start+blockBytes > int64(len(b.data)) {
			panic("bitvec: search block past end of buffer")
		}
		m := popcount.Bytes(b.data[start : start+blockBytes])
		if total+m >= n {
			break
		}
		total += m
		i += s.blockBits
	}

	// Single bytes.
	for i+8 < b.nbits {
		m := int64(popcount.Table[b.data[i>>3]])
		if total+m >= n {
			break
		}
		total += m
		i += 8
	}

	// Single bits.
	for total < n && i < b.nbits {
		total += int64(b.getBit(i))
		i++
	}
	if total < n {
		return 0, &CountExceedsTotalError{N: n, Total: total}
	}
	return i, nil
}

func skipByte(bit int) byte {
	if bit != 0 {
		return 0x00
	}
	return 0xFF
}

func normBit(bit int) int {
	if bit != 0 {
		return 1
	}
	return 0
}

// FindLast returns the highest index holding bit (any non-zero value means 1),
// or NotFound.
//
// Runs of bytes that cannot contain the value (0x00 when searching for 1,
// 0xFF when searching for 0) are skipped whole. Padding bits are never read.
func FindLast(b *Buffer, bit int) int64 {
	if b == nil || b.nbits == 0 {
		return NotFound
	}
	bit = normBit(bit)

	// partial last byte
	full := b.nbits >> 3
	i := b.nbits - 1
	for ; i >= full<<3; i-- {
		if b.getBit(i) == bit {
			return i
		}
	}
	if i < 0 {
		return NotFound
	}

	skip := skipByte(bit)
	j := i >> 3
	for ; j >= 0; j-- {
		if b.data[j] != skip {
			break
		}
	}
	if j < 0 {
		return NotFound
	}

	for i = j<<3 + 7; i >= j<<3; i-- {
		if b.getBit(i) == bit {
			return i
		}
	}
	panic("bitvec: differing byte without matching bit")
}

// FindFirst returns the lowest index holding bit, or NotFound.
// It is the forward counterpart of FindLast.
func FindFirst(b *Buffer, bit int) int64 {
	if b == nil || b.nbits == 0 {
		return NotFound
	}
	bit = normBit(bit)

	skip := skipByte(bit)
	full := b.nbits >> 3
	j := int64(0)
	for ; j < full; j++ {
		if b.data[j] != skip {
			break
		}
	}

	for i := j << 3; i < b.nbits; i++ {
		if b.getBit(i) == bit {
			return i
		}
	}
	return NotFound
}
