package bitvec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func naiveCountToN(bits []int, n int64) int64 {
	if n == 0 {
		return 0
	}
	var total int64
	for i, v := range bits {
		total += int64(v)
		if total == n {
			return int64(i + 1)
		}
	}
	return NotFound
}

func naiveFindLast(bits []int, bit int) int64 {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == bit {
			return int64(i)
		}
	}
	return NotFound
}

func naiveFindFirst(bits []int, bit int) int64 {
	for i, v := range bits {
		if v == bit {
			return int64(i)
		}
	}
	return NotFound
}

func TestScenario_BigEndianTenBits(t *testing.T) {
	// bits [1,1,0,1,0,0,0,0,1,1]; padding bits 10..15 are physically set
	b, err := FromBytes([]byte{0b11010000, 0b11111111}, 10, BigEndian)
	require.NoError(t, err)

	assert.Equal(t, int64(5), CountBits(b))
	assert.Equal(t, []byte{0b11010000, 0b11000000}, b.Bytes())

	i, err := CountToN(b, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), i)

	assert.Equal(t, int64(9), FindLast(b, 1))
	assert.Equal(t, int64(7), FindLast(b, 0))
	assert.Equal(t, int64(0), FindFirst(b, 1))
	assert.Equal(t, int64(2), FindFirst(b, 0))
}

func TestCountToN_Edges(t *testing.T) {
	b := mustParse(t, "0010010000", LittleEndian)

	i, err := CountToN(b, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), i)

	i, err = CountToN(b, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	i, err = CountToN(b, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), i)

	_, err = CountToN(b, 3)
	var ce *CountExceedsTotalError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, int64(2), ce.Total)
	assert.ErrorIs(t, err, ErrCountExceedsTotal)

	_, err = CountToN(b, 11)
	assert.ErrorIs(t, err, ErrCountExceedsTotal)

	_, err = CountToN(b, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = CountToN(nil, 1)
	assert.ErrorIs(t, err, ErrNilBuffer)

	empty, err := New(0)
	require.NoError(t, err)
	i, err = CountToN(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), i)
}

func TestCountToN_Properties(t *testing.T) {
	rng := testutil.NewRNG(2024)
	searchers := []*Searcher{
		NewSearcher(),
		NewSearcher(WithSearchBlockBits(64)),
		NewSearcher(WithSearchBlockBits(8)),
	}

	for _, n := range testutil.Lengths(17000) {
		for _, density := range []float64{0, 0.01, 0.5, 1} {
			bits := rng.Bits(n, density)
			for _, e := range []Endianness{LittleEndian, BigEndian} {
				b := mustFromBits(t, bits, e)
				dirty(b)
				total := CountBits(b)

				for _, s := range searchers {
					got, err := s.CountToN(b, 0)
					require.NoError(t, err)
					assert.Equal(t, int64(0), got)

					_, err = s.CountToN(b, total+1)
					assert.ErrorIs(t, err, ErrCountExceedsTotal, "n=%d", n)

					for _, k := range []int64{1, total / 3, total / 2, total - 1, total} {
						if k <= 0 {
							continue
						}
						got, err := s.CountToN(b, k)
						require.NoError(t, err)
						assert.Equal(t, naiveCountToN(bits, k), got, "len=%d k=%d block=%d", n, k, s.BlockBits())

						// minimality: b[0:got] holds k bits and b[0:got-1] holds k-1
						c, err := CountRange(b, 0, got)
						require.NoError(t, err)
						assert.Equal(t, k, c)
						assert.Equal(t, 1, b.getBit(got-1))
					}
				}
			}
		}
	}
}

func TestWithSearchBlockBits(t *testing.T) {
	assert.Equal(t, int64(DefaultSearchBlockBits), NewSearcher().BlockBits())
	assert.Equal(t, int64(64), NewSearcher(WithSearchBlockBits(70)).BlockBits())
	assert.Equal(t, int64(DefaultSearchBlockBits), NewSearcher(WithSearchBlockBits(3)).BlockBits())
}

func TestFindLast(t *testing.T) {
	tests := []struct {
		bits string
		bit  int
		want int64
	}{
		{"", 1, NotFound},
		{"", 0, NotFound},
		{"0", 1, NotFound},
		{"0", 0, 0},
		{"1000000000000000000", 1, 0},
		{"0111111111111111111", 0, 0},
		{"00000000000000001", 1, 16},
		{"0000000010000000", 1, 8},
		{"11111111", 0, NotFound},
		{"110", 7, 1}, // any non-zero value searches for 1
	}

	for _, tt := range tests {
		for _, e := range []Endianness{LittleEndian, BigEndian} {
			b := mustParse(t, tt.bits, e)
			dirty(b)
			assert.Equal(t, tt.want, FindLast(b, tt.bit), "%q bit=%d %s", tt.bits, tt.bit, e)
		}
	}
	assert.Equal(t, NotFound, FindLast(nil, 1))
}

func TestFindLast_Properties(t *testing.T) {
	rng := testutil.NewRNG(77)
	for _, n := range testutil.Lengths(9000) {
		for _, bits := range [][]int{rng.Bits(n, 0.001), rng.Runs(n, 300), rng.Bits(n, 0.999)} {
			for _, e := range []Endianness{LittleEndian, BigEndian} {
				b := mustFromBits(t, bits, e)
				dirty(b)

				for _, bit := range []int{0, 1} {
					want := naiveFindLast(bits, bit)
					assert.Equal(t, want, FindLast(b, bit), "len=%d bit=%d", n, bit)
					assert.Equal(t, naiveFindFirst(bits, bit), FindFirst(b, bit), "len=%d bit=%d", n, bit)
				}

				last := FindLast(b, 1)
				if CountBits(b) == 0 {
					assert.Equal(t, NotFound, last)
					continue
				}
				require.NotEqual(t, NotFound, last)
				assert.True(t, b.Test(last))
				c, err := CountRange(b, last+1, b.Len())
				require.NoError(t, err)
				assert.Zero(t, c)
			}
		}
	}
}

func BenchmarkCountToN(b *testing.B) {
	rng := testutil.NewRNG(1)
	buf, err := FromBits(rng.Bits(1<<20, 0.5), BigEndian)
	require.NoError(b, err)
	n := CountBits(buf) - 1

	for _, block := range []int64{512, 8192, 65536} {
		s := NewSearcher(WithSearchBlockBits(block))
		b.Run("block="+strconv.FormatInt(block, 10), func(b *testing.B) {
			for b.Loop() {
				_, _ = s.CountToN(buf, n)
			}
		})
	}
}

func BenchmarkFindLast(b *testing.B) {
	buf, err := New(1<<20, WithEndianness(BigEndian))
	require.NoError(b, err)
	require.NoError(b, buf.Set(3, 1))

	for b.Loop() {
		_ = FindLast(buf, 1)
	}
}
