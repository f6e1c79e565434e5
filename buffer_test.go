package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func mustParse(t testing.TB, s string, e Endianness) *Buffer {
	t.Helper()
	b, err := Parse(s, e)
	require.NoError(t, err)
	return b
}

func mustFromBits(t testing.TB, bits []int, e Endianness) *Buffer {
	t.Helper()
	b, err := FromBits(bits, e)
	require.NoError(t, err)
	return b
}

// dirty sets every padding bit so that missing normalization shows up.
func dirty(b *Buffer) {
	end := BitsForBytes(int64(len(b.data)))
	for i := b.nbits; i < end; i++ {
		b.setBit(i, 1)
	}
}

func TestBitMask(t *testing.T) {
	tests := []struct {
		e    Endianness
		i    int64
		want byte
	}{
		{LittleEndian, 0, 0x01},
		{LittleEndian, 7, 0x80},
		{LittleEndian, 10, 0x04},
		{BigEndian, 0, 0x80},
		{BigEndian, 7, 0x01},
		{BigEndian, 10, 0x20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitMask(tt.e, tt.i), "%s bit %d", tt.e, tt.i)
	}
	assert.Equal(t, int64(1), ByteIndex(15))
	assert.Equal(t, int64(2), ByteIndex(16))
}

func TestBytesForBits(t *testing.T) {
	tests := map[int64]int64{
		0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 16: 2, 17: 3,
		1 << 40:       1 << 37,
		1<<40 + 1:     1<<37 + 1,
		(1 << 62) - 1: 1 << 59,
	}
	for n, want := range tests {
		assert.Equal(t, want, BytesForBits(n), "n=%d", n)
	}
	assert.Panics(t, func() { BytesForBits(-1) })
}

func TestNew(t *testing.T) {
	b, err := New(13)
	require.NoError(t, err)
	assert.Equal(t, int64(13), b.Len())
	assert.Equal(t, DefaultEndianness, b.Endianness())
	assert.Equal(t, int64(2), b.BytesUsed())
	assert.Equal(t, int64(0), b.Count())

	b, err = New(3, WithEndianness(LittleEndian), WithCapacity(100))
	require.NoError(t, err)
	assert.Equal(t, LittleEndian, b.Endianness())
	assert.GreaterOrEqual(t, b.Cap(), int64(13))

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = New(1, WithEndianness(Endianness(9)))
	assert.ErrorIs(t, err, ErrInvalidEndianness)
}

func TestGetSet(t *testing.T) {
	for _, e := range []Endianness{LittleEndian, BigEndian} {
		t.Run(e.String(), func(t *testing.T) {
			b, err := New(20, WithEndianness(e))
			require.NoError(t, err)

			require.NoError(t, b.Set(3, 1))
			require.NoError(t, b.Set(17, 1))

			for i := int64(0); i < 20; i++ {
				v, err := b.Get(i)
				require.NoError(t, err)
				if i == 3 || i == 17 {
					assert.Equal(t, 1, v, "bit %d", i)
				} else {
					assert.Equal(t, 0, v, "bit %d", i)
				}
			}

			require.NoError(t, b.Set(3, 0))
			assert.False(t, b.Test(3))
			assert.True(t, b.Test(17))
			assert.Equal(t, int64(1), b.Count())
		})
	}
}

func TestGetSet_OutOfRange(t *testing.T) {
	b, err := New(10)
	require.NoError(t, err)

	for _, i := range []int64{-1, 10, 11, 1 << 40} {
		_, err := b.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var oor *IndexOutOfRangeError
		require.ErrorAs(t, b.Set(i, 1), &oor)
		assert.Equal(t, i, oor.Index)
		assert.Equal(t, int64(10), oor.Length)
	}
	assert.Panics(t, func() { b.Test(10) })
	assert.Panics(t, func() { b.MustGet(-1) })
	assert.Panics(t, func() { b.MustSet(10, 1) })

	b.MustSet(9, 1)
	assert.Equal(t, 1, b.MustGet(9))
	assert.True(t, b.Test(9))
}

func TestSet_TouchesOneBit(t *testing.T) {
	rng := testutil.NewRNG(3)
	for _, e := range []Endianness{LittleEndian, BigEndian} {
		raw := rng.Bytes(8)
		b, err := FromBytes(raw, 64, e)
		require.NoError(t, err)

		before := b.String()
		require.NoError(t, b.Set(37, 1-b.getBit(37)))
		after := b.String()

		diff := 0
		for i := range before {
			if before[i] != after[i] {
				diff++
				assert.Equal(t, 37, i)
			}
		}
		assert.Equal(t, 1, diff)
	}
}

func TestNormalizeTail(t *testing.T) {
	for _, e := range []Endianness{LittleEndian, BigEndian} {
		b, err := FromBytes([]byte{0xFF, 0xFF}, 10, e)
		require.NoError(t, err)

		before := b.String()
		b.NormalizeTail()
		once := append([]byte(nil), b.data...)
		b.NormalizeTail()

		assert.Equal(t, once, b.data, "idempotent")
		assert.Equal(t, before, b.String(), "logical bits untouched")
		assert.Equal(t, int64(10), b.Count())
		if e == BigEndian {
			assert.Equal(t, byte(0b11000000), b.data[1])
		} else {
			assert.Equal(t, byte(0b00000011), b.data[1])
		}
	}
}

func TestNormalizeTail_Idempotent_Random(t *testing.T) {
	rng := testutil.NewRNG(99)
	for _, n := range testutil.Lengths(200) {
		raw := rng.Bytes(int(BytesForBits(int64(n))))
		b, err := FromBytes(raw, int64(n), BigEndian)
		require.NoError(t, err)
		dirty(b)

		b.NormalizeTail()
		once := append([]byte(nil), b.data...)
		b.NormalizeTail()
		assert.Equal(t, once, b.data, "n=%d", n)
	}
}

func TestFromBytes(t *testing.T) {
	src := []byte{0xAB, 0xCD, 0xEF}
	b, err := FromBytes(src, 12, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.BytesUsed())

	src[0] = 0
	assert.Equal(t, "101010111100", b.String(), "input is copied")

	_, err = FromBytes(src, 25, BigEndian)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = FromBytes(src, -1, BigEndian)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestParse(t *testing.T) {
	b := mustParse(t, "1101_0000 11", BigEndian)
	assert.Equal(t, "1101000011", b.String())
	assert.Equal(t, []byte{0b11010000, 0b11000000}, b.Bytes())

	l := mustParse(t, "1101000011", LittleEndian)
	assert.Equal(t, []byte{0b00001011, 0b00000011}, l.Bytes())

	_, err := Parse("10x", BigEndian)
	assert.ErrorIs(t, err, ErrInvalidBit)

	_, err = FromBits([]int{0, 2}, BigEndian)
	assert.ErrorIs(t, err, ErrInvalidBit)
}

func TestResize(t *testing.T) {
	b := mustParse(t, "1111111111111", LittleEndian)

	require.NoError(t, b.Truncate(3))
	assert.Equal(t, "111", b.String())
	assert.Equal(t, int64(1), b.BytesUsed())

	// Grow again: padding left over from the longer length must read as 0.
	require.NoError(t, b.Resize(16))
	assert.Equal(t, "1110000000000000", b.String())
	assert.Equal(t, int64(3), b.Count())

	require.NoError(t, b.Resize(0))
	assert.Equal(t, int64(0), b.BytesUsed())
	require.NoError(t, b.Resize(9))
	assert.Equal(t, int64(0), b.Count(), "stale bytes in spare capacity are zeroed")

	assert.ErrorIs(t, b.Truncate(100), ErrInvalidLength)
	assert.ErrorIs(t, b.Resize(-1), ErrInvalidLength)
}

func TestAppendExtend(t *testing.T) {
	b, err := New(0, WithEndianness(BigEndian))
	require.NoError(t, err)
	for _, v := range []int{1, 0, 1, 1, 0, 0, 0, 1, 1} {
		require.NoError(t, b.Append(v))
	}
	assert.Equal(t, "101100011", b.String())
	assert.ErrorIs(t, b.Append(3), ErrInvalidBit)

	require.NoError(t, b.Extend(mustParse(t, "0111", LittleEndian)))
	assert.Equal(t, "1011000110111", b.String())

	require.NoError(t, b.Extend(b))
	assert.Equal(t, "10110001101111011000110111", b.String())

	aligned := mustParse(t, "11110000", BigEndian)
	require.NoError(t, aligned.Extend(mustParse(t, "101", BigEndian)))
	assert.Equal(t, "11110000101", aligned.String())

	assert.ErrorIs(t, b.Extend(nil), ErrNilBuffer)
}

func TestExtend_DirtyTailOfSource(t *testing.T) {
	src, err := FromBytes([]byte{0xFF}, 3, BigEndian)
	require.NoError(t, err)

	dst, err := New(8, WithEndianness(BigEndian))
	require.NoError(t, err)
	require.NoError(t, dst.Extend(src))

	assert.Equal(t, "00000000111", dst.String())
	assert.Equal(t, int64(3), dst.Count())
}

func TestSetAllCloneEqual(t *testing.T) {
	b, err := Ones(11, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.Count())

	c := b.Clone()
	assert.True(t, b.Equal(c))
	require.NoError(t, c.Set(4, 0))
	assert.False(t, b.Equal(c))
	assert.Equal(t, int64(11), b.Count(), "clone is independent")

	c.SetAll(0)
	assert.Equal(t, int64(0), c.Count())

	z, err := Zeros(11, BigEndian)
	require.NoError(t, err)
	assert.False(t, c.Equal(z), "different endianness")
	assert.False(t, c.Equal(nil))

	// Dirty padding does not affect equality.
	d := c.Clone()
	dirty(d)
	assert.True(t, c.Equal(d))
}

func TestEndianness(t *testing.T) {
	e, err := ParseEndianness(" BIG ")
	require.NoError(t, err)
	assert.Equal(t, BigEndian, e)

	_, err = ParseEndianness("middle")
	assert.ErrorIs(t, err, ErrInvalidEndianness)

	text, err := LittleEndian.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "little", string(text))

	var got Endianness
	require.NoError(t, got.UnmarshalText([]byte("little")))
	assert.Equal(t, LittleEndian, got)

	_, err = Endianness(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Endianness(7)", Endianness(7).String())
}
