package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func TestPairwise(t *testing.T) {
	a := mustParse(t, "1100 1010 01", BigEndian)
	b := mustParse(t, "1010 1000 11", BigEndian)
	dirty(a)
	dirty(b)

	and, err := CountAnd(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(3), and)

	or, err := CountOr(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(7), or)

	xor, err := CountXor(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(4), xor)

	ok, err := IsSubset(a, b)
	require.NoError(t, err)
	assert.False(t, ok)

	sub := mustParse(t, "1000 1000 01", BigEndian)
	dirty(sub)
	ok, err = IsSubset(sub, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPairwise_Mismatch(t *testing.T) {
	a := mustParse(t, "1010", BigEndian)
	short := mustParse(t, "101", BigEndian)
	little := mustParse(t, "1010", LittleEndian)

	_, err := CountAnd(a, short)
	var lm *LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, int64(4), lm.Left)
	assert.Equal(t, int64(3), lm.Right)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = CountOr(a, little)
	assert.ErrorIs(t, err, ErrEndiannessMismatch)

	_, err = CountXor(a, nil)
	assert.ErrorIs(t, err, ErrNilBuffer)

	_, err = IsSubset(little, a)
	assert.ErrorIs(t, err, ErrEndiannessMismatch)
}

func TestPairwise_Empty(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	b, err := New(0)
	require.NoError(t, err)

	for _, f := range []func(a, b *Buffer) (int64, error){CountAnd, CountOr, CountXor} {
		n, err := f(a, b)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	ok, err := IsSubset(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPairwise_Properties(t *testing.T) {
	rng := testutil.NewRNG(99)
	for _, n := range testutil.Lengths(4096) {
		for _, e := range []Endianness{LittleEndian, BigEndian} {
			x := rng.Bits(n, 0.5)
			y := rng.Bits(n, 0.3)
			a := mustFromBits(t, x, e)
			b := mustFromBits(t, y, e)
			dirty(a)
			dirty(b)

			var wantAnd, wantOr, wantXor int64
			for i := range x {
				wantAnd += int64(x[i] & y[i])
				wantOr += int64(x[i] | y[i])
				wantXor += int64(x[i] ^ y[i])
			}

			and, err := CountAnd(a, b)
			require.NoError(t, err)
			or, err := CountOr(a, b)
			require.NoError(t, err)
			xor, err := CountXor(a, b)
			require.NoError(t, err)

			assert.Equal(t, wantAnd, and, "len=%d", n)
			assert.Equal(t, wantOr, or, "len=%d", n)
			assert.Equal(t, wantXor, xor, "len=%d", n)

			// inclusion-exclusion and symmetry
			assert.Equal(t, CountBits(a)+CountBits(b), and+or)
			assert.Equal(t, or-and, xor)
			swapped, err := CountXor(b, a)
			require.NoError(t, err)
			assert.Equal(t, xor, swapped)

			self, err := CountXor(a, a)
			require.NoError(t, err)
			assert.Zero(t, self)

			sub, err := IsSubset(a, b)
			require.NoError(t, err)
			assert.Equal(t, and == CountBits(a), sub, "len=%d", n)

			reflexive, err := IsSubset(a, a)
			require.NoError(t, err)
			assert.True(t, reflexive)
		}
	}
}

func BenchmarkCountXor(b *testing.B) {
	rng := testutil.NewRNG(3)
	x, err := FromBytes(rng.Bytes(1<<16), 1<<19, LittleEndian)
	require.NoError(b, err)
	y, err := FromBytes(rng.Bytes(1<<16), 1<<19, LittleEndian)
	require.NoError(b, err)

	b.SetBytes(1 << 16)
	for b.Loop() {
		_, _ = CountXor(x, y)
	}
}
