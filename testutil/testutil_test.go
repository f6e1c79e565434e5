package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.Bits(1000, 0.25)
	assert.Len(t, bits, 1000)

	ones := 0
	for _, b := range bits {
		assert.Contains(t, []int{0, 1}, b)
		ones += b
	}
	assert.InDelta(t, 250, ones, 80)

	assert.NotContains(t, rng.Bits(100, 0), 1)
	assert.NotContains(t, rng.Bits(100, 1), 0)
}

func TestRuns(t *testing.T) {
	rng := NewRNG(4711)

	runs := rng.Runs(500, 40)
	assert.Len(t, runs, 500)

	changes := 0
	for i := 1; i < len(runs); i++ {
		if runs[i] != runs[i-1] {
			changes++
		}
	}
	assert.Less(t, changes, 250)
}

func TestReset(t *testing.T) {
	rng := NewRNG(1)
	first := rng.Bytes(16)
	rng.Reset()
	assert.Equal(t, first, rng.Bytes(16))
	assert.Equal(t, int64(1), rng.Seed())
}

func TestLengths(t *testing.T) {
	l := Lengths(9000)
	assert.Contains(t, l, 0)
	assert.Contains(t, l, 8191)
	assert.Contains(t, l, 8197)
	assert.Contains(t, l, 9000)
	assert.NotContains(t, l, 16384)
}
