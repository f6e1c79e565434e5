package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a bit index is negative or >= Len().
	ErrIndexOutOfRange = errors.New("bit index out of range")

	// ErrLengthMismatch is returned by pairwise operations on buffers of different length.
	ErrLengthMismatch = errors.New("buffers of equal length expected")

	// ErrEndiannessMismatch is returned by pairwise operations on buffers of different endianness.
	ErrEndiannessMismatch = errors.New("buffers of equal endianness expected")

	// ErrCountExceedsTotal is returned by CountToN when n is larger than the number of set bits.
	ErrCountExceedsTotal = errors.New("n exceeds total count")

	// ErrNegativeCount is returned when a count argument is negative.
	ErrNegativeCount = errors.New("non-negative count expected")

	// ErrInvalidEndianness is returned for an unknown endianness value.
	ErrInvalidEndianness = errors.New("invalid endianness")

	// ErrInvalidLength is returned when a bit length does not fit the supplied bytes
	// or violates an operation's length requirement.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidBit is returned when a bit value other than 0 or 1 is supplied.
	ErrInvalidBit = errors.New("bit value must be 0 or 1")

	// ErrNilBuffer is returned when a nil *Buffer is passed to a bulk operation.
	ErrNilBuffer = errors.New("nil buffer")

	// ErrOverflow is returned when a value cannot be represented in the requested number of bits.
	ErrOverflow = errors.New("value does not fit")
)

// IndexOutOfRangeError reports an access outside [0, Length).
type IndexOutOfRangeError struct {
	Index  int64
	Length int64
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bit index out of range: %d not in [0, %d)", e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// LengthMismatchError reports a pairwise operation on buffers of different length.
type LengthMismatchError struct {
	Left  int64
	Right int64
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// EndiannessMismatchError reports a pairwise operation on buffers of different endianness.
type EndiannessMismatchError struct {
	Left  Endianness
	Right Endianness
}

func (e *EndiannessMismatchError) Error() string {
	return fmt.Sprintf("endianness mismatch: %s != %s", e.Left, e.Right)
}

func (e *EndiannessMismatchError) Unwrap() error { return ErrEndiannessMismatch }

// CountExceedsTotalError is the "not found" result of CountToN.
//
// Callers paging through set bits usually test for it with
// errors.Is(err, ErrCountExceedsTotal).
type CountExceedsTotalError struct {
	N     int64
	Total int64
}

func (e *CountExceedsTotalError) Error() string {
	return fmt.Sprintf("n exceeds total count: %d > %d", e.N, e.Total)
}

func (e *CountExceedsTotalError) Unwrap() error { return ErrCountExceedsTotal }

// InvalidEndiannessError reports an unknown endianness name or value.
type InvalidEndiannessError struct {
	Value string
}

func (e *InvalidEndiannessError) Error() string {
	return fmt.Sprintf("invalid endianness: %q (expected \"little\" or \"big\")", e.Value)
}

func (e *InvalidEndiannessError) Unwrap() error { return ErrInvalidEndianness }

// checkPair validates the shared preconditions of pairwise operations.
func checkPair(a, b *Buffer) error {
	if a == nil || b == nil {
		return ErrNilBuffer
	}
	if a.nbits != b.nbits {
		return &LengthMismatchError{Left: a.nbits, Right: b.nbits}
	}
	if a.endian != b.endian {
		return &EndiannessMismatchError{Left: a.endian, Right: b.endian}
	}
	return nil
}
