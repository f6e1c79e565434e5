package bitvec

import (
	"fmt"
	"strings"
)

// Endianness is the bit-endianness of a Buffer: the mapping from a bit's
// position inside its byte to a mask.
type Endianness uint8

const (
	// LittleEndian maps bit i of a byte to mask 1<<(i%8).
	LittleEndian Endianness = iota
	// BigEndian maps bit i of a byte to mask 1<<(7-i%8).
	BigEndian
)

// DefaultEndianness is used by New when no WithEndianness option is given.
const DefaultEndianness = BigEndian

// String returns "little" or "big".
func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("Endianness(%d)", uint8(e))
	}
}

// Valid reports whether e is LittleEndian or BigEndian.
func (e Endianness) Valid() bool {
	return e == LittleEndian || e == BigEndian
}

// ParseEndianness parses "little" or "big" (case-insensitive).
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return 0, &InvalidEndiannessError{Value: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Endianness) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &InvalidEndiannessError{Value: e.String()}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endianness) UnmarshalText(text []byte) error {
	v, err := ParseEndianness(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
