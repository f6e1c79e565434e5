package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/hash"
)

// Frame layout, all integers little-endian:
//
//	offset size field
//	0      4    magic "BVEC"
//	4      1    version
//	5      1    endianness (0 little, 1 big)
//	6      1    compression
//	7      1    reserved, zero
//	8      8    bit length
//	16     4    payload length
//	20     4    CRC32C of the uncompressed packed bytes
//	24     -    payload
const (
	// Magic identifies a frame.
	Magic = "BVEC"
	// Version is the frame version written by Encode.
	Version uint8 = 1
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 24
)

var (
	// ErrInvalidMagic is returned when data does not start with Magic.
	ErrInvalidMagic = errors.New("codec: invalid frame magic")
	// ErrUnsupportedVersion is returned for frames newer than Version.
	ErrUnsupportedVersion = errors.New("codec: unsupported frame version")
	// ErrChecksumMismatch is returned when the decoded bytes fail the CRC check.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")
	// ErrCorruptFrame is returned for truncated or inconsistent frames.
	ErrCorruptFrame = errors.New("codec: corrupt frame")
)

// Upper bounds on how far a payload can expand. An lz4 block cannot grow by
// more than 255x; the densest zstd block is a 4-byte RLE block of 128 KiB.
const (
	maxLZ4Ratio  = 255
	maxZstdRatio = 128 << 10 / 4
)

// Header is the decoded fixed-size frame header.
type Header struct {
	Version     uint8
	Endianness  bitvec.Endianness
	Compression Compression
	Bits        int64
	PayloadLen  uint32
	Checksum    uint32
}

// Encode serializes b into a frame. Compression c is used only when it makes
// the payload smaller; otherwise the frame records CompressionNone.
func Encode(b *bitvec.Buffer, c Compression) ([]byte, error) {
	if b == nil {
		return nil, bitvec.ErrNilBuffer
	}
	if c > CompressionZSTD {
		return nil, fmt.Errorf("unknown compression %d", uint8(c))
	}

	raw := b.Bytes()
	if _, err := conv.IntToUint32(len(raw)); err != nil {
		return nil, fmt.Errorf("codec: buffer too large: %w", err)
	}

	payload, err := compress(raw, c)
	if err != nil {
		return nil, fmt.Errorf("codec: %s compression: %w", c, err)
	}
	if payload == nil {
		payload, c = raw, CompressionNone
	}

	nbits, err := conv.Int64ToUint64(b.Len())
	if err != nil {
		return nil, err
	}
	plen, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, fmt.Errorf("codec: payload too large: %w", err)
	}

	out := make([]byte, HeaderSize+len(payload))
	copy(out[0:4], Magic)
	out[4] = Version
	out[5] = uint8(b.Endianness())
	out[6] = uint8(c)
	binary.LittleEndian.PutUint64(out[8:], nbits)
	binary.LittleEndian.PutUint32(out[16:], plen)
	binary.LittleEndian.PutUint32(out[20:], hash.CRC32C(raw))
	copy(out[HeaderSize:], payload)
	return out, nil
}

// ReadHeader parses and validates the frame header of data.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrCorruptFrame, len(data), HeaderSize)
	}
	if string(data[0:4]) != Magic {
		return Header{}, ErrInvalidMagic
	}

	h := Header{
		Version:     data[4],
		Endianness:  bitvec.Endianness(data[5]),
		Compression: Compression(data[6]),
		PayloadLen:  binary.LittleEndian.Uint32(data[16:]),
		Checksum:    binary.LittleEndian.Uint32(data[20:]),
	}
	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if !h.Endianness.Valid() {
		return Header{}, fmt.Errorf("%w: endianness %d", ErrCorruptFrame, data[5])
	}
	if h.Compression > CompressionZSTD {
		return Header{}, fmt.Errorf("%w: compression %d", ErrCorruptFrame, data[6])
	}
	if data[7] != 0 {
		return Header{}, fmt.Errorf("%w: reserved byte %d", ErrCorruptFrame, data[7])
	}

	nbits, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[8:]))
	if err != nil {
		return Header{}, fmt.Errorf("%w: bit length: %w", ErrCorruptFrame, err)
	}
	if bitvec.BytesForBits(nbits) > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: bit length %d", ErrCorruptFrame, nbits)
	}
	h.Bits = nbits
	return h, nil
}

// Decode parses a frame produced by Encode.
func Decode(data []byte) (*bitvec.Buffer, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != uint64(h.PayloadLen) {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d", ErrCorruptFrame, len(payload), h.PayloadLen)
	}

	size, err := conv.Int64ToInt(bitvec.BytesForBits(h.Bits))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	switch {
	case h.Compression == CompressionLZ4 && size > len(payload)*maxLZ4Ratio,
		h.Compression == CompressionZSTD && size > len(payload)*maxZstdRatio:
		return nil, fmt.Errorf("%w: %s payload of %d bytes cannot hold %d bytes", ErrCorruptFrame, h.Compression, len(payload), size)
	}

	raw, err := decompress(payload, h.Compression, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptFrame, h.Compression, err)
	}
	if !hash.Verify(raw, h.Checksum) {
		return nil, ErrChecksumMismatch
	}

	return bitvec.FromBytes(raw, h.Bits, h.Endianness)
}
