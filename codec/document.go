package codec

import (
	"fmt"

	"github.com/hupe1980/bitvec"
)

// Document is the JSON form of a buffer.
//
//	{"endian":"big","length":10,"data":"0MA="}
//
// Data holds the packed bytes with padding bits cleared, base64 encoded.
type Document struct {
	Endianness bitvec.Endianness `json:"endian"`
	Length     int64             `json:"length"`
	Data       []byte            `json:"data"`
}

// NewDocument captures b.
func NewDocument(b *bitvec.Buffer) Document {
	return Document{
		Endianness: b.Endianness(),
		Length:     b.Len(),
		Data:       b.Bytes(),
	}
}

// Buffer rebuilds the buffer described by d.
func (d Document) Buffer() (*bitvec.Buffer, error) {
	if want := bitvec.BytesForBits(max(d.Length, 0)); int64(len(d.Data)) != want {
		return nil, fmt.Errorf("%w: document has %d bytes for %d bits", ErrCorruptFrame, len(d.Data), d.Length)
	}
	return bitvec.FromBytes(d.Data, d.Length, d.Endianness)
}

// MarshalDocument encodes b as a Document with c. A nil codec selects Default.
func MarshalDocument(c Codec, b *bitvec.Buffer) ([]byte, error) {
	if b == nil {
		return nil, bitvec.ErrNilBuffer
	}
	if c == nil {
		c = Default
	}
	data, err := c.Marshal(NewDocument(b))
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return data, nil
}

// UnmarshalDocument decodes a Document with c. A nil codec selects Default.
func UnmarshalDocument(c Codec, data []byte) (*bitvec.Buffer, error) {
	if c == nil {
		c = Default
	}
	var d Document
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return d.Buffer()
}
