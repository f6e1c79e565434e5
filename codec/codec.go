// Package codec encodes bit buffers for storage and exchange.
//
// Two encodings are provided:
//
//   - Frames (Encode/Decode): a compact binary header followed by the packed
//     bytes, optionally LZ4 or ZSTD compressed and always CRC32C protected.
//     This is what the persistence package writes.
//   - Documents (MarshalDocument/UnmarshalDocument): a JSON object holding
//     the endianness, the bit length and the base64 bytes, marshaled with any
//     Codec.
//
// Both encodings record the bit length and endianness explicitly, so a
// decoded buffer is bit-for-bit identical to the encoded one.
package codec

import (
	"maps"
	"slices"
)

// Names of the built-in document codecs.
const (
	NameJSON   = "json"
	NameGoJSON = "go-json"
)

// Codec encodes/decodes documents.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var builtin = map[string]Codec{
	NameJSON:   JSON{},
	NameGoJSON: GoJSON{},
}

// ByName returns a built-in codec by the name configuration files use.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Names returns the sorted names accepted by ByName.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}
