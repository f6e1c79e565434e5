package hash

import "hash/crc32"

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the Castagnoli checksum of p. The standard library uses the
// SSE4.2 and ARMv8 CRC instructions for this polynomial when present.
func CRC32C(p []byte) uint32 {
	return crc32.Checksum(p, castagnoli)
}

// Verify reports whether p hashes to want.
func Verify(p []byte, want uint32) bool {
	return CRC32C(p) == want
}
