// Package hash provides the checksum used by persisted frames.
//
// Frames carry a CRC32-Castagnoli (CRC32C) of their uncompressed packed bytes,
// so corruption is detected independently of the compression codec:
//
//	checksum := hash.CRC32C(raw)
package hash
