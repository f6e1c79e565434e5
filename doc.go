// Package bitvec provides a packed bit-vector engine for Go.
//
// A Buffer is a resizable sequence of bits stored eight to a byte with a
// bit-endianness fixed at construction. Bulk algorithms work directly on the
// packed bytes instead of bit by bit:
//
//   - CountBits, CountRange: lookup-table population counts
//   - CountToN: index just past the n-th set bit (coarse-to-fine block scan)
//   - FindLast, FindFirst: searches that skip whole 0x00/0xFF bytes
//   - CountAnd, CountOr, CountXor, IsSubset: pairwise reductions without
//     intermediate buffers
//   - NibbleSwapTable: the 256-byte high/low nibble permutation
//
// # Quick Start
//
//	a, _ := bitvec.Parse("1101 0000 11", bitvec.BigEndian)
//	a.Count()                 // 5
//	bitvec.FindLast(a, 1)     // 9
//	i, _ := bitvec.CountToN(a, 3) // 4: a[0:4] holds three set bits
//
//	b, _ := bitvec.Parse("1001 0000 01", bitvec.BigEndian)
//	bitvec.CountXor(a, b)     // Hamming distance
//	bitvec.IsSubset(b, a)     // true
//
// # Padding Bits
//
// The final byte of a buffer whose length is not a multiple of 8 holds
// padding bits. Single-bit writes never touch them, so they may be stale
// after a truncation. Every operation that reads whole bytes clears them
// first (NormalizeTail); the clearing is invisible through the bit API.
//
// # Concurrency
//
// A Buffer is not safe for concurrent use, including concurrent "read-only"
// bulk operations, since those normalize padding. Batch runs many pairwise
// reductions in parallel by normalizing its inputs once up front.
//
// # Persistence
//
// The codec package encodes a buffer as a self-describing frame (raw bytes,
// bit length, endianness tag, optional LZ4/ZSTD compression) and the
// persistence package stores frames in a blobstore.BlobStore (memory, local
// files, S3, MinIO).
package bitvec
