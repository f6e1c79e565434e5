// Package popcount provides the population count engine used by bitvec.
//
// All counting is done on packed byte slices. Two kernels produce identical
// results:
//
//   - Table: one lookup in a fixed [256]uint8 table per byte
//   - Word: eight bytes at a time through math/bits.OnesCount64
//
// The active kernel is selected once at init from CPU features and can be
// forced with BITVEC_POPCOUNT=table|word. Callers that need per-byte counts
// (block scans, rank queries) use Table directly.
package popcount
