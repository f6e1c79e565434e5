// Package interop converts buffers to and from the bitmap types commonly used
// alongside them: compressed roaring bitmaps (github.com/RoaringBitmap/roaring/v2)
// and dense bitsets (github.com/bits-and-blooms/bitset).
//
// Bit i of a buffer corresponds to integer i of the bitmap; endianness only
// affects the buffer side and is supplied when converting back.
package interop
