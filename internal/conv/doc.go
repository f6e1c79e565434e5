// Package conv provides checked integer conversions.
//
// Bit lengths are int64 on every platform while slice sizes are int, so a
// length that is valid on amd64 can overflow on a 32-bit build. Values read
// from persisted frames are validated here before they size any allocation.
package conv
