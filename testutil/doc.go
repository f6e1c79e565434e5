// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible bit patterns of different shapes:
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(1000, 0.1)    // ~10% density
//	runs := rng.Runs(1000, 64)     // long runs of equal bits
//	raw := rng.Bytes(128)          // dirty bytes, e.g. for padding tests
package testutil
