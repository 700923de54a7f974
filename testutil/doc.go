// Package testutil provides testing utilities for the bitset module.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random generator that produces the
// raw material for property tests: digit strings, index lists, byte slices
// and word vectors.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BinaryString(100)    // canonical: no leading zeros
//	h := rng.HexString(12)
//	idx := rng.Indices(20, 1000)  // 20 indices in [0, 1000)
//	raw := rng.Bytes(16)
package testutil
