// Package testutil provides testing utilities for at.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating sequences and indices
// that are known to be inside or outside a sequence's bounds.
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	seq := rng.Ints(64)
//
// # Indices
//
//	rng.ValidIndex(len(seq))    // in [0, len)
//	rng.NegativeIndex(len(seq)) // in [-len, -1]
//	rng.OutOfRange(len(seq))    // >= len or < -len
package testutil
