// Package testutil provides testing utilities for bitgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random containers and naive
// position-by-position reference implementations to check the word
// kernels against.
//
// # Random Containers
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(100)
//	m := rng.Matrix(8, 4)
//
// # Reference Results
//
//	want := testutil.NaiveHamming(a, b)
package testutil
