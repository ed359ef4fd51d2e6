// Package blas provides the numeric matrix and vector representations that
// bit containers are converted into before being handed to a linear-algebra
// backend.
//
// Two storage strategies are available:
//
//   - Dense: a flat row-major []float64 with the index formula i*cols + j.
//   - Sparse: non-zero positions tracked in a roaring bitmap, values in a map.
//     Iteration over non-zeros follows row-major order.
//
// Both satisfy Matrix (2-D) or Vector (1-D). Accessors return errors instead
// of panicking on out-of-range indices.
//
//	m, _ := blas.NewMatrix(blas.FormatSparse, 2, 3)
//	_ = m.Set(1, 2, 1.0)
//	fmt.Println(m.ToArray()) // [[0 0 0] [0 0 1]]
package blas
