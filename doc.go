// Package bitgo provides bit vectors and bit matrices with a bitwise
// reduction algebra, numeric views and named actions over them.
//
// Containers live in package bit; the numeric dense/sparse representations
// in package blas; the named action families in package action. This
// package ties them together behind an Engine that dispatches by action
// name and carries logging and metrics.
//
// # Quick Start
//
//	eng, _ := bitgo.New()
//	out, _ := eng.Execute(ctx, "math/bit/vector/create", 3)
//	v := out[0].(*bit.Vector)
//	_, _ = eng.Execute(ctx, "math/bit/vector/set", v, true, 0, 2)
//	out, _ = eng.Execute(ctx, "math/bit/vector/truecount", v) // [2]
//
// # Addressing
//
// Matrices are addressed as (column, row). Every linear view (ToVector,
// Stream, ToList, ToBitmap, Range, ToBlas) uses row-major order:
// index = row*columns + column.
//
// # Operators
//
// and, or, xor, nand and andnot fold the sources into the first argument
// left to right; each step sees the already modified target. not negates
// every argument. Operands must share the target's shape.
//
// # Configuration
//
//	eng, _ := bitgo.New(
//	    bitgo.WithLogger(bitgo.NewJSONLogger(slog.LevelDebug)),
//	    bitgo.WithMetricsCollector(&bitgo.BasicMetricsCollector{}),
//	    bitgo.WithDefaultFormat(blas.FormatSparse),
//	)
//
// BITGO_BLAS_FORMAT sets the default toblas format when no option does;
// BITGO_SIMD forces the popcount kernel ("generic", "popcnt", "neon").
package bitgo
