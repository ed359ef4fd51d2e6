// Package bit implements fixed-size boolean containers and their algebra.
//
// # Containers
//
// Vector is a 1-D sequence of bits; Matrix is a columns×rows grid addressed
// by (column, row). Both implement Container and share one word-backed
// storage; only the Layout (the coordinate-to-linear mapping) differs:
//
//	Vector: index i              -> i
//	Matrix: coordinate (c, r)    -> r*columns + c   (row-major)
//
// Row/Column extraction, ToVector, Stream, ToList, ToBitmap and the numeric
// conversions all use the same mapping.
//
// # Operations
//
//   - Reduce / And / Or / Xor / Nand / AndNot / Not: left fold of bitwise
//     operators into a target, in place
//   - Size / TrueCount / FalseCount / BoolValue / NumericValue: queries
//   - Coerce / Assign / Clear: indexed writes with numeric threshold coercion
//   - Range / Copy: extraction into new, independent containers
//   - ToList / Stream / ToBitmap / MatrixToBlas / VectorToBlas: conversions
//
// # Failure and partial mutation
//
// Multi-step writes are not transactional. A fold that hits a mismatching
// operand, or an Assign that hits an out-of-bounds index, returns the error
// and leaves every earlier step applied.
//
// # Example
//
//	m1, _ := bit.MatrixOf(2, 2, true, false, false, true)
//	m2, _ := bit.MatrixOf(2, 2, false, true, true, true)
//	_ = bit.And(m1, m2)
//	fmt.Println(m1.TrueCount()) // 1
package bit
