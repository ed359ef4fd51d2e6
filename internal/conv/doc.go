// Package conv provides checked numeric conversions.
//
// Use cases:
//   - Mapping container indices into roaring's uint32 index space
//   - Accepting integral index arguments that arrive as float64 or uint64
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead.
package conv
