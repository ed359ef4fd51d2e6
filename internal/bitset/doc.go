// Package bitset provides fixed-size, word-backed bit storage.
//
// Architecture:
//   - Flat []uint64 words, bit i lives in words[i/64] at position i%64
//   - Fixed length: no growth after New
//   - Tail masking: bits at positions >= Len are always zero, so word-level
//     popcounts and comparisons are exact
//
// Used internally for:
//   - bit.Vector and bit.Matrix storage (row-major for matrices)
//
// BitSet performs no locking; callers serialize access to a shared set.
package bitset
