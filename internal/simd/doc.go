// Package simd provides the word kernels behind the bit containers.
//
// # Operations
//
//   - Logical: AndWords, OrWords, XorWords, NandWords, AndNotWords, NotWords
//   - Counting: PopcountWords, HammingWords
//
// # Dispatch
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects between the
// native popcount path (POPCNT on x86-64, CNT on ARM64) and a portable SWAR
// fallback. Set BITGO_SIMD=generic|popcnt|neon to force a path; an
// unavailable choice falls back to auto-detection.
//
// All kernels assume len(dst) == len(src). Callers MUST ensure this.
package simd
