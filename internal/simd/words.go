package simd

import "math/bits"

// Kernel function pointers for word operations.
// The logical kernels have a single implementation; the counting kernels
// are swapped by useISA once CPU features are known.
var (
	kernelPopcountWords = popcountWordsGeneric
	kernelHammingWords  = hammingWordsGeneric
)

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// NandWords performs dst[i] = ^(dst[i] & src[i]) for all words.
// Bits beyond the logical length are set too; callers mask the tail.
func NandWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^(dst[i] & src[i])
		dst[i+1] = ^(dst[i+1] & src[i+1])
		dst[i+2] = ^(dst[i+2] & src[i+2])
		dst[i+3] = ^(dst[i+3] & src[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] = ^(dst[i] & src[i])
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// NotWords performs dst[i] = ^dst[i] for all words.
// Bits beyond the logical length are set too; callers mask the tail.
func NotWords(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// HammingWords counts the positions where a and b differ.
//
// SAFETY: Assumes len(a) == len(b).
func HammingWords(a, b []uint64) int {
	return kernelHammingWords(a, b)
}

// ==============================================================================
// Native implementations (math/bits lowers to POPCNT / CNT)
// ==============================================================================

func popcountWordsNative(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func hammingWordsNative(a, b []uint64) int {
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] ^ b[i])
	}
	return count
}

// ==============================================================================
// Generic implementations (SWAR, no popcount instruction)
// ==============================================================================

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

func swar64(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		if w != 0 {
			count += swar64(w)
		}
	}
	return count
}

func hammingWordsGeneric(a, b []uint64) int {
	count := 0
	for i := range a {
		if x := a[i] ^ b[i]; x != 0 {
			count += swar64(x)
		}
	}
	return count
}
