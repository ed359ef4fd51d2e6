package bitset

import (
	"math/bits"
	"slices"

	"github.com/hupe1980/bitgo/internal/simd"
)

const (
	wordBits = 64
	wordLog  = 6
)

// BitSet is a fixed-length sequence of bits.
type BitSet struct {
	words []uint64
	n     int
}

// New creates a new BitSet holding n bits, all cleared.
// n must be non-negative.
func New(n int) *BitSet {
	return &BitSet{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

func wordsFor(n int) int {
	return (n + wordBits - 1) >> wordLog
}

// Len returns the number of bits.
func (b *BitSet) Len() int {
	return b.n
}

// Words exposes the backing words. Bits past Len are zero.
func (b *BitSet) Words() []uint64 {
	return b.words
}

// Test returns true if bit i is set. i must be in [0, Len).
func (b *BitSet) Test(i int) bool {
	return b.words[i>>wordLog]&(1<<(uint(i)&(wordBits-1))) != 0
}

// Set sets bit i. i must be in [0, Len).
func (b *BitSet) Set(i int) {
	b.words[i>>wordLog] |= 1 << (uint(i) & (wordBits - 1))
}

// Unset clears bit i. i must be in [0, Len).
func (b *BitSet) Unset(i int) {
	b.words[i>>wordLog] &^= 1 << (uint(i) & (wordBits - 1))
}

// SetTo sets bit i to v.
func (b *BitSet) SetTo(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Unset(i)
	}
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	return simd.PopcountWords(b.words)
}

// And performs b &= o. Both sets must have the same length.
func (b *BitSet) And(o *BitSet) { simd.AndWords(b.words, o.words) }

// Or performs b |= o. Both sets must have the same length.
func (b *BitSet) Or(o *BitSet) { simd.OrWords(b.words, o.words) }

// Xor performs b ^= o. Both sets must have the same length.
func (b *BitSet) Xor(o *BitSet) { simd.XorWords(b.words, o.words) }

// AndNot performs b &^= o. Both sets must have the same length.
func (b *BitSet) AndNot(o *BitSet) { simd.AndNotWords(b.words, o.words) }

// Nand performs b = ^(b & o). Both sets must have the same length.
func (b *BitSet) Nand(o *BitSet) {
	simd.NandWords(b.words, o.words)
	b.maskTail()
}

// Not flips every bit.
func (b *BitSet) Not() {
	simd.NotWords(b.words)
	b.maskTail()
}

// Equal reports whether b and o have the same length and bits.
func (b *BitSet) Equal(o *BitSet) bool {
	return b.n == o.n && slices.Equal(b.words, o.words)
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{words: slices.Clone(b.words), n: b.n}
}

// Slice returns a new BitSet holding bits [start, end).
// 0 <= start <= end <= Len must hold.
func (b *BitSet) Slice(start, end int) *BitSet {
	out := New(end - start)
	if start&(wordBits-1) == 0 {
		copy(out.words, b.words[start>>wordLog:])
		out.maskTail()
		return out
	}
	for i := start; i < end; i++ {
		if b.Test(i) {
			out.Set(i - start)
		}
	}
	return out
}

// NextSet returns the index of the next set bit at or after i, or -1.
func (b *BitSet) NextSet(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= b.n {
		return -1
	}
	w := i >> wordLog
	word := b.words[w] >> (uint(i) & (wordBits - 1))
	if word != 0 {
		return i + bits.TrailingZeros64(word)
	}
	for w++; w < len(b.words); w++ {
		if b.words[w] != 0 {
			return w<<wordLog + bits.TrailingZeros64(b.words[w])
		}
	}
	return -1
}

// maskTail zeroes the bits past Len in the last word.
func (b *BitSet) maskTail() {
	if r := uint(b.n) & (wordBits - 1); r != 0 {
		b.words[len(b.words)-1] &= (1 << r) - 1
	}
}
