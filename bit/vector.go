package bit

import (
	"strings"

	"github.com/hupe1980/bitgo/internal/bitset"
)

// Vector is a fixed-length sequence of bits.
type Vector struct {
	base
}

// NewVector returns a vector of n cleared bits.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, illegalf("negative vector length %d", n)
	}
	return newVector(bitset.New(n)), nil
}

// VectorOf returns a vector holding the given bits in order.
func VectorOf(bits ...bool) *Vector {
	v := newVector(bitset.New(len(bits)))
	for i, b := range bits {
		v.bits.SetTo(i, b)
	}
	return v
}

func newVector(b *bitset.BitSet) *Vector {
	return &Vector{base{layout: linear{n: b.Len()}, bits: b}}
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.bits.Len() }

// Clone returns an independent copy.
func (v *Vector) Clone() Container { return v.Copy() }

// Copy returns an independent copy as a *Vector.
func (v *Vector) Copy() *Vector { return newVector(v.bits.Clone()) }

// Equal reports whether v and o hold the same bits.
func (v *Vector) Equal(o *Vector) bool {
	return o != nil && v.bits.Equal(o.bits)
}

// Bools returns the bits as a bool slice.
func (v *Vector) Bools() []bool {
	out := make([]bool, v.bits.Len())
	for i := range out {
		out[i] = v.bits.Test(i)
	}
	return out
}

// String renders the bits as '0'/'1' in index order.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.bits.Len())
	for i := 0; i < v.bits.Len(); i++ {
		if v.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
