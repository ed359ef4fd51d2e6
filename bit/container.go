package bit

import (
	"github.com/hupe1980/bitgo/internal/bitset"
)

// Index is one coordinate tuple: (i) for a vector, (column, row) for a matrix.
type Index []int

// Container is the addressing and mutation contract shared by Vector and
// Matrix. Every algorithm in this package is written once against it.
//
// Containers are mutable and perform no locking. Callers that share a
// container between goroutines must serialize access themselves.
type Container interface {
	// Layout returns the addressing strategy.
	Layout() Layout

	// Size returns the total number of bits.
	Size() int

	// Get returns the bit addressed by coords.
	Get(coords ...int) (bool, error)

	// Set assigns v to the bit addressed by coords.
	Set(v bool, coords ...int) error

	// Bit returns the bit at linear index i.
	Bit(i int) (bool, error)

	// SetBit assigns v to the bit at linear index i.
	SetBit(i int, v bool) error

	// TrueCount returns the number of set bits.
	TrueCount() int

	// FalseCount returns the number of cleared bits.
	FalseCount() int

	// Clone returns an independent copy sharing no storage.
	Clone() Container

	storage() *bitset.BitSet
}

// base implements the layout-generic half of Container.
type base struct {
	layout Layout
	bits   *bitset.BitSet
}

func (b *base) Layout() Layout { return b.layout }

func (b *base) Size() int { return b.bits.Len() }

func (b *base) storage() *bitset.BitSet { return b.bits }

func (b *base) Get(coords ...int) (bool, error) {
	i, err := b.layout.Offset(coords...)
	if err != nil {
		return false, err
	}
	return b.bits.Test(i), nil
}

func (b *base) Set(v bool, coords ...int) error {
	i, err := b.layout.Offset(coords...)
	if err != nil {
		return err
	}
	b.bits.SetTo(i, v)
	return nil
}

func (b *base) checkLinear(i int) error {
	if i < 0 || i >= b.bits.Len() {
		return &IndexError{Coords: []int{i}, Shape: []int{b.bits.Len()}}
	}
	return nil
}

func (b *base) Bit(i int) (bool, error) {
	if err := b.checkLinear(i); err != nil {
		return false, err
	}
	return b.bits.Test(i), nil
}

func (b *base) SetBit(i int, v bool) error {
	if err := b.checkLinear(i); err != nil {
		return err
	}
	b.bits.SetTo(i, v)
	return nil
}

func (b *base) TrueCount() int { return b.bits.Count() }

func (b *base) FalseCount() int { return b.bits.Len() - b.bits.Count() }

// IsNil reports whether c is nil or a nil *Vector or *Matrix.
func IsNil(c Container) bool {
	switch t := c.(type) {
	case *Vector:
		return t == nil
	case *Matrix:
		return t == nil
	}
	return c == nil
}

// SameShape reports whether a and b have identical layouts and extents.
func SameShape(a, b Container) bool {
	return sameLayout(a.Layout(), b.Layout())
}

// Words exposes the backing words of c in linear order. Bits past Size are
// zero. The slice aliases the container and must not be modified.
func Words(c Container) []uint64 {
	return c.storage().Words()
}

// Create builds a cleared container from its dimensions: one value yields a
// Vector of that length, two yield a Matrix of (columns, rows).
func Create(dims ...int) (Container, error) {
	switch len(dims) {
	case 1:
		return NewVector(dims[0])
	case 2:
		return NewMatrix(dims[0], dims[1])
	default:
		return nil, illegalf("create takes 1 or 2 dimensions, got %d", len(dims))
	}
}

var (
	_ Container = (*Vector)(nil)
	_ Container = (*Matrix)(nil)
)
