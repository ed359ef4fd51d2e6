package blas

import (
	"fmt"
	"maps"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitgo/internal/conv"
)

// Sparse is a row-major matrix that stores only non-zero entries.
//
// Non-zero positions (linear index i*cols + j) are tracked in a roaring
// bitmap so iteration is ordered without sorting the value map.
type Sparse struct {
	r, c   int
	index  *roaring.Bitmap
	values map[uint32]float64
}

// NewSparse returns an empty rows×cols matrix.
// The cell count must fit in uint32.
func NewSparse(rows, cols int) (*Sparse, error) {
	if _, err := conv.CellCount(rows, cols); err != nil {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w: %w", rows, cols, ErrBadShape, err)
	}
	return &Sparse{
		r:      rows,
		c:      cols,
		index:  roaring.New(),
		values: make(map[uint32]float64),
	}, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.c }

// Format returns FormatSparse.
func (m *Sparse) Format() Format { return FormatSparse }

func (m *Sparse) indexOf(method string, i, j int) (uint32, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, indexErrorf("Sparse."+method, i, j)
	}
	// Bounded by CellCount at construction.
	return uint32(i*m.c + j), nil
}

// At returns the element at (i, j); absent entries are zero.
func (m *Sparse) At(i, j int) (float64, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}
	return m.values[idx], nil
}

// Set assigns v at (i, j). Assigning zero removes the entry.
func (m *Sparse) Set(i, j int, v float64) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	if v == 0 {
		m.index.Remove(idx)
		delete(m.values, idx)
		return nil
	}
	m.index.Add(idx)
	m.values[idx] = v
	return nil
}

// NonZeros returns the number of stored entries.
func (m *Sparse) NonZeros() int {
	return int(m.index.GetCardinality())
}

// ForEachNonZero calls fn for each stored entry in row-major order.
// Iteration stops when fn returns false.
func (m *Sparse) ForEachNonZero(fn func(i, j int, v float64) bool) {
	it := m.index.Iterator()
	for it.HasNext() {
		idx := it.Next()
		k := int(idx)
		if !fn(k/m.c, k%m.c, m.values[idx]) {
			return
		}
	}
}

// ToArray materializes the matrix.
func (m *Sparse) ToArray() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
	}
	m.ForEachNonZero(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})
	return out
}

// Clone returns a deep copy.
func (m *Sparse) Clone() Matrix {
	return &Sparse{
		r:      m.r,
		c:      m.c,
		index:  m.index.Clone(),
		values: maps.Clone(m.values),
	}
}

// SparseVector is a vector that stores only non-zero entries.
type SparseVector struct {
	n      int
	index  *roaring.Bitmap
	values map[uint32]float64
}

// NewSparseVector returns an empty vector of length n.
func NewSparseVector(n int) (*SparseVector, error) {
	if _, err := conv.CellCount(n, 1); err != nil {
		return nil, fmt.Errorf("NewSparseVector(%d): %w: %w", n, ErrBadShape, err)
	}
	return &SparseVector{
		n:      n,
		index:  roaring.New(),
		values: make(map[uint32]float64),
	}, nil
}

// Len returns the number of entries.
func (v *SparseVector) Len() int { return v.n }

// Format returns FormatSparse.
func (v *SparseVector) Format() Format { return FormatSparse }

// At returns entry i; absent entries are zero.
func (v *SparseVector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, indexErrorf("SparseVector.At", i, 0)
	}
	return v.values[uint32(i)], nil
}

// Set assigns x at entry i. Assigning zero removes the entry.
func (v *SparseVector) Set(i int, x float64) error {
	if i < 0 || i >= v.n {
		return indexErrorf("SparseVector.Set", i, 0)
	}
	idx := uint32(i)
	if x == 0 {
		v.index.Remove(idx)
		delete(v.values, idx)
		return nil
	}
	v.index.Add(idx)
	v.values[idx] = x
	return nil
}

// NonZeros returns the number of stored entries.
func (v *SparseVector) NonZeros() int {
	return int(v.index.GetCardinality())
}

// ForEachNonZero calls fn for each stored entry in index order.
// Iteration stops when fn returns false.
func (v *SparseVector) ForEachNonZero(fn func(i int, x float64) bool) {
	it := v.index.Iterator()
	for it.HasNext() {
		idx := it.Next()
		if !fn(int(idx), v.values[idx]) {
			return
		}
	}
}

// ToArray materializes the vector.
func (v *SparseVector) ToArray() []float64 {
	out := make([]float64, v.n)
	v.ForEachNonZero(func(i int, x float64) bool {
		out[i] = x
		return true
	})
	return out
}

// Clone returns a deep copy.
func (v *SparseVector) Clone() Vector {
	return &SparseVector{
		n:      v.n,
		index:  v.index.Clone(),
		values: maps.Clone(v.values),
	}
}
