package bit

import (
	"strings"

	"github.com/hupe1980/bitgo/internal/bitset"
)

// Matrix is a fixed columns×rows grid of bits addressed by (column, row).
//
// Bits are stored row-major: (c, r) lives at linear index r*Columns()+c.
// Row, Column, ToVector, the streaming views and the numeric conversions
// all follow this order.
type Matrix struct {
	base
	cols, rows int
}

// NewMatrix returns a columns×rows matrix of cleared bits.
func NewMatrix(columns, rows int) (*Matrix, error) {
	if columns < 0 || rows < 0 {
		return nil, illegalf("negative matrix shape %dx%d", columns, rows)
	}
	return newMatrix(columns, rows, bitset.New(columns*rows)), nil
}

// MatrixOf returns a matrix filled from bits in row-major order.
// len(bits) must equal columns*rows.
func MatrixOf(columns, rows int, bits ...bool) (*Matrix, error) {
	m, err := NewMatrix(columns, rows)
	if err != nil {
		return nil, err
	}
	if len(bits) != columns*rows {
		return nil, illegalf("matrix %dx%d needs %d bits, got %d", columns, rows, columns*rows, len(bits))
	}
	for i, b := range bits {
		m.bits.SetTo(i, b)
	}
	return m, nil
}

func newMatrix(columns, rows int, b *bitset.BitSet) *Matrix {
	return &Matrix{
		base: base{layout: rowMajor{cols: columns, rows: rows}, bits: b},
		cols: columns,
		rows: rows,
	}
}

// Columns returns the number of columns.
func (m *Matrix) Columns() int { return m.cols }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// At returns the bit at (c, r).
func (m *Matrix) At(c, r int) (bool, error) { return m.Get(c, r) }

// SetAt assigns v to the bit at (c, r).
func (m *Matrix) SetAt(c, r int, v bool) error { return m.Set(v, c, r) }

// Row returns a snapshot of row r as a vector of Columns() bits.
func (m *Matrix) Row(r int) (*Vector, error) {
	if r < 0 || r >= m.rows {
		return nil, &IndexError{Coords: []int{r}, Shape: []int{m.rows}}
	}
	return newVector(m.bits.Slice(r*m.cols, (r+1)*m.cols)), nil
}

// Column returns a snapshot of column c as a vector of Rows() bits.
func (m *Matrix) Column(c int) (*Vector, error) {
	if c < 0 || c >= m.cols {
		return nil, &IndexError{Coords: []int{c}, Shape: []int{m.cols}}
	}
	out := bitset.New(m.rows)
	for r := 0; r < m.rows; r++ {
		if m.bits.Test(r*m.cols + c) {
			out.Set(r)
		}
	}
	return newVector(out), nil
}

// ToVector flattens the matrix into an independent row-major vector.
func (m *Matrix) ToVector() *Vector {
	return newVector(m.bits.Clone())
}

// Clone returns an independent copy.
func (m *Matrix) Clone() Container { return m.Copy() }

// Copy returns an independent copy as a *Matrix.
func (m *Matrix) Copy() *Matrix {
	return newMatrix(m.cols, m.rows, m.bits.Clone())
}

// Equal reports whether m and o have the same shape and bits.
func (m *Matrix) Equal(o *Matrix) bool {
	return o != nil && m.cols == o.cols && m.rows == o.rows && m.bits.Equal(o.bits)
}

// String renders one row per line, '0'/'1' per column.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.cols; c++ {
			if m.bits.Test(r*m.cols + c) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
