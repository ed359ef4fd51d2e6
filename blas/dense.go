package blas

import (
	"fmt"
	"slices"
	"strings"
)

// Dense is a row-major matrix backed by a flat slice.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense returns a zero rows×cols matrix.
// Zero-sized shapes are allowed; negative ones return ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Format returns FormatDense.
func (m *Dense) Format() Format { return FormatDense }

func (m *Dense) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, indexErrorf("Dense."+method, i, j)
	}
	return i*m.c + j, nil
}

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// NonZeros counts non-zero entries.
func (m *Dense) NonZeros() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// RawData exposes the row-major backing slice.
func (m *Dense) RawData() []float64 { return m.data }

// ToArray copies the matrix into rows of values.
func (m *Dense) ToArray() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = slices.Clone(m.data[i*m.c : (i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// String renders the matrix one row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// DenseVector is a vector backed by a slice.
type DenseVector struct {
	data []float64
}

// NewDenseVector returns a zero vector of length n.
func NewDenseVector(n int) (*DenseVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDenseVector(%d): %w", n, ErrBadShape)
	}
	return &DenseVector{data: make([]float64, n)}, nil
}

// Len returns the number of entries.
func (v *DenseVector) Len() int { return len(v.data) }

// Format returns FormatDense.
func (v *DenseVector) Format() Format { return FormatDense }

// At returns entry i.
func (v *DenseVector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf("DenseVector.At", i, 0)
	}
	return v.data[i], nil
}

// Set assigns x at entry i.
func (v *DenseVector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf("DenseVector.Set", i, 0)
	}
	v.data[i] = x
	return nil
}

// NonZeros counts non-zero entries.
func (v *DenseVector) NonZeros() int {
	n := 0
	for _, x := range v.data {
		if x != 0 {
			n++
		}
	}
	return n
}

// RawData exposes the backing slice.
func (v *DenseVector) RawData() []float64 { return v.data }

// ToArray copies the entries.
func (v *DenseVector) ToArray() []float64 { return slices.Clone(v.data) }

// Clone returns a deep copy.
func (v *DenseVector) Clone() Vector {
	return &DenseVector{data: slices.Clone(v.data)}
}
