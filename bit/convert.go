package bit

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitgo/blas"
	"github.com/hupe1980/bitgo/internal/conv"
)

// ToList returns one float64 (0 or 1) per bit in linear order.
func ToList(c Container) []float64 {
	b := c.storage()
	out := make([]float64, b.Len())
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		out[i] = 1
	}
	return out
}

// Stream returns a lazy view of c as 0/1 values in linear order.
//
// Nothing is materialized; every range over the sequence reads the current
// bits again, so the view is restartable and reflects later mutations.
func Stream(c Container) iter.Seq[int] {
	return func(yield func(int) bool) {
		b := c.storage()
		for i := 0; i < b.Len(); i++ {
			if !yield(b2i(b.Test(i))) {
				return
			}
		}
	}
}

// ToBitmap returns the linear indices of the set bits of c.
func ToBitmap(c Container) (*roaring.Bitmap, error) {
	if _, err := conv.IntToUint32(c.Size()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIllegalArgument, err)
	}
	b := c.storage()
	bm := roaring.New()
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		bm.Add(uint32(i))
	}
	return bm, nil
}

// MatrixToBlas converts m into a Rows()×Columns() numeric matrix in format f.
// Entry (r, c) is 1.0 when bit (c, r) is set, else 0.0.
func MatrixToBlas(m *Matrix, f blas.Format) (blas.Matrix, error) {
	out, err := blas.NewMatrix(f, m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	if d, ok := out.(*blas.Dense); ok {
		data := d.RawData()
		for i := m.bits.NextSet(0); i >= 0; i = m.bits.NextSet(i + 1) {
			data[i] = 1
		}
		return d, nil
	}
	for i := m.bits.NextSet(0); i >= 0; i = m.bits.NextSet(i + 1) {
		if err := out.Set(i/m.cols, i%m.cols, 1); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// VectorToBlas converts v into a numeric vector in format f.
func VectorToBlas(v *Vector, f blas.Format) (blas.Vector, error) {
	out, err := blas.NewVector(f, v.Len())
	if err != nil {
		return nil, err
	}
	for i := v.bits.NextSet(0); i >= 0; i = v.bits.NextSet(i + 1) {
		if err := out.Set(i, 1); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ToBlas converts c into its numeric representation: a blas.Matrix for a
// *Matrix, a blas.Vector for a *Vector.
func ToBlas(c Container, f blas.Format) (any, error) {
	switch t := c.(type) {
	case *Matrix:
		return MatrixToBlas(t, f)
	case *Vector:
		return VectorToBlas(t, f)
	default:
		return nil, illegalf("cannot convert %T", c)
	}
}
