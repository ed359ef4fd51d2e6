package bit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitgo/blas"
)

func TestRange(t *testing.T) {
	v := VectorOf(false, false, true)

	t.Run("full span is an independent copy", func(t *testing.T) {
		r, err := Range(v, 0, 3)
		require.NoError(t, err)
		assert.True(t, r.Equal(v))

		require.NoError(t, r.SetBit(0, true))
		assert.Equal(t, "001", v.String())
	})

	t.Run("sub range", func(t *testing.T) {
		r, err := Range(v, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, "01", r.String())
	})

	t.Run("empty", func(t *testing.T) {
		r, err := Range(v, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("matrix is read row-major", func(t *testing.T) {
		m := mustMatrix(t, 2, 2, true, false, false, true)
		r, err := Range(m, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, "001", r.String())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Range(v, 2, 1)
		assert.ErrorIs(t, err, ErrIllegalArgument)
		_, err = Range(v, 0, 4)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
		_, err = Range(v, -1, 2)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})
}

func TestToList(t *testing.T) {
	assert.Equal(t, []float64{1, 0, 0}, ToList(VectorOf(true, false, false)))
	assert.Empty(t, ToList(VectorOf()))
}

func TestStream(t *testing.T) {
	m := mustMatrix(t, 2, 2, true, false, false, true)
	s := Stream(m)

	assert.Equal(t, []int{1, 0, 0, 1}, slices.Collect(s))
	// restartable
	assert.Equal(t, []int{1, 0, 0, 1}, slices.Collect(s))

	// lazy: reflects mutation after creation
	require.NoError(t, m.SetAt(1, 0, true))
	assert.Equal(t, []int{1, 1, 0, 1}, slices.Collect(s))

	// early stop
	n := 0
	for range s {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestToBitmap(t *testing.T) {
	m := mustMatrix(t, 3, 2, false, true, false, true, false, true)
	bm, err := ToBitmap(m)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 3, 5}, bm.ToArray())
	assert.Equal(t, uint64(m.TrueCount()), bm.GetCardinality())
}

func TestMatrixToBlas(t *testing.T) {
	m1 := mustMatrix(t, 2, 2, true, false, false, true)
	m2 := mustMatrix(t, 2, 2, false, true, true, true)

	for _, f := range []blas.Format{blas.FormatDense, blas.FormatSparse} {
		t.Run(f.String(), func(t *testing.T) {
			b1, err := MatrixToBlas(m1, f)
			require.NoError(t, err)
			assert.Equal(t, f, b1.Format())
			assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, b1.ToArray())

			b2, err := MatrixToBlas(m2, f)
			require.NoError(t, err)
			assert.Equal(t, [][]float64{{0, 1}, {1, 1}}, b2.ToArray())
			assert.Equal(t, 3, b2.NonZeros())
		})
	}
}

func TestMatrixToBlas_NonSquareMatchesBoolValue(t *testing.T) {
	m := mustMatrix(t, 3, 2,
		true, false, true,
		false, true, true,
	)

	for _, f := range []blas.Format{blas.FormatDense, blas.FormatSparse} {
		out, err := MatrixToBlas(m, f)
		require.NoError(t, err)
		require.Equal(t, m.Rows(), out.Rows())
		require.Equal(t, m.Columns(), out.Cols())

		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Columns(); c++ {
				want, _ := NumericValue(m, c, r)
				got, err := out.At(r, c)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s (%d,%d)", f, c, r)
			}
		}
	}
}

func TestVectorToBlas(t *testing.T) {
	v1 := VectorOf(true, false, false)
	v2 := VectorOf(false, false, true)

	for _, f := range []blas.Format{blas.FormatDense, blas.FormatSparse} {
		t.Run(f.String(), func(t *testing.T) {
			b1, err := VectorToBlas(v1, f)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 0, 0}, b1.ToArray())

			b2, err := VectorToBlas(v2, f)
			require.NoError(t, err)
			assert.Equal(t, []float64{0, 0, 1}, b2.ToArray())
		})
	}
}

func TestToBlas(t *testing.T) {
	m := mustMatrix(t, 1, 1, true)
	out, err := ToBlas(m, blas.FormatDense)
	require.NoError(t, err)
	_, ok := out.(blas.Matrix)
	assert.True(t, ok)

	out, err = ToBlas(VectorOf(true), blas.FormatSparse)
	require.NoError(t, err)
	_, ok = out.(blas.Vector)
	assert.True(t, ok)

	_, err = MatrixToBlas(m, blas.Format(7))
	assert.ErrorIs(t, err, blas.ErrUnsupportedFormat)
}
