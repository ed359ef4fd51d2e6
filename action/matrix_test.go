package action

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/blas"
)

func matrices(t *testing.T) (*bit.Matrix, *bit.Matrix) {
	return matrix(t, 2, 2, true, false, false, true),
		matrix(t, 2, 2, false, true, true, true)
}

func TestMatrixActions(t *testing.T) {
	tests := []struct {
		op       string
		expected []any
	}{
		{"columns", []any{2.0, 2.0}},
		{"rows", []any{2.0, 2.0}},
		{"falsecount", []any{2.0, 1.0}},
		{"truecount", []any{2.0, 3.0}},
		{"dimension", []any{2.0, 2.0, 2.0, 2.0}},
		{"size", []any{4, 4}},
		{"not", nil},
		{"or", nil},
		{"and", nil},
		{"xor", nil},
		{"nand", nil},
		{"andnot", nil},
		{"hammingdistance", []any{3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			m1, m2 := matrices(t)
			out := mustExecute(t, MatrixFamily+"/"+tt.op, m1, m2)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestMatrixActions_OperatorsMutateTarget(t *testing.T) {
	tests := []struct {
		op     string
		target string
	}{
		{"and", "00\n01"},
		{"or", "11\n11"},
		{"xor", "11\n10"},
		{"nand", "11\n10"},
		{"andnot", "10\n00"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			m1, m2 := matrices(t)
			mustExecute(t, MatrixFamily+"/"+tt.op, m1, m2)
			assert.Equal(t, tt.target, m1.String())
			assert.Equal(t, "01\n11", m2.String())
		})
	}
}

func TestMatrixOperator_TargetOnly(t *testing.T) {
	for _, op := range []string{"and", "or", "xor", "nand", "andnot"} {
		t.Run(op, func(t *testing.T) {
			m1, _ := matrices(t)
			out, err := execute(t, MatrixFamily+"/"+op, m1)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.Equal(t, "10\n01", m1.String())
		})
	}
}

func TestMatrixCopy(t *testing.T) {
	m1, m2 := matrices(t)
	out := mustExecute(t, MatrixFamily+"/copy", m1, m2)
	require.Len(t, out, 2)
	assert.True(t, out[0].(*bit.Matrix).Equal(m1))
	assert.True(t, out[1].(*bit.Matrix).Equal(m2))
	assert.NotSame(t, m1, out[0])
}

func TestMatrixCreate(t *testing.T) {
	out := mustExecute(t, MatrixFamily+"/create", 2, 2)
	require.Len(t, out, 1)

	m, ok := out[0].(*bit.Matrix)
	require.True(t, ok)
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Columns())

	_, err := execute(t, MatrixFamily+"/create", 2, 2, 3)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
}

func TestGenericCreate(t *testing.T) {
	out := mustExecute(t, Root+"/create", 3)
	assert.IsType(t, &bit.Vector{}, out[0])

	out = mustExecute(t, Root+"/create", 3, 2)
	m, ok := out[0].(*bit.Matrix)
	require.True(t, ok)
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 2, m.Rows())

	_, err := execute(t, Root+"/create", 1, 2, 3)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)

	_, err = execute(t, Root+"/create", 1.5)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
}

func TestMatrixToVector(t *testing.T) {
	_, m2 := matrices(t)
	out := mustExecute(t, MatrixFamily+"/tovector", m2)
	require.Len(t, out, 1)

	v, ok := out[0].(*bit.Vector)
	require.True(t, ok)
	assert.Equal(t, 4, v.Size())
	assert.Equal(t, "0111", v.String())
}

func TestMatrixRowColumn(t *testing.T) {
	m := matrix(t, 2, 2, false, true, true, false)

	out := mustExecute(t, MatrixFamily+"/column", 1, m)
	require.Len(t, out, 1)
	assert.Equal(t, "10", out[0].(*bit.Vector).String())

	out = mustExecute(t, MatrixFamily+"/row", 1, m)
	require.Len(t, out, 1)
	assert.Equal(t, "10", out[0].(*bit.Vector).String())

	out = mustExecute(t, MatrixFamily+"/row", 0, m, m)
	assert.Len(t, out, 2)

	_, err := execute(t, MatrixFamily+"/row", 2, m)
	assert.ErrorIs(t, err, bit.ErrIndexOutOfBounds)
}

func TestMatrixNumericValue(t *testing.T) {
	m1, _ := matrices(t)
	assert.Equal(t, []any{0.0}, mustExecute(t, MatrixFamily+"/numericvalue", m1, 1, 0))
	assert.Equal(t, []any{1.0, 1.0}, mustExecute(t, MatrixFamily+"/numericvalue", m1, 0, 0, 1, 1))

	out, err := execute(t, MatrixFamily+"/numericvalue")
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
	assert.Nil(t, out)
}

func TestMatrixBoolValue(t *testing.T) {
	_, m2 := matrices(t)
	assert.Equal(t, []any{true}, mustExecute(t, MatrixFamily+"/boolvalue", m2, 1, 0))

	out, err := execute(t, MatrixFamily+"/boolvalue", m2, 0)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
	assert.Nil(t, out)
}

func TestMatrixToBlas(t *testing.T) {
	m1, m2 := matrices(t)

	out := mustExecute(t, MatrixFamily+"/toblas", m1, "dense")
	out = append(out, mustExecute(t, MatrixFamily+"/toblas", m2)...)
	require.Len(t, out, 2)

	b1, ok := out[0].(blas.Matrix)
	require.True(t, ok)
	b2, ok := out[1].(blas.Matrix)
	require.True(t, ok)

	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, b1.ToArray())
	assert.Equal(t, [][]float64{{0, 1}, {1, 1}}, b2.ToArray())
}

func TestMatrixToBlas_DefaultFormat(t *testing.T) {
	_, m2 := matrices(t)

	reg, err := NewRegistry(MatrixActions(WithDefaultFormat(blas.FormatSparse))...)
	require.NoError(t, err)
	a, ok := reg.Lookup(MatrixFamily + "/toblas")
	require.True(t, ok)

	out, err := a.Execute(t.Context(), []any{m2})
	require.NoError(t, err)
	assert.Equal(t, blas.FormatSparse, out[0].(blas.Matrix).Format())

	out, err = a.Execute(t.Context(), []any{m2, blas.FormatDense})
	require.NoError(t, err)
	assert.Equal(t, blas.FormatDense, out[0].(blas.Matrix).Format())
}

func TestMatrixSet(t *testing.T) {
	_, m := matrices(t)

	mustExecute(t, MatrixFamily+"/set", m, true, 0, 1, 0, 0)
	a, _ := m.At(0, 0)
	b, _ := m.At(0, 1)
	assert.True(t, a)
	assert.True(t, b)

	mustExecute(t, MatrixFamily+"/set", m, 0.5, 0, 0, 0, 1)
	a, _ = m.At(0, 0)
	b, _ = m.At(0, 1)
	assert.False(t, a)
	assert.False(t, b)

	_, err := execute(t, MatrixFamily+"/set", m, true, 0)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)

	before := m.Copy()
	assert.Empty(t, mustExecute(t, MatrixFamily+"/set", m, true))
	assert.True(t, m.Equal(before))
}

func TestMatrixRange(t *testing.T) {
	m1, _ := matrices(t)
	out := mustExecute(t, MatrixFamily+"/range", m1, 1, 4)
	assert.Equal(t, "001", out[0].(*bit.Vector).String())

	_, err := execute(t, MatrixFamily+"/range", m1, 1, 4, 0)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
}

func TestLambdaStreaming(t *testing.T) {
	var l LambdaStreaming

	assert.Contains(t, l.Assignable(), reflect.TypeFor[*bit.Matrix]())
	assert.Contains(t, l.Assignable(), reflect.TypeFor[*bit.Vector]())

	m1, _ := matrices(t)
	s, err := l.Apply(m1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 1}, slices.Collect(s))

	v1, _ := vectors()
	s, err = l.Apply(v1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, slices.Collect(s))

	_, err = l.Apply("nope")
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)

	var nilMatrix *bit.Matrix
	_, err = l.Apply(nilMatrix)
	assert.ErrorIs(t, err, bit.ErrIllegalArgument)
}
