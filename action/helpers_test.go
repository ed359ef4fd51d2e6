package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitgo/bit"
)

func execute(t *testing.T, name string, args ...any) ([]any, error) {
	t.Helper()

	a, ok := Default().Lookup(name)
	require.True(t, ok, "action %s not registered", name)

	return a.Execute(context.Background(), args)
}

func mustExecute(t *testing.T, name string, args ...any) []any {
	t.Helper()

	out, err := execute(t, name, args...)
	require.NoError(t, err)
	return out
}

func matrix(t *testing.T, columns, rows int, bits ...bool) *bit.Matrix {
	t.Helper()

	m, err := bit.MatrixOf(columns, rows, bits...)
	require.NoError(t, err)
	return m
}
