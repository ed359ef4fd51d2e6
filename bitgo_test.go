package bitgo

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitgo/action"
	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/blas"
)

func TestEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateSetCount", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		out, err := eng.Execute(ctx, "math/bit/vector/create", 3)
		require.NoError(t, err)
		require.Len(t, out, 1)
		v := out[0].(*bit.Vector)

		_, err = eng.Execute(ctx, "math/bit/vector/set", v, 1, 0, 2)
		require.NoError(t, err)

		out, err = eng.Execute(ctx, "math/bit/vector/truecount", v)
		require.NoError(t, err)
		assert.Equal(t, []any{2.0}, out)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		out, err := eng.Execute(ctx, "math/bit/vector/transpose")
		assert.ErrorIs(t, err, ErrUnknownAction)
		assert.Nil(t, out)

		var nf *ErrActionNotFound
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "math/bit/vector/transpose", nf.Name)
	})

	t.Run("ErrorsMatchRootSentinels", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		_, err = eng.Execute(ctx, "math/bit/vector/hammingdistance")
		assert.ErrorIs(t, err, ErrIllegalArgument)

		_, err = eng.Execute(ctx, "math/bit/vector/and", bit.VectorOf(true), bit.VectorOf(true, false))
		assert.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = eng.Execute(ctx, "math/bit/vector/boolvalue", bit.VectorOf(true), 4)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)

		_, err = eng.Execute(ctx, "math/bit/vector/set", bit.VectorOf(true), struct{}{}, 0)
		assert.ErrorIs(t, err, ErrTypeCoercion)

		_, err = eng.Execute(ctx, "math/bit/vector/toblas", bit.VectorOf(true), "csr")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Actions", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		names := eng.Actions()
		assert.Contains(t, names, "math/bit/create")
		assert.Contains(t, names, "math/bit/matrix/toblas")
		assert.True(t, slices.IsSorted(names))

		_, ok := eng.Lookup("math/bit/matrix/row")
		assert.True(t, ok)
	})

	t.Run("Stream", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		s, err := eng.Stream(bit.VectorOf(true, false, true))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 1}, slices.Collect(s))
	})
}

func TestEngine_DefaultFormat(t *testing.T) {
	ctx := context.Background()
	m, err := bit.MatrixOf(2, 2, true, false, false, true)
	require.NoError(t, err)

	format := func(eng *Engine) blas.Format {
		out, err := eng.Execute(ctx, "math/bit/matrix/toblas", m)
		require.NoError(t, err)
		return out[0].(blas.Matrix).Format()
	}

	t.Run("Dense", func(t *testing.T) {
		t.Setenv(EnvBlasFormat, "")
		eng, err := New()
		require.NoError(t, err)
		assert.Equal(t, blas.FormatDense, format(eng))
	})

	t.Run("Option", func(t *testing.T) {
		eng, err := New(WithDefaultFormat(blas.FormatSparse))
		require.NoError(t, err)
		assert.Equal(t, blas.FormatSparse, format(eng))
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv(EnvBlasFormat, "sparse")
		eng, err := New()
		require.NoError(t, err)
		assert.Equal(t, blas.FormatSparse, format(eng))
	})

	t.Run("OptionOverridesEnv", func(t *testing.T) {
		t.Setenv(EnvBlasFormat, "sparse")
		eng, err := New(WithDefaultFormat(blas.FormatDense))
		require.NoError(t, err)
		assert.Equal(t, blas.FormatDense, format(eng))
	})

	t.Run("InvalidEnv", func(t *testing.T) {
		t.Setenv(EnvBlasFormat, "banded")
		_, err := New()
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestEngine_WithRegistry(t *testing.T) {
	reg, err := action.NewRegistry(action.Create())
	require.NoError(t, err)

	eng, err := New(WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, []string{"math/bit/create"}, eng.Actions())

	_, err = eng.Execute(context.Background(), "math/bit/vector/create", 1)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestEngine_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	eng, err := New(WithMetricsCollector(metrics))
	require.NoError(t, err)

	ctx := context.Background()
	v := bit.VectorOf(true, false)

	_, err = eng.Execute(ctx, "math/bit/vector/size", v)
	require.NoError(t, err)
	_, err = eng.Execute(ctx, "math/bit/vector/size", v, v)
	require.NoError(t, err)
	_, err = eng.Execute(ctx, "math/bit/vector/range")
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.ActionCount)
	assert.Equal(t, int64(1), stats.ActionErrors)
	assert.Equal(t, int64(2), stats.PerAction["math/bit/vector/size"])
	assert.Equal(t, int64(1), stats.PerAction["math/bit/vector/range"])
	assert.GreaterOrEqual(t, stats.ActionAvgNanos, int64(0))
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng, err := New(WithLogger(logger))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = eng.Execute(ctx, "math/bit/vector/size", bit.VectorOf(true))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"action completed"`)
	assert.Contains(t, buf.String(), `"action":"math/bit/vector/size"`)

	buf.Reset()
	_, err = eng.Execute(ctx, "math/bit/vector/numericvalue")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"msg":"action failed"`)
	assert.Contains(t, buf.String(), `"action":"math/bit/vector/numericvalue"`)

	buf.Reset()
	_, err = eng.ExecuteBatch(ctx,
		Call{Name: "math/bit/vector/size", Args: []any{bit.VectorOf(true)}},
		Call{Name: "math/bit/vector/truecount", Args: []any{bit.VectorOf(true)}},
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"batch completed"`)
	assert.Contains(t, buf.String(), `"count":2`)
}

func TestEngine_ExecuteBatch(t *testing.T) {
	eng, err := New(WithConcurrencyLimit(2), WithRateLimit(1e6, 100))
	require.NoError(t, err)

	ctx := context.Background()
	a := bit.VectorOf(true, false, false)
	b := bit.VectorOf(false, false, true)

	out, err := eng.ExecuteBatch(ctx,
		Call{Name: "math/bit/vector/truecount", Args: []any{a}},
		Call{Name: "math/bit/vector/hammingdistance", Args: []any{a, b}},
		Call{Name: "math/bit/vector/size", Args: []any{b}},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1.0}, {2.0}, {3}}, out)

	_, err = eng.ExecuteBatch(ctx,
		Call{Name: "math/bit/vector/size", Args: []any{a}},
		Call{Name: "math/bit/vector/nope"},
	)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestEngine_TryExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Busy", func(t *testing.T) {
		eng, err := New(WithConcurrencyLimit(1))
		require.NoError(t, err)

		require.NoError(t, eng.limits.Acquire(ctx))
		assert.Equal(t, int64(1), eng.InFlight())

		_, err = eng.TryExecute(ctx, "math/bit/vector/size", bit.VectorOf(true))
		assert.ErrorIs(t, err, ErrBusy)

		eng.limits.Release()
		out, err := eng.TryExecute(ctx, "math/bit/vector/size", bit.VectorOf(true))
		require.NoError(t, err)
		assert.Equal(t, []any{1}, out)
		assert.Zero(t, eng.InFlight())
	})

	t.Run("RateLimited", func(t *testing.T) {
		eng, err := New(WithRateLimit(1e-6, 1))
		require.NoError(t, err)

		_, err = eng.TryExecute(ctx, "math/bit/vector/size", bit.VectorOf(true))
		require.NoError(t, err)

		_, err = eng.TryExecute(ctx, "math/bit/vector/size", bit.VectorOf(true))
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Zero(t, eng.InFlight())
	})

	t.Run("Unlimited", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		out, err := eng.TryExecute(ctx, "math/bit/vector/truecount", bit.VectorOf(true, true))
		require.NoError(t, err)
		assert.Equal(t, []any{2.0}, out)
		assert.Zero(t, eng.InFlight())
	})

	t.Run("UnknownAction", func(t *testing.T) {
		eng, err := New(WithConcurrencyLimit(1))
		require.NoError(t, err)

		_, err = eng.TryExecute(ctx, "math/bit/vector/nope")
		assert.ErrorIs(t, err, ErrUnknownAction)
		assert.Zero(t, eng.InFlight())
	})
}

func TestEngine_Canceled(t *testing.T) {
	eng, err := New(WithConcurrencyLimit(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Execute(ctx, "math/bit/vector/size", bit.VectorOf(true))
	assert.ErrorIs(t, err, context.Canceled)
}
