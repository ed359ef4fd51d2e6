package action

import (
	"fmt"
	"math"

	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/blas"
	"github.com/hupe1980/bitgo/internal/conv"
)

func arityError(want, got int) error {
	return fmt.Errorf("%w: expected at least %d arguments, got %d", bit.ErrIllegalArgument, want, got)
}

func exactArityError(want, got int) error {
	return fmt.Errorf("%w: expected exactly %d arguments, got %d", bit.ErrIllegalArgument, want, got)
}

func argError(pos int, want string, got any) error {
	return fmt.Errorf("%w: argument %d: expected %s, got %T", bit.ErrIllegalArgument, pos, want, got)
}

func isNil(arg any) bool {
	if c, ok := arg.(bit.Container); ok {
		return bit.IsNil(c)
	}
	return arg == nil
}

// containerAt returns args[pos] as the family container type T.
func containerAt[T bit.Container](args []any, pos int) (T, error) {
	v, ok := args[pos].(T)
	if !ok || isNil(args[pos]) {
		var zero T
		return zero, argError(pos, fmt.Sprintf("%T", zero), args[pos])
	}
	return v, nil
}

// containersFrom converts args[from:] to T.
func containersFrom[T bit.Container](args []any, from int) ([]T, error) {
	out := make([]T, 0, len(args)-from)
	for i := from; i < len(args); i++ {
		c, err := containerAt[T](args, i)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// toInt accepts any Go integer kind or an integral float.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("integer overflow: %d", n)
		}
		return int(n), nil
	case uint:
		return conv.Uint64ToInt(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return conv.Uint64ToInt(uint64(n))
	case uint64:
		return conv.Uint64ToInt(n)
	case float32:
		return conv.FloatToInt(float64(n))
	case float64:
		return conv.FloatToInt(n)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func intAt(args []any, pos int) (int, error) {
	n, err := toInt(args[pos])
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d: %w", bit.ErrIllegalArgument, pos, err)
	}
	return n, nil
}

func intsFrom(args []any, from int) ([]int, error) {
	out := make([]int, 0, len(args)-from)
	for i := from; i < len(args); i++ {
		n, err := intAt(args, i)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// indicesFrom groups args[from:] into coordinate tuples of the given rank.
// A trailing incomplete tuple fails with bit.ErrIllegalArgument.
func indicesFrom(args []any, from, rank int) ([]bit.Index, error) {
	flat, err := intsFrom(args, from)
	if err != nil {
		return nil, err
	}
	if len(flat)%rank != 0 {
		return nil, fmt.Errorf("%w: %d index values do not form %d-coordinate tuples", bit.ErrIllegalArgument, len(flat), rank)
	}
	out := make([]bit.Index, 0, len(flat)/rank)
	for i := 0; i < len(flat); i += rank {
		out = append(out, bit.Index(flat[i:i+rank]))
	}
	return out, nil
}

// formatAt reads an optional format argument, falling back to def.
func formatAt(args []any, pos int, def blas.Format) (blas.Format, error) {
	if pos >= len(args) {
		return def, nil
	}
	switch f := args[pos].(type) {
	case blas.Format:
		return f, nil
	case string:
		if f == "" {
			return def, nil
		}
		return blas.ParseFormat(f)
	default:
		return 0, argError(pos, "format name", args[pos])
	}
}
