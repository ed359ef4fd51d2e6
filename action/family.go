package action

import (
	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/distance"
)

// The builders below are shared by both families; T is *bit.Vector or
// *bit.Matrix and fixes which container type the family accepts.

// operator folds args[1:] into args[0]. A lone target is left unchanged.
func operator[T bit.Container](family string, op bit.Operator) Action {
	return newAction(family, op.String(), 1, func(args []any) ([]any, error) {
		cs, err := containersFrom[T](args, 0)
		if err != nil {
			return nil, err
		}
		sources := make([]bit.Container, 0, len(cs)-1)
		for _, c := range cs[1:] {
			sources = append(sources, c)
		}
		return nil, bit.Reduce(op, cs[0], sources...)
	})
}

// not negates every argument in place.
func not[T bit.Container](family string) Action {
	return newAction(family, bit.OpNot.String(), 1, func(args []any) ([]any, error) {
		cs, err := containersFrom[T](args, 0)
		if err != nil {
			return nil, err
		}
		for _, c := range cs {
			if err := bit.Not(c); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
}

// perContainer maps every argument to one result.
func perContainer[T bit.Container](family, op string, f func(T) (any, error)) Action {
	return newAction(family, op, 1, func(args []any) ([]any, error) {
		cs, err := containersFrom[T](args, 0)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(cs))
		for _, c := range cs {
			v, err := f(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

func size[T bit.Container](family string) Action {
	return perContainer(family, "size", func(c T) (any, error) {
		return bit.Size(c), nil
	})
}

func trueCount[T bit.Container](family string) Action {
	return perContainer(family, "truecount", func(c T) (any, error) {
		return float64(bit.TrueCount(c)), nil
	})
}

func falseCount[T bit.Container](family string) Action {
	return perContainer(family, "falsecount", func(c T) (any, error) {
		return float64(bit.FalseCount(c)), nil
	})
}

func copyOf[T bit.Container](family string) Action {
	return perContainer(family, "copy", func(c T) (any, error) {
		return bit.Copy(c), nil
	})
}

func toBitmap[T bit.Container](family string) Action {
	return perContainer(family, "tobitmap", func(c T) (any, error) {
		return bit.ToBitmap(c)
	})
}

// lookup reads args[0] at every coordinate tuple in args[1:].
func lookup[T bit.Container](family, op string, read func(bit.Container, ...int) (any, error)) Action {
	return newAction(family, op, 2, func(args []any) ([]any, error) {
		c, err := containerAt[T](args, 0)
		if err != nil {
			return nil, err
		}
		indices, err := indicesFrom(args, 1, c.Layout().Rank())
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(indices))
		for _, idx := range indices {
			v, err := read(c, idx...)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

func numericValue[T bit.Container](family string) Action {
	return lookup[T](family, "numericvalue", func(c bit.Container, coords ...int) (any, error) {
		return bit.NumericValue(c, coords...)
	})
}

func boolValue[T bit.Container](family string) Action {
	return lookup[T](family, "boolvalue", func(c bit.Container, coords ...int) (any, error) {
		return bit.BoolValue(c, coords...)
	})
}

// set assigns args[1], coerced, at every tuple in args[2:].
func set[T bit.Container](family string) Action {
	return newAction(family, "set", 2, func(args []any) ([]any, error) {
		c, err := containerAt[T](args, 0)
		if err != nil {
			return nil, err
		}
		v, err := bit.Coerce(args[1])
		if err != nil {
			return nil, err
		}
		indices, err := indicesFrom(args, 2, c.Layout().Rank())
		if err != nil {
			return nil, err
		}
		return nil, bit.Assign(c, v, indices...)
	})
}

func clearBits[T bit.Container](family string) Action {
	return newAction(family, "clear", 2, func(args []any) ([]any, error) {
		c, err := containerAt[T](args, 0)
		if err != nil {
			return nil, err
		}
		indices, err := indicesFrom(args, 1, c.Layout().Rank())
		if err != nil {
			return nil, err
		}
		return nil, bit.Clear(c, indices...)
	})
}

func rangeOf[T bit.Container](family string) Action {
	return newAction(family, "range", 3, func(args []any) ([]any, error) {
		if len(args) != 3 {
			return nil, exactArityError(3, len(args))
		}
		c, err := containerAt[T](args, 0)
		if err != nil {
			return nil, err
		}
		bounds, err := intsFrom(args, 1)
		if err != nil {
			return nil, err
		}
		v, err := bit.Range(c, bounds[0], bounds[1])
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	})
}

// hamming takes exactly two containers.
func hamming[T bit.Container](family string) Action {
	dist, err := distance.Provider(distance.MetricHamming)
	if err != nil {
		panic(err)
	}
	return newAction(family, "hammingdistance", 2, func(args []any) ([]any, error) {
		if len(args) != 2 {
			return nil, exactArityError(2, len(args))
		}
		cs, err := containersFrom[T](args, 0)
		if err != nil {
			return nil, err
		}
		d, err := dist(cs[0], cs[1])
		if err != nil {
			return nil, err
		}
		return []any{float64(d)}, nil
	})
}

// common returns the actions both families share.
func common[T bit.Container](family string) []Action {
	return []Action{
		operator[T](family, bit.OpAnd),
		operator[T](family, bit.OpOr),
		operator[T](family, bit.OpXor),
		operator[T](family, bit.OpNand),
		operator[T](family, bit.OpAndNot),
		not[T](family),
		size[T](family),
		trueCount[T](family),
		falseCount[T](family),
		numericValue[T](family),
		boolValue[T](family),
		set[T](family),
		clearBits[T](family),
		rangeOf[T](family),
		copyOf[T](family),
		toBitmap[T](family),
		hamming[T](family),
	}
}
