package action

import (
	"github.com/hupe1980/bitgo/bit"
)

// MatrixActions returns the "math/bit/matrix/..." family.
func MatrixActions(opts ...Option) []Action {
	o := applyOptions(opts)

	return append(common[*bit.Matrix](MatrixFamily),
		newAction(MatrixFamily, "create", 2, func(args []any) ([]any, error) {
			dims, err := intsFrom(args, 0)
			if err != nil {
				return nil, err
			}
			if len(dims)%2 != 0 {
				return nil, argError(len(dims)-1, "(columns, rows) pair", args[len(dims)-1])
			}
			out := make([]any, 0, len(dims)/2)
			for i := 0; i < len(dims); i += 2 {
				m, err := bit.NewMatrix(dims[i], dims[i+1])
				if err != nil {
					return nil, err
				}
				out = append(out, m)
			}
			return out, nil
		}),
		newAction(MatrixFamily, "dimension", 1, func(args []any) ([]any, error) {
			ms, err := containersFrom[*bit.Matrix](args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]any, 0, 2*len(ms))
			for _, m := range ms {
				out = append(out, float64(m.Columns()), float64(m.Rows()))
			}
			return out, nil
		}),
		perContainer(MatrixFamily, "rows", func(m *bit.Matrix) (any, error) {
			return float64(m.Rows()), nil
		}),
		perContainer(MatrixFamily, "columns", func(m *bit.Matrix) (any, error) {
			return float64(m.Columns()), nil
		}),
		slice(MatrixFamily, "row", (*bit.Matrix).Row),
		slice(MatrixFamily, "column", (*bit.Matrix).Column),
		perContainer(MatrixFamily, "tovector", func(m *bit.Matrix) (any, error) {
			return m.ToVector(), nil
		}),
		newAction(MatrixFamily, "toblas", 1, func(args []any) ([]any, error) {
			m, err := containerAt[*bit.Matrix](args, 0)
			if err != nil {
				return nil, err
			}
			f, err := formatAt(args, 1, o.format)
			if err != nil {
				return nil, err
			}
			out, err := bit.MatrixToBlas(m, f)
			if err != nil {
				return nil, err
			}
			return []any{out}, nil
		}),
	)
}

// slice extracts row or column args[0] from every matrix in args[1:].
func slice(family, op string, extract func(*bit.Matrix, int) (*bit.Vector, error)) Action {
	return newAction(family, op, 2, func(args []any) ([]any, error) {
		i, err := intAt(args, 0)
		if err != nil {
			return nil, err
		}
		ms, err := containersFrom[*bit.Matrix](args, 1)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(ms))
		for _, m := range ms {
			v, err := extract(m, i)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}
