package action

import "github.com/hupe1980/bitgo/bit"

// Create returns "math/bit/create": one size argument yields a vector, a
// (columns, rows) pair yields a matrix.
func Create() Action {
	return newAction(Root, "create", 1, func(args []any) ([]any, error) {
		dims, err := intsFrom(args, 0)
		if err != nil {
			return nil, err
		}
		c, err := bit.Create(dims...)
		if err != nil {
			return nil, err
		}
		return []any{c}, nil
	})
}
