package action

import (
	"github.com/hupe1980/bitgo/bit"
)

// VectorActions returns the "math/bit/vector/..." family.
func VectorActions(opts ...Option) []Action {
	o := applyOptions(opts)

	return append(common[*bit.Vector](VectorFamily),
		newAction(VectorFamily, "create", 1, func(args []any) ([]any, error) {
			sizes, err := intsFrom(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]any, 0, len(sizes))
			for _, n := range sizes {
				v, err := bit.NewVector(n)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		}),
		newAction(VectorFamily, "toblas", 1, func(args []any) ([]any, error) {
			v, err := containerAt[*bit.Vector](args, 0)
			if err != nil {
				return nil, err
			}
			f, err := formatAt(args, 1, o.format)
			if err != nil {
				return nil, err
			}
			out, err := bit.VectorToBlas(v, f)
			if err != nil {
				return nil, err
			}
			return []any{out}, nil
		}),
		perContainer(VectorFamily, "tolist", func(v *bit.Vector) (any, error) {
			return bit.ToList(v), nil
		}),
	)
}
